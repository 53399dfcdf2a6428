package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalBundleSDP = "" +
	"v=0\r\n" +
	"o=- 1 2 IN IP4 0.0.0.0\r\n" +
	"s=-\r\n" +
	"t=0 0\r\n" +
	"a=group:BUNDLE a1\r\n" +
	"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
	"c=IN IP4 0.0.0.0\r\n" +
	"a=mid:a1\r\n" +
	"a=ice-ufrag:xy\r\n" +
	"a=ice-pwd:0123456789abcdef\r\n" +
	"a=fingerprint:sha-256 AA:BB\r\n" +
	"a=setup:actpass\r\n" +
	"a=rtcp-mux\r\n" +
	"a=sendrecv\r\n" +
	"a=rtpmap:111 opus/48000/2\r\n"

func TestParse_MinimalAudioBundle(t *testing.T) {
	doc, err := Parse(minimalBundleSDP)
	require.NoError(t, err)
	require.Len(t, doc.MediaLines, 1)

	m := doc.MediaLines[0]
	require.NotNil(t, m.Mid)
	assert.Equal(t, "a1", *m.Mid)
	assert.True(t, m.RtcpMux)
	require.NotNil(t, m.MediaDirection)
	assert.Equal(t, DirectionSendRecv, *m.MediaDirection)
	require.Len(t, m.RtpmapLines, 1)
	assert.Equal(t, uint32(48000), m.RtpmapLines[0].ClockRate)

	leftover := doc.unabsorbed()
	assert.Empty(t, leftover)

	desc, err := CreateDescription(LocationLocal, doc)
	require.NoError(t, err)
	require.Len(t, desc.Transports, 1)
	assert.Equal(t, "a1", desc.Transports[0].ID)
	assert.Nil(t, desc.Transports[0].Rtcp)
	require.NotNil(t, desc.Transports[0].Rtp.DtlsParameters)
	assert.Equal(t, "auto", string(desc.Transports[0].Rtp.DtlsParameters.Role))

	require.Len(t, desc.RtpMediaLines, 1)
	require.Len(t, desc.RtpMediaLines[0].SenderCapabilities.Codecs, 1)
	codec := desc.RtpMediaLines[0].SenderCapabilities.Codecs[0]
	assert.Equal(t, "opus", codec.Name)
	assert.Equal(t, uint32(48000), codec.ClockRate)
	require.NotNil(t, codec.Channels)
	assert.Equal(t, uint32(2), *codec.Channels)

	assert.Empty(t, desc.RtpSenders, "no ssrc cname line means no sender")
}

func TestParse_UnsupportedVersion(t *testing.T) {
	sdp := "v=1\r\no=- 1 2 IN IP4 0.0.0.0\r\ns=-\r\nt=0 0\r\n"
	_, err := Parse(sdp)
	require.Error(t, err)
	assert.True(t, HasErrorCode(err, UnsupportedVersion))
}

func TestParse_RtpmapMissingFallsBackToReserved(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 0\r\n" +
		"a=mid:a1\r\n" +
		"a=ice-ufrag:xy\r\n" +
		"a=ice-pwd:0123456789abcdef\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)

	desc, err := CreateDescription(LocationLocal, doc)
	require.NoError(t, err)
	require.Len(t, desc.RtpMediaLines, 1)
	require.Len(t, desc.RtpMediaLines[0].SenderCapabilities.Codecs, 1)
	codec := desc.RtpMediaLines[0].SenderCapabilities.Codecs[0]
	assert.Equal(t, "pcmu", codec.Name)
	assert.Equal(t, uint32(8000), codec.ClockRate)
}

func TestParse_BundleFanIn(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"a=group:BUNDLE v0 a0\r\n" +
		"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
		"a=mid:v0\r\n" +
		"a=ice-ufrag:xy\r\n" +
		"a=ice-pwd:0123456789abcdef\r\n" +
		"a=rtpmap:96 VP8/90000\r\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
		"a=mid:a0\r\n" +
		"a=ice-ufrag:xy\r\n" +
		"a=ice-pwd:0123456789abcdef\r\n" +
		"a=rtpmap:111 opus/48000/2\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)

	desc, err := CreateDescription(LocationLocal, doc)
	require.NoError(t, err)
	require.Len(t, desc.RtpMediaLines, 2)
	assert.Equal(t, "v0", desc.RtpMediaLines[0].TransportID)
	assert.Equal(t, "v0", desc.RtpMediaLines[1].TransportID)
	require.Len(t, desc.Transports, 1, "a0's own transport must not appear")
	assert.Equal(t, "v0", desc.Transports[0].ID)
}

func TestParse_RtxWithoutAptFails(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
		"a=rtpmap:96 rtx/90000\r\n" +
		"a=fmtp:96 rtx-time=200\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)

	_, err = CreateDescription(LocationLocal, doc)
	require.Error(t, err)
	assert.True(t, HasErrorCode(err, MissingRequired))
}

func TestParse_CandidateComponentSplit(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
		"a=mid:a1\r\n" +
		"a=ice-ufrag:xy\r\n" +
		"a=ice-pwd:0123456789abcdef\r\n" +
		"a=rtpmap:111 opus/48000/2\r\n" +
		"a=candidate:1 1 udp 2130706431 10.0.0.1 8000 typ host\r\n" +
		"a=candidate:1 2 udp 2130706431 10.0.0.1 8001 typ host\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)

	desc, err := CreateDescription(LocationLocal, doc)
	require.NoError(t, err)
	require.Len(t, desc.Transports, 1)
	tr := desc.Transports[0]
	require.Len(t, tr.Rtp.IceCandidates, 1)
	require.NotNil(t, tr.Rtcp)
	require.Len(t, tr.Rtcp.IceCandidates, 1)
}

func TestParse_SimulcastEntries(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
		"a=rtpmap:96 VP8/90000\r\n" +
		"a=simulcast:send 1;~2,3 recv 4\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)

	m := doc.MediaLines[0]
	require.NotNil(t, m.Simulcast)
	require.Len(t, m.Simulcast.Entries, 2)

	send := m.Simulcast.Entries[0]
	assert.Equal(t, DirectionSend, send.Direction)
	require.Len(t, send.Alternatives, 2)
	assert.Equal(t, []SimulcastAlt{{Rid: "1"}}, send.Alternatives[0])
	assert.Equal(t, []SimulcastAlt{{Rid: "2", Paused: true}, {Rid: "3"}}, send.Alternatives[1])

	recv := m.Simulcast.Entries[1]
	assert.Equal(t, DirectionRecv, recv.Direction)
	require.Len(t, recv.Alternatives, 1)
	assert.Equal(t, []SimulcastAlt{{Rid: "4"}}, recv.Alternatives[0])
}

func TestParse_SsrcScopeFmtpAttachesToSsrcLine(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
		"a=rtpmap:96 VP8/90000\r\n" +
		"a=ssrc:1111 cname:abc\r\n" +
		"a=fmtp:96 x-google-min-bitrate=100\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)

	m := doc.MediaLines[0]
	require.Len(t, m.SsrcLines, 1)
	require.Len(t, m.SsrcLines[0].FmtpChildren, 1)
	assert.Empty(t, m.FmtpLines, "fmtp at source scope must not land on the media line")
}

// A session-level b= line does not fail the parse; it is kept on
// SdpDoc.Bandwidths and lowering does not use it.
func TestParse_BandwidthAtSessionScopeIgnored(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"b=AS:128\r\n" +
		"t=0 0\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)
	require.Len(t, doc.Bandwidths, 1)
	assert.Equal(t, uint64(128), doc.Bandwidths[0].Bandwidth)
}

func TestParse_MResetsScope(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
		"a=ssrc:1 cname:x\r\n" +
		"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
		"a=rtpmap:96 VP8/90000\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)
	require.Len(t, doc.MediaLines, 2)
	assert.Len(t, doc.MediaLines[1].RtpmapLines, 1)
}

func TestCreateDescription_DropsMediaLineWithUnresolvableTransport(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 0\r\n" +
		"a=mid:a1\r\n" +
		"a=rtpmap:0 PCMU/8000\r\n"
	doc, err := Parse(sdp)
	require.NoError(t, err)

	var kinds []WarningKind
	desc, err := CreateDescription(LocationLocal, doc, WithWarnFunc(func(w Warning) {
		kinds = append(kinds, w.Kind)
	}))
	require.NoError(t, err)

	assert.Empty(t, desc.RtpMediaLines, "media line with no resolvable transport must be dropped")
	assert.Empty(t, desc.Transports)
	assert.Contains(t, kinds, WarnMediaLineDropped)
}

func TestParse_DuplicateMediaScopedSingleValuedAttributeFails(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
		"a=mid:a1\r\n" +
		"a=mid:a2\r\n"
	_, err := Parse(sdp)
	require.Error(t, err)
	assert.True(t, HasErrorCode(err, DuplicateSingleValued))
}

func TestParse_DuplicateMediaLevelConnectionFails(t *testing.T) {
	sdp := "v=0\r\n" +
		"o=- 1 2 IN IP4 0.0.0.0\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n" +
		"m=audio 9 UDP/TLS/RTP/SAVPF 111\r\n" +
		"c=IN IP4 0.0.0.0\r\n" +
		"c=IN IP4 0.0.0.1\r\n"
	_, err := Parse(sdp)
	require.Error(t, err)
	assert.True(t, HasErrorCode(err, DuplicateSingleValued))
}
