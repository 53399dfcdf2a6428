package sdp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const simulcastSDP = "v=0\r\n" +
	"o=- 1 2 IN IP4 0.0.0.0\r\n" +
	"s=-\r\n" +
	"t=0 0\r\n" +
	"a=group:BUNDLE v0\r\n" +
	"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
	"c=IN IP4 0.0.0.0\r\n" +
	"a=mid:v0\r\n" +
	"a=ice-ufrag:ufrag1\r\n" +
	"a=ice-pwd:password1234567890123456\r\n" +
	"a=fingerprint:sha-256 00:11:22:33:44:55:66:77:88:99:AA:BB:CC:DD:EE:FF:00:11:22:33:44:55:66:77:88:99:AA:BB:CC:DD:EE:FF\r\n" +
	"a=setup:actpass\r\n" +
	"a=sendrecv\r\n" +
	"a=rtpmap:96 VP8/90000\r\n" +
	"a=rid:1 send\r\n" +
	"a=simulcast:send 1;2\r\n"

func TestCheckSimulcastRids_WarnsOnUnknownRid(t *testing.T) {
	var kinds []WarningKind
	collect := func(w Warning) { kinds = append(kinds, w.Kind) }

	doc, err := Parse(simulcastSDP, WithWarnFunc(collect))
	require.NoError(t, err)

	_, err = CreateDescription(LocationLocal, doc, WithWarnFunc(collect))
	require.NoError(t, err)

	require.Contains(t, kinds, WarnSimulcastRidNotFound)
}

func TestCheckSimulcastRids_NoWarnWhenAllRidsKnown(t *testing.T) {
	sdpText := simulcastSDP[:len(simulcastSDP)-len("a=simulcast:send 1;2\r\n")] +
		"a=simulcast:send 1\r\n"

	var kinds []WarningKind
	collect := func(w Warning) { kinds = append(kinds, w.Kind) }

	doc, err := Parse(sdpText, WithWarnFunc(collect))
	require.NoError(t, err)

	_, err = CreateDescription(LocationLocal, doc, WithWarnFunc(collect))
	require.NoError(t, err)

	require.NotContains(t, kinds, WarnSimulcastRidNotFound)
}
