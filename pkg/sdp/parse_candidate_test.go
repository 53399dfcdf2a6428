package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidate(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		wantType string
		wantErr  ErrorCode
	}{
		{
			name:     "host candidate with raddr/rport",
			raw:      "1 1 udp 2130706431 10.0.0.1 8000 typ host raddr 0.0.0.0 rport 0",
			wantType: "host",
		},
		{
			name:     "srflx candidate with extension pair",
			raw:      "1 1 udp 1694498815 203.0.113.1 9000 typ srflx raddr 10.0.0.1 rport 8000 generation 0",
			wantType: "srflx",
		},
		{
			name:    "too few fields",
			raw:     "1 1 udp 2130706431 10.0.0.1 8000 typ",
			wantErr: MalformedAttribute,
		},
		{
			name:    "missing typ keyword",
			raw:     "1 1 udp 2130706431 10.0.0.1 8000 foo host",
			wantErr: MalformedAttribute,
		},
		{
			name:    "odd number of trailing extension fields",
			raw:     "1 1 udp 2130706431 10.0.0.1 8000 typ host raddr 0.0.0.0 rport 0 generation",
			wantErr: MalformedAttribute,
		},
		{
			name:    "raddr without rport",
			raw:     "1 1 udp 2130706431 10.0.0.1 8000 typ host raddr 0.0.0.0",
			wantErr: MalformedAttribute,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := parseCandidate(1, tc.raw)
			if tc.wantErr != 0 {
				require.Error(t, err)
				assert.True(t, HasErrorCode(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, c.Foundation)
			assert.Equal(t, tc.wantType, c.CandidateType)
		})
	}
}

func TestParseCrypto(t *testing.T) {
	c, err := parseCrypto(1, "1 AES_CM_128_HMAC_SHA1_80 inline:WVNfX19zZW1jdGwgKCkgewkyMjA7fQp9CnVubGVz|2^20|1:32")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.Tag)
	assert.Equal(t, "AES_CM_128_HMAC_SHA1_80", c.Suite)
	require.Len(t, c.KeyParams, 1)
	assert.Equal(t, "inline", c.KeyParams[0].Method)
}

func TestParseRtpmap(t *testing.T) {
	rm, err := parseRtpmap(1, "111 opus/48000/2")
	require.NoError(t, err)
	assert.Equal(t, uint8(111), rm.PayloadType)
	assert.Equal(t, "opus", rm.EncodingName)
	assert.Equal(t, uint32(48000), rm.ClockRate)
	require.NotNil(t, rm.EncodingParams)
	assert.Equal(t, uint32(2), *rm.EncodingParams)
}

func TestParseFmtp_ExcludesPayloadType(t *testing.T) {
	f, err := parseFmtp(1, "111 minptime=10;useinbandfec=1")
	require.NoError(t, err)
	assert.Equal(t, uint8(111), f.Format)
	assert.Equal(t, []string{"minptime=10", "useinbandfec=1"}, f.FormatSpecific)
}

func TestParseRtcpFb_Wildcard(t *testing.T) {
	fb, err := parseRtcpFb(1, "* nack")
	require.NoError(t, err)
	assert.Nil(t, fb.PayloadType)
	assert.Equal(t, "nack", fb.ID)
}

func TestParseRtcpFb_SpecificPayload(t *testing.T) {
	fb, err := parseRtcpFb(1, "96 nack pli")
	require.NoError(t, err)
	require.NotNil(t, fb.PayloadType)
	assert.Equal(t, uint8(96), *fb.PayloadType)
	assert.Equal(t, "nack", fb.ID)
	assert.Equal(t, "pli", fb.Param1)
}
