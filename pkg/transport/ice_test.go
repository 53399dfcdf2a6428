package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCandidateType(t *testing.T) {
	cases := []struct {
		name string
		tok  string
		want IceCandidateType
	}{
		{"host", "host", IceCandidateHost},
		{"srflx", "srflx", IceCandidateSrflx},
		{"prflx", "prflx", IceCandidatePrflx},
		{"relay", "relay", IceCandidateRelay},
		{"unknown defaults to host", "bogus", IceCandidateHost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToCandidateType(tc.tok))
		})
	}
}

func TestToTCPCandidateType(t *testing.T) {
	assert.Equal(t, IceTcpActive, ToTCPCandidateType("active"))
	assert.Equal(t, IceTcpCandidateType(""), ToTCPCandidateType("bogus"))
}

func TestToProtocol(t *testing.T) {
	assert.Equal(t, "udp", ToProtocol("UDP"))
	assert.Equal(t, "tcp", ToProtocol("tcp"))
	assert.Equal(t, "sctp", ToProtocol("sctp"))
}
