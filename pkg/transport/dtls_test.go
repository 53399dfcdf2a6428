package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromSetup(t *testing.T) {
	cases := []struct {
		setup string
		want  Role
	}{
		{"active", RoleClient},
		{"passive", RoleServer},
		{"actpass", RoleAuto},
		{"holdconn", RoleAuto},
		{"", RoleAuto},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RoleFromSetup(tc.setup), "setup=%q", tc.setup)
	}
}

func TestDefaultCipherSuites(t *testing.T) {
	suites := DefaultCipherSuites()
	assert.NotEmpty(t, suites)
}
