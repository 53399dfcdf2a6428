package sdp

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashID_MatchesDefinition(t *testing.T) {
	sum := sha1.Sum([]byte("transport_index:" + "0"))
	want := hex.EncodeToString(sum[:])
	assert.Equal(t, want, hashID("transport_index:", 0))
}

func TestHashID_StableAndDistinctPerIndex(t *testing.T) {
	a := hashID("media_line_index:", 0)
	b := hashID("media_line_index:", 1)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, hashID("media_line_index:", 0))
}

func TestHashID_DistinctPerTag(t *testing.T) {
	a := hashID("sender_index:", 0)
	b := hashID("transport_index:", 0)
	assert.NotEqual(t, a, b)
}
