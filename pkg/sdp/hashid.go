package sdp

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
)

// hashID derives a stable identifier for a lowered object from a tag (its
// kind, e.g. "transport_index:" or "sender_index:") and its ordinal index within the
// document, per spec §6.2: hex(sha1(tag + decimal index)).
func hashID(tag string, index uint64) string {
	sum := sha1.Sum([]byte(tag + strconv.FormatUint(index, 10)))
	return hex.EncodeToString(sum[:])
}
