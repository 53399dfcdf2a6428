package sdp

// reservedCodec is a built-in fallback for a payload type that has no
// rtpmap on the wire, per RFC 3551's static assignment table. Grounded on
// the same PCMU/GSM/PCMA/G722/G728/G729 constants pkg/media.PayloadType*
// already carries for the RTP send/receive path, extended with the rest of
// RFC 3551's audio/video statics that a remote peer may still rely on.
type reservedCodec struct {
	name      string
	kind      string
	clockRate uint32
	channels  uint32
}

var reservedPayloadTypes = map[uint8]reservedCodec{
	0:  {"pcmu", "audio", 8000, 1},
	3:  {"gsm", "audio", 8000, 1},
	4:  {"g723", "audio", 8000, 1},
	5:  {"dvi4", "audio", 8000, 1},
	6:  {"dvi4", "audio", 16000, 1},
	7:  {"lpc", "audio", 8000, 1},
	8:  {"pcma", "audio", 8000, 1},
	9:  {"g722", "audio", 8000, 1},
	10: {"l16", "audio", 44100, 2},
	11: {"l16", "audio", 44100, 1},
	12: {"qcelp", "audio", 8000, 1},
	13: {"cn", "audio", 8000, 1},
	14: {"mpa", "audio", 90000, 0},
	15: {"g728", "audio", 8000, 1},
	16: {"dvi4", "audio", 11025, 1},
	17: {"dvi4", "audio", 22050, 1},
	18: {"g729", "audio", 8000, 1},
	25: {"celb", "video", 90000, 0},
	26: {"jpeg", "video", 90000, 0},
	28: {"nv", "video", 90000, 0},
	31: {"h261", "video", 90000, 0},
	32: {"mpv", "video", 90000, 0},
	33: {"mp2t", "video", 90000, 0},
	34: {"h263", "video", 90000, 0},
}

// reservedCodecFor returns the RFC 3551 static codec for pt and whether one
// is defined (dynamic payload types 96-127 never are).
func reservedCodecFor(pt uint8) (reservedCodec, bool) {
	c, ok := reservedPayloadTypes[pt]
	return c, ok
}
