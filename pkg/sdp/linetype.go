package sdp

// LineType tags a single recognized SDP line letter. Unrecognized letters
// are dropped by the tokenizer (spec §4.1 rule 2).
type LineType byte

const (
	LineVersion      LineType = 'v'
	LineOrigin       LineType = 'o'
	LineSessionName  LineType = 's'
	LineBandwidth    LineType = 'b'
	LineTiming       LineType = 't'
	LineAttribute    LineType = 'a'
	LineMedia        LineType = 'm'
	LineConnection   LineType = 'c'
)

// LineTypeFromByte resolves a single letter to a LineType. ok is false for
// any letter this grammar doesn't recognize (i=, u=, e=, p=, r=, z=, k= and
// anything else), per spec §1 Non-goals.
func LineTypeFromByte(b byte) (LineType, bool) {
	switch LineType(b) {
	case LineVersion, LineOrigin, LineSessionName, LineBandwidth, LineTiming,
		LineAttribute, LineMedia, LineConnection:
		return LineType(b), true
	default:
		return 0, false
	}
}

// Attribute tags a recognized a= name.
type Attribute int

const (
	AttrUnknown Attribute = iota
	AttrGroup
	AttrBundleOnly
	AttrMsid
	AttrMsidSemantic
	AttrIceUfrag
	AttrIcePwd
	AttrIceOptions
	AttrIceLite
	AttrCandidate
	AttrEndOfCandidates
	AttrFingerprint
	AttrCrypto
	AttrSetup
	AttrMid
	AttrExtmap
	AttrSendrecv
	AttrSendonly
	AttrRecvonly
	AttrInactive
	AttrRtpmap
	AttrFmtp
	AttrRtcp
	AttrRtcpMux
	AttrRtcpFb
	AttrRtcpRsize
	AttrPtime
	AttrMaxptime
	AttrSsrc
	AttrSsrcGroup
	AttrSimulcast
	AttrRid
	AttrSctpPort
	AttrMaxMessageSize
)

var attributeNames = map[string]Attribute{
	"group":             AttrGroup,
	"bundle-only":       AttrBundleOnly,
	"msid":              AttrMsid,
	"msid-semantic":     AttrMsidSemantic,
	"ice-ufrag":         AttrIceUfrag,
	"ice-pwd":           AttrIcePwd,
	"ice-options":       AttrIceOptions,
	"ice-lite":          AttrIceLite,
	"candidate":         AttrCandidate,
	"end-of-candidates": AttrEndOfCandidates,
	"fingerprint":       AttrFingerprint,
	"crypto":            AttrCrypto,
	"setup":             AttrSetup,
	"mid":               AttrMid,
	"extmap":            AttrExtmap,
	"sendrecv":          AttrSendrecv,
	"sendonly":          AttrSendonly,
	"recvonly":          AttrRecvonly,
	"inactive":          AttrInactive,
	"rtpmap":            AttrRtpmap,
	"fmtp":              AttrFmtp,
	"rtcp":              AttrRtcp,
	"rtcp-mux":          AttrRtcpMux,
	"rtcp-fb":           AttrRtcpFb,
	"rtcp-rsize":        AttrRtcpRsize,
	"ptime":             AttrPtime,
	"maxptime":          AttrMaxptime,
	"ssrc":              AttrSsrc,
	"ssrc-group":        AttrSsrcGroup,
	"simulcast":         AttrSimulcast,
	"rid":               AttrRid,
	"sctp-port":         AttrSctpPort,
	"max-message-size":  AttrMaxMessageSize,
}

// LookupAttribute resolves an attribute name by case-sensitive match.
func LookupAttribute(name string) Attribute {
	if a, ok := attributeNames[name]; ok {
		return a
	}
	return AttrUnknown
}

// RequiresValue reports whether the attribute must carry a value after ':'.
func (a Attribute) RequiresValue() bool {
	switch a {
	case AttrBundleOnly, AttrIceLite, AttrEndOfCandidates, AttrSendrecv,
		AttrSendonly, AttrRecvonly, AttrInactive, AttrRtcpMux, AttrRtcpRsize:
		return false
	default:
		return true
	}
}

// RequiresEmptyValue reports whether the attribute must NOT carry a value
// (a pure flag).
func (a Attribute) RequiresEmptyValue() bool {
	return !a.RequiresValue()
}

// Scope is a bitmask of the levels a line/attribute may legally appear at.
type Scope int

const (
	ScopeSession Scope = 1 << iota
	ScopeMedia
	ScopeSource
)

const (
	ScopeSessionMedia = ScopeSession | ScopeMedia
	ScopeMediaSource  = ScopeMedia | ScopeSource
	ScopeAll          = ScopeSession | ScopeMedia | ScopeSource
)

func (s Scope) allows(at Scope) bool { return s&at != 0 }

// lineScopes gives the legal scope mask for each recognized line type.
var lineScopes = map[LineType]Scope{
	LineVersion:     ScopeSession,
	LineOrigin:      ScopeSession,
	LineSessionName: ScopeSession,
	LineTiming:      ScopeSession,
	LineMedia:       ScopeSession, // m= is validated against session scope, then switches to media
	LineBandwidth:   ScopeSessionMedia,
	LineConnection:  ScopeSessionMedia,
}

// attributeScopes gives the legal scope mask for each recognized attribute,
// per the abridged table in spec §4.3.
var attributeScopes = map[Attribute]Scope{
	AttrGroup:           ScopeSession,
	AttrIceOptions:      ScopeSession,
	AttrIceLite:         ScopeSession,
	AttrMsidSemantic:    ScopeSession,
	AttrBundleOnly:      ScopeMedia,
	AttrMid:             ScopeMedia,
	AttrMsid:            ScopeMedia,
	AttrCandidate:       ScopeMedia,
	AttrEndOfCandidates: ScopeMedia,
	AttrCrypto:          ScopeMedia,
	AttrRtpmap:          ScopeMedia,
	AttrRtcp:            ScopeMedia,
	AttrRtcpMux:         ScopeMedia,
	AttrRtcpFb:          ScopeMedia,
	AttrRtcpRsize:       ScopeMedia,
	AttrPtime:           ScopeMedia,
	AttrMaxptime:        ScopeMedia,
	AttrSsrc:            ScopeMedia,
	AttrSsrcGroup:       ScopeMedia,
	AttrSimulcast:       ScopeMedia,
	AttrRid:             ScopeMedia,
	AttrSctpPort:        ScopeMedia,
	AttrMaxMessageSize:  ScopeMedia,
	AttrIceUfrag:        ScopeSessionMedia,
	AttrIcePwd:          ScopeSessionMedia,
	AttrFingerprint:     ScopeSessionMedia,
	AttrSetup:           ScopeSessionMedia,
	AttrExtmap:          ScopeSessionMedia,
	AttrSendrecv:        ScopeSessionMedia,
	AttrSendonly:        ScopeSessionMedia,
	AttrRecvonly:        ScopeSessionMedia,
	AttrInactive:        ScopeSessionMedia,
	AttrFmtp:            ScopeMediaSource,
}

// allowedScopesForLine returns the scope mask for a plain (non-attribute)
// line type.
func allowedScopesForLine(lt LineType) Scope {
	if s, ok := lineScopes[lt]; ok {
		return s
	}
	return ScopeSession
}

// allowedScopesForAttribute returns the scope mask for an attribute. Unknown
// attributes are legal anywhere — they're dropped with a warning, not a
// scope error.
func allowedScopesForAttribute(a Attribute) Scope {
	if s, ok := attributeScopes[a]; ok {
		return s
	}
	return ScopeAll
}
