package sdp

// Direction is the media direction carried by sendrecv/sendonly/recvonly/
// inactive attributes, and by the direction token inside extmap/rid.
// Mirrors pkg/rtp.Direction's CanSend/CanReceive shape.
type Direction int

const (
	DirectionNone Direction = iota // "inactive"
	DirectionSend
	DirectionRecv
	DirectionSendRecv
)

func (d Direction) String() string {
	switch d {
	case DirectionSend:
		return "sendonly"
	case DirectionRecv:
		return "recvonly"
	case DirectionSendRecv:
		return "sendrecv"
	default:
		return "inactive"
	}
}

// CanSend reports whether this direction allows outbound traffic.
func (d Direction) CanSend() bool { return d == DirectionSend || d == DirectionSendRecv }

// CanReceive reports whether this direction allows inbound traffic.
func (d Direction) CanReceive() bool { return d == DirectionRecv || d == DirectionSendRecv }

func parseDirectionToken(tok string) (Direction, bool) {
	switch tok {
	case "sendrecv", "SENDRECV":
		return DirectionSendRecv, true
	case "sendonly", "SENDONLY":
		return DirectionSend, true
	case "recvonly", "RECVONLY":
		return DirectionRecv, true
	case "inactive", "INACTIVE":
		return DirectionNone, true
	default:
		return DirectionNone, false
	}
}

// ProtocolType classifies an m= line's transport protocol field.
type ProtocolType int

const (
	ProtocolUnknown ProtocolType = iota
	ProtocolRTP
	ProtocolSCTP
)

// protocolFromProtoStr derives ProtocolType from the proto field tokenized
// on '/', per spec §4.3 heuristics: anything containing "RTP" is RTP,
// anything containing "SCTP" or DTLS/SCTP style tokens is SCTP.
func protocolFromProtoStr(proto string) ProtocolType {
	hasRTP, hasSCTP := false, false
	for _, tok := range splitNonEmpty(proto, '/') {
		switch tok {
		case "RTP":
			hasRTP = true
		case "SCTP":
			hasSCTP = true
		}
	}
	switch {
	case hasSCTP:
		return ProtocolSCTP
	case hasRTP:
		return ProtocolRTP
	default:
		return ProtocolUnknown
	}
}

// --- typed AST value objects (spec §3.2) ---

type V struct{ Version uint64 }

type O struct {
	Username       string
	SessionID      uint64
	SessionVersion uint64
	NetType        string
	AddrType       string
	UnicastAddress string
}

type S struct{ Name string }

type T struct{ Start, End uint64 }

type C struct {
	NetType           string
	AddrType          string
	ConnectionAddress string
}

type B struct {
	BWType    string
	Bandwidth uint64
}

type M struct {
	Media      string
	Port       uint16
	PortCount  *uint16
	ProtoStr   string
	Proto      ProtocolType
	Formats    []string
}

type ExtPair struct{ Key, Value string }

type Candidate struct {
	Foundation     string
	ComponentID    uint32
	Transport      string
	Priority       uint64
	ConnAddr       string
	Port           uint16
	Typ            string // literal "typ" keyword already validated
	CandidateType  string // host/srflx/prflx/relay
	RelAddr        string
	RelPort        *uint16
	ExtensionPairs []ExtPair
}

type Fingerprint struct {
	HashFunc    string
	Fingerprint string
}

type KeyParam struct {
	Method string
	Info   string
}

type Crypto struct {
	Tag           uint64
	Suite         string
	KeyParams     []KeyParam
	SessionParams []string
}

type Extmap struct {
	ID            uint32
	Direction     Direction
	HasDirection  bool
	URI           string
	ExtAttributes string
}

type RtpMap struct {
	PayloadType     uint8
	EncodingName    string
	ClockRate       uint32
	EncodingParams  *uint32
}

type Fmtp struct {
	Format         uint8
	FormatSpecific []string
}

type Rtcp struct {
	Port     uint16
	NetType  string
	AddrType string
	ConnAddr string
}

type RtcpFb struct {
	PayloadType *uint8 // nil means wildcard "*"
	ID          string
	Param1      string
	Param2      string
}

type Ssrc struct {
	SSRC            uint32
	Attribute       string
	AttributeValues []string
	FmtpChildren    []Fmtp
}

type SsrcGroup struct {
	Semantics string
	Ssrcs     []uint32
}

type RidParam struct{ Key, Value string }

type Rid struct {
	ID           string
	Direction    Direction
	Params       []RidParam
	PayloadTypes []uint8
}

type SimulcastAlt struct {
	Rid    string
	Paused bool
}

type SimulcastEntry struct {
	Direction    Direction
	Alternatives [][]SimulcastAlt
}

type Simulcast struct {
	Entries []SimulcastEntry
}

type Msid struct {
	ID      string
	AppData string
}

type Group struct {
	Semantic             string
	IdentificationTags []string
}

type IceOptions struct{ Tags []string }

type SctpPort struct{ Port uint16 }

type MaxMessageSize struct{ Bytes uint64 }

type PTime struct{ MS uint64 }

type MaxPTime struct{ MS uint64 }

// SetupRole is the DTLS setup attribute value (raw token, lowering maps it
// to a concrete dtls.Role in pkg/transport).
type SetupRole string

const (
	SetupActive   SetupRole = "active"
	SetupPassive  SetupRole = "passive"
	SetupActPass  SetupRole = "actpass"
	SetupHoldconn SetupRole = "holdconn"
)

type Setup struct{ Value SetupRole }

type Mid struct{ Value string }

type IceUfrag struct{ Value string }

type IcePwd struct{ Value string }
