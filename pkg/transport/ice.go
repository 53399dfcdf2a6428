package transport

// IceParameters carries the per-media ICE credentials exchanged over SDP's
// ice-ufrag/ice-pwd attributes.
type IceParameters struct {
	UsernameFragment string
	Password         string
	IceLite          bool
}

// IceCandidateType mirrors the cand-type token in a=candidate lines.
type IceCandidateType string

const (
	IceCandidateHost  IceCandidateType = "host"
	IceCandidateSrflx IceCandidateType = "srflx"
	IceCandidatePrflx IceCandidateType = "prflx"
	IceCandidateRelay IceCandidateType = "relay"
)

// IceTcpCandidateType mirrors the optional tcptype extension on candidate
// lines carrying tcp transport.
type IceTcpCandidateType string

const (
	IceTcpActive  IceTcpCandidateType = "active"
	IceTcpPassive IceTcpCandidateType = "passive"
	IceTcpSo      IceTcpCandidateType = "so"
)

// IceCandidate is a lowered a=candidate line.
type IceCandidate struct {
	Foundation    string
	ComponentID   uint32
	Transport     string
	Priority      uint64
	IP            string
	Port          uint16
	Type          IceCandidateType
	TcpType       IceTcpCandidateType
	RelatedAddr   string
	RelatedPort   *uint16
}

// ToCandidateType maps the raw candidate_type token to IceCandidateType,
// defaulting unrecognized tokens to host so lowering never panics on an
// unanticipated vendor extension.
func ToCandidateType(token string) IceCandidateType {
	switch IceCandidateType(token) {
	case IceCandidateHost, IceCandidateSrflx, IceCandidatePrflx, IceCandidateRelay:
		return IceCandidateType(token)
	default:
		return IceCandidateHost
	}
}

// ToTCPCandidateType maps the tcptype extension value, if present.
func ToTCPCandidateType(token string) IceTcpCandidateType {
	switch IceTcpCandidateType(token) {
	case IceTcpActive, IceTcpPassive, IceTcpSo:
		return IceTcpCandidateType(token)
	default:
		return ""
	}
}

// ToProtocol normalizes a candidate's transport token ("UDP"/"TCP") to
// lowercase, the form the rest of the stack expects.
func ToProtocol(token string) string {
	switch token {
	case "UDP", "udp":
		return "udp"
	case "TCP", "tcp":
		return "tcp"
	default:
		return token
	}
}
