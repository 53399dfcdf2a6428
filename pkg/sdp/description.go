package sdp

import "github.com/arzzra/rtcsdp/pkg/transport"

// Location distinguishes capabilities computed for the local peer from
// those computed for the remote peer (spec §6.2); it only affects the
// sender/receiver applicability split in §4.7.5.
type Location int

const (
	LocationLocal Location = iota
	LocationRemote
)

// role is the internal counterpart used by applicable(); senders are the
// only role CreateDescription currently emits (spec §4.7.5 also defines
// receiver/transceiver for consumers that want the full split).
type role int

const (
	roleSender role = iota
	roleReceiver
	roleTransceiver
)

// applicable implements the table in spec §4.7.5.
func applicable(r role, loc Location, dir Direction) bool {
	switch r {
	case roleSender:
		if loc == LocationLocal {
			return dir.CanSend()
		}
		return dir.CanReceive()
	case roleReceiver:
		if loc == LocationLocal {
			return dir.CanReceive()
		}
		return dir.CanSend()
	case roleTransceiver:
		return dir.CanSend() && dir.CanReceive()
	default:
		return false
	}
}

// Details holds the session-level bookkeeping fields common to every media
// line kind (spec §3.4).
type Details struct {
	Username          string
	SessionID         uint64
	SessionVersion    uint64
	SessionName       string
	StartTime         uint64
	EndTime           uint64
	UnicastAddress    string
	ConnectionData    string
	Protocol          string
	Port              uint16
	Direction         Direction
}

// Params is the ICE/DTLS/SRTP-SDES bundle attached to one RTP/RTCP leg of a
// Transport.
type Params struct {
	IceParameters      transport.IceParameters
	IceCandidates      []transport.IceCandidate
	DtlsParameters     *transport.DtlsParameters
	SrtpSdesParameters *transport.SrtpSdesParameters
	EndOfCandidates    bool
}

// Transport is the lowered form of one media's (or bundle group's) ICE
// transport (spec §3.4, §4.7.2).
type Transport struct {
	ID   string
	Rtp  Params
	Rtcp *Params
}

// CodecCapability is one negotiable codec on an RTP media line.
type CodecCapability struct {
	Name               string
	Kind               string // "audio" or "video"
	ClockRate          uint32
	PreferredPayloadType uint8
	Ptime              *uint64
	Channels           *uint32
	Parameters         interface{} // one of the *Parameters structs below
	RtcpFeedback       []RtcpFb
}

// HeaderExtension is a lowered a=extmap entry, gated by direction into the
// sender/receiver capability sets it appears in.
type HeaderExtension struct {
	Kind         string
	PreferredID  uint32
	URI          string
}

// RtpMediaLine is the lowered form of one proto==rtp media (spec §3.4,
// §4.7.3).
type RtpMediaLine struct {
	ID                   string
	TransportID          string
	PrivateTransportID   string
	Details              Details
	MediaType            string
	SenderCapabilities   MediaCapabilities
	ReceiverCapabilities MediaCapabilities
	FecMechanisms        []string
}

// MediaCapabilities is the codec/header-extension set visible to one role
// at one location.
type MediaCapabilities struct {
	Codecs           []CodecCapability
	HeaderExtensions []HeaderExtension
}

// SctpMediaLine is the lowered form of one proto==sctp media (spec §3.4,
// §4.7.4).
type SctpMediaLine struct {
	ID           string
	TransportID  string
	Details      Details
	Port         uint16
	Capabilities SctpCapabilities
}

type SctpCapabilities struct {
	MaxMessageSize uint64
}

// RtxParameters, FecParameters describe one encoding's retransmission/FEC
// companion SSRC (spec §3.4's RtpSender.parameters.encodings).
type RtxParameters struct{ Ssrc uint32 }
type FecParameters struct {
	Ssrc      uint32
	Mechanism string
}

// EncodingParameters is one simulcast-free RTP encoding layer.
type EncodingParameters struct {
	Ssrc *uint32
	Rtx  *RtxParameters
	Fec  *FecParameters
}

// SenderRtcpParameters mirrors the rtcp sub-object of RtpSender.parameters.
type SenderRtcpParameters struct {
	Mux         bool
	ReducedSize bool
	Cname       string
}

// SenderParameters is RtpSender.parameters (spec §3.4).
type SenderParameters struct {
	MuxID            string
	Rtcp             SenderRtcpParameters
	Codecs           []CodecCapability
	HeaderExtensions []HeaderExtension
	Encodings        []EncodingParameters
	MediaStreamIDs   map[string]struct{}
	MediaStreamTrackID string
}

// RtpSender is the lowered form of one media's outbound stream (spec §3.4,
// §4.7.5).
type RtpSender struct {
	ID             string
	RtpMediaLineID string
	Details        Details
	Parameters     SenderParameters
}

// Description is the full output of CreateDescription: one SDP document
// lowered into a normalized, cross-referenced object model (spec §3.4).
type Description struct {
	Details        Details
	Transports     []Transport
	RtpMediaLines  []RtpMediaLine
	SctpMediaLines []SctpMediaLine
	RtpSenders     []RtpSender
}
