package sdp

import (
	"strconv"
	"strings"
)

// lowerRtpMediaLines builds one RtpMediaLine per proto==rtp media (spec
// §4.7.3). transportIDs maps each media's index to its resolved transport
// id (already bundle-resolved); privateIDs maps it to its own private id.
func lowerRtpMediaLines(loc Location, d *SdpDoc, transportIDs, privateIDs map[int]string, warnFn WarnFunc) ([]RtpMediaLine, error) {
	var out []RtpMediaLine

	for idx, m := range d.MediaLines {
		if m.Proto != ProtocolRTP {
			continue
		}

		details := Details{
			Protocol:       m.ProtoStr,
			Port:           m.Port,
			Direction:      effectiveDirection(m.MediaDirection, d.MediaDirection),
			ConnectionData: connectionDataFor(m, d),
		}

		codecs, fec, err := lowerCodecs(m, warnFn)
		if err != nil {
			return nil, err
		}

		checkSimulcastRids(m, warnFn)

		senderExt, receiverExt := lowerHeaderExtensions(loc, d, m)

		id := m.Mid
		var mediaID string
		if id != nil {
			mediaID = *id
		} else {
			mediaID = hashID("media_line_index:", uint64(idx))
		}

		out = append(out, RtpMediaLine{
			ID:                 mediaID,
			TransportID:        transportIDs[idx],
			PrivateTransportID: privateIDs[idx],
			Details:            details,
			MediaType:          m.Media,
			SenderCapabilities: MediaCapabilities{
				Codecs:           codecs,
				HeaderExtensions: senderExt,
			},
			ReceiverCapabilities: MediaCapabilities{
				Codecs:           codecs,
				HeaderExtensions: receiverExt,
			},
			FecMechanisms: fec,
		})
	}

	return out, nil
}

// checkSimulcastRids cross-validates every rid an a=simulcast line
// references against the media's own a=rid lines, warning (not failing) on
// a dangling reference — ported from the original C++ parser's behavior
// (SPEC_FULL.md §4.8).
func checkSimulcastRids(m *MLine, warnFn WarnFunc) {
	if m.Simulcast == nil {
		return
	}
	known := make(map[string]bool, len(m.RidLines))
	for _, r := range m.RidLines {
		known[r.ID] = true
	}
	for _, entry := range m.Simulcast.Entries {
		for _, alt := range entry.Alternatives {
			for _, rid := range alt {
				if !known[rid.Rid] {
					warn(warnFn, WarnSimulcastRidNotFound, 0, "simulcast references unknown rid %q", rid.Rid)
				}
			}
		}
	}
}

func effectiveDirection(media, session *Direction) Direction {
	if media != nil {
		return *media
	}
	if session != nil {
		return *session
	}
	return DirectionSendRecv
}

func connectionDataFor(m *MLine, d *SdpDoc) string {
	if m.CLine != nil {
		return m.CLine.ConnectionAddress
	}
	if d.CLine != nil {
		return d.CLine.ConnectionAddress
	}
	return ""
}

func findFmtp(m *MLine, pt uint8) *Fmtp {
	for i := range m.FmtpLines {
		if m.FmtpLines[i].Format == pt {
			return &m.FmtpLines[i]
		}
	}
	return nil
}

func rtcpFbFor(m *MLine, pt uint8) []RtcpFb {
	var out []RtcpFb
	for _, fb := range m.RtcpFbLines {
		if fb.PayloadType == nil || *fb.PayloadType == pt {
			out = append(out, fb)
		}
	}
	return out
}

// lowerCodecs resolves each format in m.Formats to a CodecCapability (spec
// §4.7.3 steps 3-5), falling back to the RFC 3551 reserved table when no
// rtpmap matches, and derives the media's FEC mechanism list.
func lowerCodecs(m *MLine, warnFn WarnFunc) ([]CodecCapability, []string, error) {
	var codecs []CodecCapability
	hasRed, hasUlpfec, hasFlexfec := false, false, false

	for _, fstr := range m.Formats {
		ptVal, err := strconv.ParseUint(fstr, 10, 8)
		if err != nil {
			return nil, nil, newErr(MalformedAttribute, 0, fstr, "malformed payload type in m= formats: %v", err)
		}
		pt := uint8(ptVal)

		var name string
		var clockRate uint32
		var channels *uint32

		if rm := findRtpmap(m, pt); rm != nil {
			name = rm.EncodingName
			clockRate = rm.ClockRate
			if rm.EncodingParams != nil {
				channels = rm.EncodingParams
			}
		} else if rc, ok := reservedCodecFor(pt); ok {
			name = rc.name
			clockRate = rc.clockRate
			if rc.channels > 0 {
				c := rc.channels
				channels = &c
			}
		} else {
			warn(warnFn, WarnUnknownCodecPayload, 0, "no rtpmap or reserved mapping for payload type %d", pt)
			continue
		}

		lname := strings.ToLower(name)
		switch lname {
		case "red":
			hasRed = true
		case "ulpfec":
			hasUlpfec = true
		case "flexfec":
			hasFlexfec = true
		}

		cap := CodecCapability{
			Name:                 lname,
			Kind:                 mediaKind(m.Media),
			ClockRate:            clockRate,
			PreferredPayloadType: pt,
			Ptime:                m.Ptime,
			Channels:             channels,
			RtcpFeedback:         rtcpFbFor(m, pt),
		}

		if fmtp := findFmtp(m, pt); fmtp != nil {
			params, err := parseCodecParameters(0, lname, fmtp.FormatSpecific)
			if err != nil {
				return nil, nil, err
			}
			cap.Parameters = params
		}

		codecs = append(codecs, cap)
	}

	var fec []string
	switch {
	case hasRed && hasUlpfec:
		fec = append(fec, "red+ulpfec")
	case hasRed:
		fec = append(fec, "red")
	}
	if hasFlexfec {
		fec = append(fec, "flexfec")
	}

	return codecs, fec, nil
}

func findRtpmap(m *MLine, pt uint8) *RtpMap {
	for i := range m.RtpmapLines {
		if m.RtpmapLines[i].PayloadType == pt {
			return &m.RtpmapLines[i]
		}
	}
	return nil
}

func mediaKind(media string) string {
	switch media {
	case "audio", "video":
		return media
	default:
		return ""
	}
}

// lowerHeaderExtensions splits a media's extmap lines into the sets visible
// to sender and receiver capabilities at the given location (spec §4.7.3
// step 6, applicability per §4.7.5).
func lowerHeaderExtensions(loc Location, d *SdpDoc, m *MLine) (sender, receiver []HeaderExtension) {
	all := append(append([]Extmap(nil), d.ExtmapLines...), m.ExtmapLines...)
	kind := mediaKind(m.Media)

	for _, e := range all {
		dir := DirectionSendRecv
		if e.HasDirection {
			dir = e.Direction
		}
		he := HeaderExtension{Kind: kind, PreferredID: e.ID, URI: e.URI}
		if applicable(roleSender, loc, dir) {
			sender = append(sender, he)
		}
		if applicable(roleReceiver, loc, dir) {
			receiver = append(receiver, he)
		}
	}
	return sender, receiver
}
