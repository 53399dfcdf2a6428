package sdp

const defaultMaxMessageSize = 65535

// lowerSctpMediaLines builds one SctpMediaLine per proto==sctp media (spec
// §4.7.4).
func lowerSctpMediaLines(d *SdpDoc, transportIDs map[int]string) []SctpMediaLine {
	var out []SctpMediaLine

	for idx, m := range d.MediaLines {
		if m.Proto != ProtocolSCTP {
			continue
		}

		details := Details{
			Protocol:       m.ProtoStr,
			Port:           m.Port,
			ConnectionData: connectionDataFor(m, d),
		}

		var port uint16
		if m.SctpPortLine != nil {
			port = *m.SctpPortLine
		}

		maxSize := uint64(defaultMaxMessageSize)
		if m.MaxMessageSize != nil {
			maxSize = *m.MaxMessageSize
		}

		var id string
		if m.Mid != nil {
			id = *m.Mid
		} else {
			id = hashID("media_line_index:", uint64(idx))
		}

		out = append(out, SctpMediaLine{
			ID:          id,
			TransportID: transportIDs[idx],
			Details:     details,
			Port:        port,
			Capabilities: SctpCapabilities{
				MaxMessageSize: maxSize,
			},
		})
	}

	return out
}
