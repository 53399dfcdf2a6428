package sdp

// lowerSenders builds one RtpSender per RTP media applicable to the sender
// role at the given location (spec §4.7.5).
func lowerSenders(loc Location, d *SdpDoc, rtpLines []RtpMediaLine) []RtpSender {
	var out []RtpSender
	mlIdx := 0

	for idx, m := range d.MediaLines {
		if m.Proto != ProtocolRTP {
			continue
		}
		media := rtpLines[mlIdx]
		mlIdx++

		dir := effectiveDirection(m.MediaDirection, d.MediaDirection)
		if !applicable(roleSender, loc, dir) {
			continue
		}

		cname := findSsrcAttr(m, "cname")
		if cname == nil || len(cname.AttributeValues) == 0 {
			// no a=ssrc ... cname: pair means no encoding source to
			// describe a sender for (spec §8 scenario 1).
			continue
		}

		params := SenderParameters{
			Codecs:           media.SenderCapabilities.Codecs,
			HeaderExtensions: media.SenderCapabilities.HeaderExtensions,
			Rtcp: SenderRtcpParameters{
				Mux:         m.RtcpMux,
				ReducedSize: m.RtcpRsize,
			},
			MediaStreamIDs: map[string]struct{}{},
		}
		if m.Mid != nil {
			params.MuxID = *m.Mid
		}

		fillStreamIDs(&params, m)
		params.Encodings = []EncodingParameters{buildEncoding(m, media)}
		params.Rtcp.Cname = cname.AttributeValues[0]

		var senderID string
		if m.Mid != nil {
			senderID = *m.Mid
		} else {
			senderID = hashID("sender_index:", uint64(idx))
		}

		out = append(out, RtpSender{
			ID:             senderID,
			RtpMediaLineID: media.ID,
			Details:        media.Details,
			Parameters:     params,
		})
	}

	return out
}

// fillStreamIDs derives MediaStreamIDs/MediaStreamTrackID from msid lines,
// falling back to ssrc lines carrying an msid attribute (spec §4.7.5).
func fillStreamIDs(params *SenderParameters, m *MLine) {
	if len(m.MsidLines) > 0 {
		for _, ms := range m.MsidLines {
			params.MediaStreamIDs[ms.ID] = struct{}{}
			if ms.AppData != "" {
				params.MediaStreamTrackID = ms.AppData
			}
		}
		return
	}
	if ms := findSsrcAttr(m, "msid"); ms != nil && len(ms.AttributeValues) > 0 {
		params.MediaStreamIDs[ms.AttributeValues[0]] = struct{}{}
		if len(ms.AttributeValues) > 1 {
			params.MediaStreamTrackID = ms.AttributeValues[1]
		}
	}
}

func findSsrcAttr(m *MLine, attr string) *ASSRCLine {
	for _, s := range m.SsrcLines {
		if s.Attribute == attr {
			return s
		}
	}
	return nil
}

func findSsrcGroup(m *MLine, semantic string) *SsrcGroup {
	for i := range m.SsrcGroupLines {
		if m.SsrcGroupLines[i].Semantics == semantic {
			return &m.SsrcGroupLines[i]
		}
	}
	return nil
}

// buildEncoding assembles the one EncodingParameters this media emits (spec
// §4.7.5): primary ssrc from the cname-attributed ssrc line, rtx/fec
// companions from FID/FEC-FR ssrc-groups.
func buildEncoding(m *MLine, media RtpMediaLine) EncodingParameters {
	var enc EncodingParameters

	if cname := findSsrcAttr(m, "cname"); cname != nil {
		ssrc := cname.SSRC
		enc.Ssrc = &ssrc
	}

	if fid := findSsrcGroup(m, "FID"); fid != nil && len(fid.Ssrcs) > 1 {
		enc.Rtx = &RtxParameters{Ssrc: fid.Ssrcs[1]}
	}

	if fec := findSsrcGroup(m, "FEC-FR"); fec != nil && len(fec.Ssrcs) > 1 {
		mechanism := ""
		if len(media.FecMechanisms) > 0 {
			mechanism = media.FecMechanisms[0]
		}
		enc.Fec = &FecParameters{Ssrc: fec.Ssrcs[1], Mechanism: mechanism}
	}

	return enc
}
