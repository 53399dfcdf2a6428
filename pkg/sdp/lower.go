package sdp

// CreateDescription lowers a folded SdpDoc into the public Description
// model (spec §4.7). location affects only the sender/receiver
// applicability split (§4.7.5); it does not change anything about parsing.
func CreateDescription(location Location, d *SdpDoc, opts ...ParseOption) (*Description, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	details := lowerDetails(d)

	reps := bundleRepresentatives(d)
	privateIDs := make(map[int]string, len(d.MediaLines))
	transportIDs := make(map[int]string, len(d.MediaLines))
	builtTransports := make(map[string]Transport, len(d.MediaLines))
	var transportOrder []string

	for idx, m := range d.MediaLines {
		privateIDs[idx] = mediaTransportID(m, idx)
		transportIDs[idx] = resolveTransportID(m, privateIDs[idx], reps)

		if t := buildTransport(d, m, idx); t != nil {
			if _, exists := builtTransports[t.ID]; !exists {
				transportOrder = append(transportOrder, t.ID)
			}
			builtTransports[t.ID] = *t
		}
	}

	rtpLines, err := lowerRtpMediaLines(location, d, transportIDs, privateIDs, o.warnFn)
	if err != nil {
		return nil, err
	}
	sctpLines := lowerSctpMediaLines(d, transportIDs)

	// lowerSenders walks d.MediaLines in lockstep with rtpLines, so it must
	// run before any media line is dropped below.
	senders := lowerSenders(location, d, rtpLines)

	rtpLines = dropMediaLinesWithoutTransport(rtpLines,
		func(rm RtpMediaLine) (string, string) { return rm.ID, rm.TransportID },
		builtTransports, o.warnFn)
	sctpLines = dropMediaLinesWithoutTransport(sctpLines,
		func(sm SctpMediaLine) (string, string) { return sm.ID, sm.TransportID },
		builtTransports, o.warnFn)

	senders = dropSendersWithoutMediaLine(senders, rtpLines)

	used := make(map[string]bool)
	for _, rm := range rtpLines {
		used[rm.TransportID] = true
	}
	for _, sm := range sctpLines {
		used[sm.TransportID] = true
	}

	var transports []Transport
	for _, id := range transportOrder {
		if used[id] {
			transports = append(transports, builtTransports[id])
		}
	}

	return &Description{
		Details:        details,
		Transports:     transports,
		RtpMediaLines:  rtpLines,
		SctpMediaLines: sctpLines,
		RtpSenders:     senders,
	}, nil
}

// dropMediaLinesWithoutTransport removes any media line whose transport_id
// doesn't resolve to a built Transport (spec §3.4/§8: a media line without a
// resolvable transport is dropped, not kept dangling), warning once per
// dropped line via WarnMediaLineDropped.
func dropMediaLinesWithoutTransport[T any](lines []T, ids func(T) (id, transportID string), built map[string]Transport, warnFn WarnFunc) []T {
	var out []T
	for _, line := range lines {
		id, transportID := ids(line)
		if _, ok := built[transportID]; !ok {
			warn(warnFn, WarnMediaLineDropped, 0, "dropping media line %q: transport %q is not resolvable", id, transportID)
			continue
		}
		out = append(out, line)
	}
	return out
}

// dropSendersWithoutMediaLine removes any RtpSender whose owning media line
// was itself dropped by dropMediaLinesWithoutTransport, keeping the two
// lists consistent without needing a second warning pass.
func dropSendersWithoutMediaLine(senders []RtpSender, keptRtpLines []RtpMediaLine) []RtpSender {
	kept := make(map[string]bool, len(keptRtpLines))
	for _, rm := range keptRtpLines {
		kept[rm.ID] = true
	}
	var out []RtpSender
	for _, s := range senders {
		if kept[s.RtpMediaLineID] {
			out = append(out, s)
		}
	}
	return out
}

// lowerDetails populates the session-level Details from o/s/t/c (spec
// §4.7.1).
func lowerDetails(d *SdpDoc) Details {
	var details Details
	if d.OLine != nil {
		details.Username = d.OLine.Username
		details.SessionID = d.OLine.SessionID
		details.SessionVersion = d.OLine.SessionVersion
		details.UnicastAddress = d.OLine.UnicastAddress
	}
	if d.SLine != nil {
		details.SessionName = d.SLine.Name
	}
	if d.TLine != nil {
		details.StartTime = d.TLine.Start
		details.EndTime = d.TLine.End
	}
	if d.CLine != nil {
		details.ConnectionData = d.CLine.ConnectionAddress
	}
	if d.MediaDirection != nil {
		details.Direction = *d.MediaDirection
	} else {
		details.Direction = DirectionSendRecv
	}
	return details
}
