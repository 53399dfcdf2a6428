package sdp

import "github.com/arzzra/rtcsdp/pkg/transport"

// mediaTransportID returns the stable id used to name a media's own
// transport object (spec §6.4): its mid if present, else a hashed index.
func mediaTransportID(m *MLine, index int) string {
	if m.Mid != nil {
		return *m.Mid
	}
	return hashID("transport_index:", uint64(index))
}

// buildTransport lowers one media line's ICE/DTLS/SRTP-SDES attributes into
// a Transport (spec §4.7.2). Returns nil if the media carries no ice-ufrag
// (no transport to build).
func buildTransport(d *SdpDoc, m *MLine, index int) *Transport {
	if m.IceUfrag == nil {
		return nil
	}

	t := &Transport{ID: mediaTransportID(m, index)}
	t.Rtp.IceParameters = transport.IceParameters{
		UsernameFragment: *m.IceUfrag,
		IceLite:          d.IceLite,
	}
	if m.IcePwd != nil {
		t.Rtp.IceParameters.Password = *m.IcePwd
	}

	if len(m.FingerprintLines) > 0 {
		dp := &transport.DtlsParameters{Role: transport.RoleAuto}
		if m.Setup != nil {
			dp.Role = transport.RoleFromSetup(string(*m.Setup))
		}
		for _, fp := range m.FingerprintLines {
			dp.Fingerprints = append(dp.Fingerprints, transport.DtlsFingerprint{
				Algorithm: fp.HashFunc,
				Value:     fp.Fingerprint,
			})
		}
		t.Rtp.DtlsParameters = dp
	}

	if len(m.CryptoLines) > 0 {
		sp := &transport.SrtpSdesParameters{}
		for _, c := range m.CryptoLines {
			cp := transport.CryptoParameters{
				Tag:           c.Tag,
				CryptoSuite:   c.Suite,
				SessionParams: append([]string(nil), c.SessionParams...),
			}
			for _, kp := range c.KeyParams {
				cp.KeyParams = append(cp.KeyParams, transport.KeyParameters{Method: kp.Method, Info: kp.Info})
			}
			sp.CryptoParameters = append(sp.CryptoParameters, cp)
		}
		t.Rtp.SrtpSdesParameters = sp
	}

	for _, c := range m.CandidateLines {
		ic := transport.IceCandidate{
			Foundation:  c.Foundation,
			ComponentID: c.ComponentID,
			Transport:   transport.ToProtocol(c.Transport),
			Priority:    c.Priority,
			IP:          c.ConnAddr,
			Port:        c.Port,
			Type:        transport.ToCandidateType(c.CandidateType),
			RelatedAddr: c.RelAddr,
			RelatedPort: c.RelPort,
		}
		for _, ep := range c.ExtensionPairs {
			if ep.Key == "tcptype" {
				ic.TcpType = transport.ToTCPCandidateType(ep.Value)
			}
		}
		if c.ComponentID <= 1 {
			t.Rtp.IceCandidates = append(t.Rtp.IceCandidates, ic)
		} else {
			if t.Rtcp == nil {
				t.Rtcp = &Params{}
			}
			t.Rtcp.IceCandidates = append(t.Rtcp.IceCandidates, ic)
		}
	}

	if m.EndOfCandidates {
		t.Rtp.EndOfCandidates = true
		if t.Rtcp != nil {
			t.Rtcp.EndOfCandidates = true
		}
	}

	if !m.RtcpMux && t.Rtcp == nil {
		t.Rtcp = &Params{}
	}

	return t
}

// bundleRepresentatives maps every mid that appears in a BUNDLE group to
// the group's first mid (spec §4.7.3 step 2).
func bundleRepresentatives(d *SdpDoc) map[string]string {
	reps := make(map[string]string)
	for _, g := range d.GroupLines {
		if g.Semantic != "BUNDLE" || len(g.IdentificationTags) == 0 {
			continue
		}
		rep := g.IdentificationTags[0]
		for _, mid := range g.IdentificationTags {
			reps[mid] = rep
		}
	}
	return reps
}

// resolveTransportID implements §4.7.3 step 2: if this media's mid is in a
// BUNDLE group, use the group's representative; otherwise the media's own
// (private) transport id.
func resolveTransportID(m *MLine, privateID string, reps map[string]string) string {
	if m.Mid != nil {
		if rep, ok := reps[*m.Mid]; ok {
			return rep
		}
	}
	return privateID
}
