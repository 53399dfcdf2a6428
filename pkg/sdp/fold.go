package sdp

// fold walks d.lines in document order and distributes each parsed record
// into the session or the owning MLine (spec §4.5/§4.6). By the time fold
// returns every record must be absorbed; any record left over is an
// internal bug the caller surfaces via unabsorbed().
func fold(d *SdpDoc, warnFn WarnFunc) error {
	for _, rec := range d.lines {
		if err := foldOne(d, rec, warnFn); err != nil {
			return err
		}
	}
	return nil
}

func foldOne(d *SdpDoc, rec *LineRecord, warnFn WarnFunc) error {
	if rec.Type == LineMedia {
		m, _ := rec.Parsed.(M)
		d.MediaLines[rec.MediaIndex].M = m
		rec.absorbed = true
		return nil
	}

	if rec.MediaIndex < 0 {
		return foldSession(d, rec, warnFn)
	}
	return foldMedia(d.MediaLines[rec.MediaIndex], rec, warnFn)
}

func foldSession(d *SdpDoc, rec *LineRecord, warnFn WarnFunc) error {
	switch rec.Type {
	case LineVersion:
		if d.VLine != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "v", "duplicate v= line")
		}
		v := rec.Parsed.(V)
		d.VLine = &v
		rec.absorbed = true
		return nil
	case LineOrigin:
		if d.OLine != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "o", "duplicate o= line")
		}
		v := rec.Parsed.(O)
		d.OLine = &v
		rec.absorbed = true
		return nil
	case LineSessionName:
		if d.SLine != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "s", "duplicate s= line")
		}
		v := rec.Parsed.(S)
		d.SLine = &v
		rec.absorbed = true
		return nil
	case LineTiming:
		if d.TLine != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "t", "duplicate t= line")
		}
		v := rec.Parsed.(T)
		d.TLine = &v
		rec.absorbed = true
		return nil
	case LineConnection:
		if d.CLine != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "c", "duplicate session-level c= line")
		}
		v := rec.Parsed.(C)
		d.CLine = &v
		rec.absorbed = true
		return nil
	case LineBandwidth:
		v := rec.Parsed.(B)
		d.Bandwidths = append(d.Bandwidths, v)
		rec.absorbed = true
		return nil
	case LineAttribute:
		return foldSessionAttribute(d, rec, warnFn)
	}
	return nil
}

func foldSessionAttribute(d *SdpDoc, rec *LineRecord, warnFn WarnFunc) error {
	switch rec.Attr {
	case AttrGroup:
		d.GroupLines = append(d.GroupLines, rec.Parsed.(Group))
	case AttrMsidSemantic:
		d.MsidSemanticLines = append(d.MsidSemanticLines, rec.Parsed.(Msid))
	case AttrFingerprint:
		d.FingerprintLines = append(d.FingerprintLines, rec.Parsed.(Fingerprint))
	case AttrExtmap:
		d.ExtmapLines = append(d.ExtmapLines, rec.Parsed.(Extmap))
	case AttrIceUfrag:
		v := rec.Parsed.(IceUfrag).Value
		d.IceUfrag = &v
	case AttrIcePwd:
		v := rec.Parsed.(IcePwd).Value
		d.IcePwd = &v
	case AttrIceOptions:
		v := rec.Parsed.(IceOptions)
		d.IceOptions = &v
	case AttrIceLite:
		d.IceLite = true
	case AttrSetup:
		v := rec.Parsed.(Setup).Value
		d.Setup = &v
	case AttrSendrecv:
		setDir(&d.MediaDirection, DirectionSendRecv)
	case AttrSendonly:
		setDir(&d.MediaDirection, DirectionSend)
	case AttrRecvonly:
		setDir(&d.MediaDirection, DirectionRecv)
	case AttrInactive:
		setDir(&d.MediaDirection, DirectionNone)
	case AttrUnknown:
		warn(warnFn, WarnUnknownAttribute, rec.LineNum, "unknown session attribute dropped")
	default:
		// legal at session per relaxed scope but not modeled at this level
		warn(warnFn, WarnUnknownAttribute, rec.LineNum, "unhandled session attribute dropped")
	}
	rec.absorbed = true
	return nil
}

func foldMedia(m *MLine, rec *LineRecord, warnFn WarnFunc) error {
	switch rec.Type {
	case LineConnection:
		if m.CLine != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "c", "duplicate media-level c= line")
		}
		v := rec.Parsed.(C)
		m.CLine = &v
		rec.absorbed = true
		return nil
	case LineBandwidth:
		m.BLines = append(m.BLines, rec.Parsed.(B))
		rec.absorbed = true
		return nil
	case LineAttribute:
		return foldMediaAttribute(m, rec, warnFn)
	}
	return nil
}

func foldMediaAttribute(m *MLine, rec *LineRecord, warnFn WarnFunc) error {
	switch rec.Attr {
	case AttrBundleOnly:
		m.BundleOnly = true
	case AttrEndOfCandidates:
		m.EndOfCandidates = true
	case AttrRtcpMux:
		m.RtcpMux = true
	case AttrRtcpRsize:
		m.RtcpRsize = true
	case AttrMsid:
		m.MsidLines = append(m.MsidLines, rec.Parsed.(Msid))
	case AttrIceUfrag:
		if m.IceUfrag != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "ice-ufrag", "duplicate media-level ice-ufrag line")
		}
		v := rec.Parsed.(IceUfrag).Value
		m.IceUfrag = &v
	case AttrIcePwd:
		if m.IcePwd != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "ice-pwd", "duplicate media-level ice-pwd line")
		}
		v := rec.Parsed.(IcePwd).Value
		m.IcePwd = &v
	case AttrCandidate:
		m.CandidateLines = append(m.CandidateLines, rec.Parsed.(Candidate))
	case AttrFingerprint:
		m.FingerprintLines = append(m.FingerprintLines, rec.Parsed.(Fingerprint))
	case AttrCrypto:
		m.CryptoLines = append(m.CryptoLines, rec.Parsed.(Crypto))
	case AttrSetup:
		if m.Setup != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "setup", "duplicate media-level setup line")
		}
		v := rec.Parsed.(Setup).Value
		m.Setup = &v
	case AttrMid:
		if m.Mid != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "mid", "duplicate mid line")
		}
		v := rec.Parsed.(Mid).Value
		m.Mid = &v
	case AttrExtmap:
		m.ExtmapLines = append(m.ExtmapLines, rec.Parsed.(Extmap))
	case AttrSendrecv:
		setDir(&m.MediaDirection, DirectionSendRecv)
	case AttrSendonly:
		setDir(&m.MediaDirection, DirectionSend)
	case AttrRecvonly:
		setDir(&m.MediaDirection, DirectionRecv)
	case AttrInactive:
		setDir(&m.MediaDirection, DirectionNone)
	case AttrRtpmap:
		m.RtpmapLines = append(m.RtpmapLines, rec.Parsed.(RtpMap))
	case AttrFmtp:
		fmtp := rec.Parsed.(Fmtp)
		if rec.Scope == ScopeSource {
			idx := rec.SSRCOrdinal - 1
			if idx < 0 || idx >= len(m.SsrcLines) {
				return newErr(MissingRequired, rec.LineNum, "fmtp", "fmtp at source scope has no owning ssrc line")
			}
			m.SsrcLines[idx].FmtpChildren = append(m.SsrcLines[idx].FmtpChildren, fmtp)
		} else {
			m.FmtpLines = append(m.FmtpLines, fmtp)
		}
	case AttrRtcp:
		if m.RtcpLine != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "rtcp", "duplicate rtcp line")
		}
		v := rec.Parsed.(Rtcp)
		m.RtcpLine = &v
	case AttrRtcpFb:
		m.RtcpFbLines = append(m.RtcpFbLines, rec.Parsed.(RtcpFb))
	case AttrPtime:
		if m.Ptime != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "ptime", "duplicate ptime line")
		}
		v := rec.Parsed.(PTime).MS
		m.Ptime = &v
	case AttrMaxptime:
		if m.MaxPtime != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "maxptime", "duplicate maxptime line")
		}
		v := rec.Parsed.(MaxPTime).MS
		m.MaxPtime = &v
	case AttrSsrc:
		s := rec.Parsed.(Ssrc)
		m.SsrcLines = append(m.SsrcLines, &ASSRCLine{Ssrc: s})
	case AttrSsrcGroup:
		m.SsrcGroupLines = append(m.SsrcGroupLines, rec.Parsed.(SsrcGroup))
	case AttrSimulcast:
		if m.Simulcast != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "simulcast", "duplicate simulcast line")
		}
		v := rec.Parsed.(Simulcast)
		m.Simulcast = &v
	case AttrRid:
		m.RidLines = append(m.RidLines, rec.Parsed.(Rid))
	case AttrSctpPort:
		if m.SctpPortLine != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "sctp-port", "duplicate sctp-port line")
		}
		v := rec.Parsed.(SctpPort).Port
		m.SctpPortLine = &v
	case AttrMaxMessageSize:
		if m.MaxMessageSize != nil {
			return newErr(DuplicateSingleValued, rec.LineNum, "max-message-size", "duplicate max-message-size line")
		}
		v := rec.Parsed.(MaxMessageSize).Bytes
		m.MaxMessageSize = &v
	case AttrUnknown:
		warn(warnFn, WarnUnknownAttribute, rec.LineNum, "unknown media attribute dropped")
	default:
		warn(warnFn, WarnUnknownAttribute, rec.LineNum, "unhandled media attribute dropped")
	}
	rec.absorbed = true
	return nil
}

func setDir(slot **Direction, d Direction) {
	v := d
	*slot = &v
}
