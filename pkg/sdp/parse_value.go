package sdp

// dispatchParse fills rec.Parsed from rec.RawValue according to rec.Type
// (and, for a= lines, rec.Attr). Flags that carry no value (sendrecv,
// bundle-only, ...) get no Parsed value — fold.go reads rec.Attr directly
// for those.
func dispatchParse(rec *LineRecord) error {
	switch rec.Type {
	case LineVersion:
		v, err := parseV(rec.LineNum, rec.RawValue)
		rec.Parsed = v
		return err
	case LineOrigin:
		v, err := parseO(rec.LineNum, rec.RawValue)
		rec.Parsed = v
		return err
	case LineSessionName:
		rec.Parsed = parseS(rec.RawValue)
		return nil
	case LineTiming:
		v, err := parseT(rec.LineNum, rec.RawValue)
		rec.Parsed = v
		return err
	case LineConnection:
		v, err := parseC(rec.LineNum, rec.RawValue)
		rec.Parsed = v
		return err
	case LineBandwidth:
		v, err := parseB(rec.LineNum, rec.RawValue)
		rec.Parsed = v
		return err
	case LineMedia:
		v, err := parseM(rec.LineNum, rec.RawValue)
		rec.Parsed = v
		return err
	case LineAttribute:
		return dispatchAttribute(rec)
	}
	return nil
}

func dispatchAttribute(rec *LineRecord) error {
	var err error
	switch rec.Attr {
	case AttrGroup:
		rec.Parsed, err = parseGroup(rec.LineNum, rec.RawValue)
	case AttrMsid:
		rec.Parsed, err = parseMsid(rec.LineNum, rec.RawValue)
	case AttrMsidSemantic:
		rec.Parsed, err = parseMsid(rec.LineNum, rec.RawValue)
	case AttrIceUfrag:
		rec.Parsed = parseIceUfrag(rec.RawValue)
	case AttrIcePwd:
		rec.Parsed = parseIcePwd(rec.RawValue)
	case AttrIceOptions:
		rec.Parsed = parseIceOptions(rec.RawValue)
	case AttrIceLite, AttrBundleOnly, AttrEndOfCandidates, AttrSendrecv,
		AttrSendonly, AttrRecvonly, AttrInactive, AttrRtcpMux, AttrRtcpRsize:
		// pure flags, no value to parse
	case AttrCandidate:
		rec.Parsed, err = parseCandidate(rec.LineNum, rec.RawValue)
	case AttrFingerprint:
		rec.Parsed, err = parseFingerprint(rec.LineNum, rec.RawValue)
	case AttrCrypto:
		rec.Parsed, err = parseCrypto(rec.LineNum, rec.RawValue)
	case AttrSetup:
		rec.Parsed, err = parseSetup(rec.LineNum, rec.RawValue)
	case AttrMid:
		rec.Parsed = parseMid(rec.RawValue)
	case AttrExtmap:
		rec.Parsed, err = parseExtmap(rec.LineNum, rec.RawValue)
	case AttrRtpmap:
		rec.Parsed, err = parseRtpmap(rec.LineNum, rec.RawValue)
	case AttrFmtp:
		rec.Parsed, err = parseFmtp(rec.LineNum, rec.RawValue)
	case AttrRtcp:
		rec.Parsed, err = parseRtcp(rec.LineNum, rec.RawValue)
	case AttrRtcpFb:
		rec.Parsed, err = parseRtcpFb(rec.LineNum, rec.RawValue)
	case AttrPtime:
		rec.Parsed, err = parsePtime(rec.LineNum, rec.RawValue)
	case AttrMaxptime:
		rec.Parsed, err = parseMaxptime(rec.LineNum, rec.RawValue)
	case AttrSsrc:
		rec.Parsed, err = parseSsrc(rec.LineNum, rec.RawValue)
	case AttrSsrcGroup:
		rec.Parsed, err = parseSsrcGroup(rec.LineNum, rec.RawValue)
	case AttrSimulcast:
		rec.Parsed, err = parseSimulcast(rec.LineNum, rec.RawValue)
	case AttrRid:
		rec.Parsed, err = parseRid(rec.LineNum, rec.RawValue)
	case AttrSctpPort:
		rec.Parsed, err = parseSctpPort(rec.LineNum, rec.RawValue)
	case AttrMaxMessageSize:
		rec.Parsed, err = parseMaxMessageSize(rec.LineNum, rec.RawValue)
	case AttrUnknown:
		// left unparsed; fold.go warns and drops it
	}
	return err
}
