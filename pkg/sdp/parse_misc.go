package sdp

import "strconv"

// parseExtmap parses an a=extmap value: id["/"direction] SP uri
// [SP ext-attributes]. Direction defaults to sendrecv when omitted.
func parseExtmap(lineNum int, raw string) (Extmap, error) {
	f := splitWS(raw)
	if len(f) < 2 {
		return Extmap{}, newErr(MalformedAttribute, lineNum, raw, "extmap requires at least 2 fields, got %d", len(f))
	}

	idParts := splitNonEmpty(f[0], '/')
	id, err := strconv.ParseUint(idParts[0], 10, 32)
	if err != nil {
		return Extmap{}, newErr(MalformedAttribute, lineNum, idParts[0], "malformed extmap id: %v", err)
	}

	e := Extmap{ID: uint32(id), Direction: DirectionSendRecv, URI: f[1]}
	if len(idParts) > 1 {
		dir, ok := parseDirectionToken(idParts[1])
		if !ok {
			return Extmap{}, newErr(MalformedAttribute, lineNum, idParts[1], "malformed extmap direction")
		}
		e.Direction = dir
		e.HasDirection = true
	}
	if len(f) > 2 {
		e.ExtAttributes = joinWS(f[2:])
	}
	return e, nil
}

func joinWS(f []string) string {
	out := f[0]
	for _, s := range f[1:] {
		out += " " + s
	}
	return out
}

// parseMsid parses an a=msid value: id [SP appdata].
func parseMsid(lineNum int, raw string) (Msid, error) {
	f := splitWS(raw)
	if len(f) < 1 {
		return Msid{}, newErr(MalformedAttribute, lineNum, raw, "msid requires an id")
	}
	m := Msid{ID: f[0]}
	if len(f) > 1 {
		m.AppData = f[1]
	}
	return m, nil
}

// parseGroup parses an a=group value: semantic *(SP identification-tag).
func parseGroup(lineNum int, raw string) (Group, error) {
	f := splitWS(raw)
	if len(f) < 1 {
		return Group{}, newErr(MalformedAttribute, lineNum, raw, "group requires a semantic")
	}
	return Group{Semantic: f[0], IdentificationTags: append([]string(nil), f[1:]...)}, nil
}

// parseIceOptions parses an a=ice-options value: tag *(SP tag).
func parseIceOptions(raw string) IceOptions {
	return IceOptions{Tags: splitWS(raw)}
}

// parseSctpPort parses an a=sctp-port value.
func parseSctpPort(lineNum int, raw string) (SctpPort, error) {
	p, err := strconv.ParseUint(trimSpaces(raw), 10, 16)
	if err != nil {
		return SctpPort{}, newErr(MalformedAttribute, lineNum, raw, "malformed sctp-port: %v", err)
	}
	return SctpPort{Port: uint16(p)}, nil
}

// parseMaxMessageSize parses an a=max-message-size value.
func parseMaxMessageSize(lineNum int, raw string) (MaxMessageSize, error) {
	v, err := strconv.ParseUint(trimSpaces(raw), 10, 64)
	if err != nil {
		return MaxMessageSize{}, newErr(MalformedAttribute, lineNum, raw, "malformed max-message-size: %v", err)
	}
	return MaxMessageSize{Bytes: v}, nil
}

// parsePtime parses an a=ptime value.
func parsePtime(lineNum int, raw string) (PTime, error) {
	v, err := strconv.ParseUint(trimSpaces(raw), 10, 64)
	if err != nil {
		return PTime{}, newErr(MalformedAttribute, lineNum, raw, "malformed ptime: %v", err)
	}
	return PTime{MS: v}, nil
}

// parseMaxptime parses an a=maxptime value.
func parseMaxptime(lineNum int, raw string) (MaxPTime, error) {
	v, err := strconv.ParseUint(trimSpaces(raw), 10, 64)
	if err != nil {
		return MaxPTime{}, newErr(MalformedAttribute, lineNum, raw, "malformed maxptime: %v", err)
	}
	return MaxPTime{MS: v}, nil
}

// parseSetup parses an a=setup value.
func parseSetup(lineNum int, raw string) (Setup, error) {
	tok := trimSpaces(raw)
	switch SetupRole(tok) {
	case SetupActive, SetupPassive, SetupActPass, SetupHoldconn:
		return Setup{Value: SetupRole(tok)}, nil
	default:
		return Setup{}, newErr(MalformedAttribute, lineNum, tok, "unrecognized setup role %q", tok)
	}
}

// parseMid parses an a=mid value (a single opaque token).
func parseMid(raw string) Mid { return Mid{Value: trimSpaces(raw)} }

func parseIceUfrag(raw string) IceUfrag { return IceUfrag{Value: trimSpaces(raw)} }

func parseIcePwd(raw string) IcePwd { return IcePwd{Value: trimSpaces(raw)} }

// parseFingerprint parses an a=fingerprint value: hash-func SP
// fingerprint-value.
func parseFingerprint(lineNum int, raw string) (Fingerprint, error) {
	f := splitWS(raw)
	if len(f) != 2 {
		return Fingerprint{}, newErr(MalformedAttribute, lineNum, raw, "fingerprint requires 2 fields, got %d", len(f))
	}
	return Fingerprint{HashFunc: f[0], Fingerprint: f[1]}, nil
}

// parseSsrc parses an a=ssrc value: ssrc-id SP attribute[":"value].
func parseSsrc(lineNum int, raw string) (Ssrc, error) {
	f := splitWS(raw)
	if len(f) < 2 {
		return Ssrc{}, newErr(MalformedAttribute, lineNum, raw, "ssrc requires ssrc-id and attribute, got %d fields", len(f))
	}
	id, err := strconv.ParseUint(f[0], 10, 32)
	if err != nil {
		return Ssrc{}, newErr(MalformedAttribute, lineNum, f[0], "malformed ssrc-id: %v", err)
	}

	rest := joinWS(f[1:])
	name, val, hasVal := cutByte(rest, ':')
	s := Ssrc{SSRC: uint32(id), Attribute: name}
	if hasVal {
		s.AttributeValues = splitWS(val)
	}
	return s, nil
}

// parseSsrcGroup parses an a=ssrc-group value: semantics *(SP ssrc-id).
func parseSsrcGroup(lineNum int, raw string) (SsrcGroup, error) {
	f := splitWS(raw)
	if len(f) < 2 {
		return SsrcGroup{}, newErr(MalformedAttribute, lineNum, raw, "ssrc-group requires semantics and at least one ssrc-id")
	}
	g := SsrcGroup{Semantics: f[0]}
	for _, tok := range f[1:] {
		id, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return SsrcGroup{}, newErr(MalformedAttribute, lineNum, tok, "malformed ssrc-id: %v", err)
		}
		g.Ssrcs = append(g.Ssrcs, uint32(id))
	}
	return g, nil
}
