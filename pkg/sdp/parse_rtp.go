package sdp

import "strconv"

// parseRtpmap parses an a=rtpmap value (spec §4.4):
//
//	payload-type SP encoding-name "/" clock-rate ["/" encoding-params]
func parseRtpmap(lineNum int, raw string) (RtpMap, error) {
	f := splitWS(raw)
	if len(f) != 2 {
		return RtpMap{}, newErr(MalformedAttribute, lineNum, raw, "rtpmap requires 2 fields, got %d", len(f))
	}
	pt, err := strconv.ParseUint(f[0], 10, 8)
	if err != nil {
		return RtpMap{}, newErr(MalformedAttribute, lineNum, f[0], "malformed payload type: %v", err)
	}

	parts := splitNonEmpty(f[1], '/')
	if len(parts) < 2 {
		return RtpMap{}, newErr(MalformedAttribute, lineNum, f[1], "rtpmap requires encoding-name/clock-rate")
	}
	clock, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return RtpMap{}, newErr(MalformedAttribute, lineNum, parts[1], "malformed clock rate: %v", err)
	}

	rm := RtpMap{PayloadType: uint8(pt), EncodingName: parts[0], ClockRate: uint32(clock)}
	if len(parts) > 2 {
		ep, err := strconv.ParseUint(parts[2], 10, 32)
		if err != nil {
			return RtpMap{}, newErr(MalformedAttribute, lineNum, parts[2], "malformed encoding params: %v", err)
		}
		v := uint32(ep)
		rm.EncodingParams = &v
	}
	return rm, nil
}

// parseFmtp parses an a=fmtp value. The leading token is the payload type
// (or ssrc-scoped format, for a=ssrc child fmtp); per spec §9's Open
// Question resolution, FormatSpecific holds only what follows it, split on
// ';' — the payload type itself is never duplicated into FormatSpecific.
func parseFmtp(lineNum int, raw string) (Fmtp, error) {
	sp := -1
	for i := 0; i < len(raw); i++ {
		if raw[i] == ' ' || raw[i] == '\t' {
			sp = i
			break
		}
	}
	if sp < 0 {
		return Fmtp{}, newErr(MalformedAttribute, lineNum, raw, "fmtp requires format-specific parameters")
	}
	fmtTok, rest := raw[:sp], raw[sp+1:]
	format, err := strconv.ParseUint(fmtTok, 10, 8)
	if err != nil {
		return Fmtp{}, newErr(MalformedAttribute, lineNum, fmtTok, "malformed fmtp format: %v", err)
	}

	f := Fmtp{Format: uint8(format)}
	for _, tok := range splitNonEmpty(rest, ';') {
		f.FormatSpecific = append(f.FormatSpecific, trimSpaces(tok))
	}
	return f, nil
}

func trimSpaces(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

// parseRtcp parses an a=rtcp value: port [SP nettype SP addrtype SP
// connection-address].
func parseRtcp(lineNum int, raw string) (Rtcp, error) {
	f := splitWS(raw)
	if len(f) != 1 && len(f) != 4 {
		return Rtcp{}, newErr(MalformedAttribute, lineNum, raw, "rtcp requires 1 or 4 fields, got %d", len(f))
	}
	port, err := strconv.ParseUint(f[0], 10, 16)
	if err != nil {
		return Rtcp{}, newErr(MalformedAttribute, lineNum, f[0], "malformed rtcp port: %v", err)
	}
	r := Rtcp{Port: uint16(port)}
	if len(f) == 4 {
		r.NetType, r.AddrType, r.ConnAddr = f[1], f[2], f[3]
	}
	return r, nil
}

// parseRtcpFb parses an a=rtcp-fb value: payload-type|"*" SP id [SP param1
// [SP param2]] (wildcard payload matching per SPEC_FULL.md §4.8).
func parseRtcpFb(lineNum int, raw string) (RtcpFb, error) {
	f := splitWS(raw)
	if len(f) < 2 || len(f) > 4 {
		return RtcpFb{}, newErr(MalformedAttribute, lineNum, raw, "rtcp-fb requires 2-4 fields, got %d", len(f))
	}
	var fb RtcpFb
	if f[0] != "*" {
		pt, err := strconv.ParseUint(f[0], 10, 8)
		if err != nil {
			return RtcpFb{}, newErr(MalformedAttribute, lineNum, f[0], "malformed rtcp-fb payload type: %v", err)
		}
		v := uint8(pt)
		fb.PayloadType = &v
	}
	fb.ID = f[1]
	if len(f) > 2 {
		fb.Param1 = f[2]
	}
	if len(f) > 3 {
		fb.Param2 = f[3]
	}
	return fb, nil
}
