package sdp

import "strconv"

// parseCrypto parses an a=crypto value (spec §4.4):
//
//	tag SP suite SP key-params *(";" key-params) *(SP session-param)
//
// where key-params = key-method ":" key-info.
func parseCrypto(lineNum int, raw string) (Crypto, error) {
	f := splitWS(raw)
	if len(f) < 3 {
		return Crypto{}, newErr(MalformedAttribute, lineNum, raw, "crypto requires at least 3 fields, got %d", len(f))
	}

	tag, err := strconv.ParseUint(f[0], 10, 64)
	if err != nil {
		return Crypto{}, newErr(MalformedAttribute, lineNum, f[0], "malformed crypto tag: %v", err)
	}

	c := Crypto{Tag: tag, Suite: f[1]}

	for _, kp := range splitNonEmpty(f[2], ';') {
		method, info, ok := cutByte(kp, ':')
		if !ok {
			return Crypto{}, newErr(MalformedAttribute, lineNum, kp, "malformed key-param, expected method:info")
		}
		c.KeyParams = append(c.KeyParams, KeyParam{Method: method, Info: info})
	}
	if len(c.KeyParams) == 0 {
		return Crypto{}, newErr(MalformedAttribute, lineNum, f[2], "crypto requires at least one key-param")
	}

	c.SessionParams = append([]string(nil), f[3:]...)

	return c, nil
}

// cutByte splits s at the first occurrence of sep, reporting whether sep was
// found.
func cutByte(s string, sep byte) (before, after string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
