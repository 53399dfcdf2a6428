package sdp

import "strconv"

// parseCandidate parses an a=candidate value (spec §4.4):
//
//	foundation SP component-id SP transport SP priority SP
//	connection-address SP port SP "typ" SP cand-type
//	*(SP extension-key SP extension-value)
//
// Fields past the mandatory 8 come in key/value pairs; an odd count is
// malformed. "raddr"/"rport" are pulled out into RelAddr/RelPort, everything
// else (tcptype, unfreezepriority, interfacetype, ...) is kept verbatim in
// ExtensionPairs for the caller to warn on or ignore.
func parseCandidate(lineNum int, raw string) (Candidate, error) {
	f := splitWS(raw)
	if len(f) < 8 {
		return Candidate{}, newErr(MalformedAttribute, lineNum, raw, "candidate requires at least 8 fields, got %d", len(f))
	}
	if f[6] != "typ" {
		return Candidate{}, newErr(MalformedAttribute, lineNum, f[6], "candidate missing \"typ\" keyword at field 6")
	}

	component, err := strconv.ParseUint(f[1], 10, 32)
	if err != nil {
		return Candidate{}, newErr(MalformedAttribute, lineNum, f[1], "malformed component-id: %v", err)
	}
	priority, err := strconv.ParseUint(f[3], 10, 64)
	if err != nil {
		return Candidate{}, newErr(MalformedAttribute, lineNum, f[3], "malformed priority: %v", err)
	}
	port, err := strconv.ParseUint(f[5], 10, 16)
	if err != nil {
		return Candidate{}, newErr(MalformedAttribute, lineNum, f[5], "malformed port: %v", err)
	}

	c := Candidate{
		Foundation:    f[0],
		ComponentID:   uint32(component),
		Transport:     f[2],
		Priority:      priority,
		ConnAddr:      f[4],
		Port:          uint16(port),
		Typ:           f[6],
		CandidateType: f[7],
	}

	rest := f[8:]
	if len(rest)%2 != 0 {
		return Candidate{}, newErr(MalformedAttribute, lineNum, raw, "candidate has an odd number of trailing extension fields (%d)", len(rest))
	}
	for i := 0; i < len(rest); i += 2 {
		key, val := rest[i], rest[i+1]
		switch key {
		case "raddr":
			c.RelAddr = val
		case "rport":
			p, err := strconv.ParseUint(val, 10, 16)
			if err != nil {
				return Candidate{}, newErr(MalformedAttribute, lineNum, val, "malformed rport: %v", err)
			}
			rp := uint16(p)
			c.RelPort = &rp
		default:
			c.ExtensionPairs = append(c.ExtensionPairs, ExtPair{Key: key, Value: val})
		}
	}

	// raddr/rport are required or absent together (spec §4.8 supplement).
	if (c.RelAddr != "") != (c.RelPort != nil) {
		return Candidate{}, newErr(MalformedAttribute, lineNum, raw, "candidate raddr/rport must be paired")
	}

	return c, nil
}
