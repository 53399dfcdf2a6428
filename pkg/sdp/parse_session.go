package sdp

import "strconv"

func parseV(lineNum int, raw string) (V, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return V{}, newErr(MalformedAttribute, lineNum, raw, "malformed version: %v", err)
	}
	return V{Version: n}, nil
}

func parseO(lineNum int, raw string) (O, error) {
	f := splitWS(raw)
	if len(f) != 6 {
		return O{}, newErr(MalformedAttribute, lineNum, raw, "o= requires 6 fields, got %d", len(f))
	}
	sessID, err := strconv.ParseUint(f[1], 10, 64)
	if err != nil {
		return O{}, newErr(MalformedAttribute, lineNum, f[1], "malformed session-id: %v", err)
	}
	sessVer, err := strconv.ParseUint(f[2], 10, 64)
	if err != nil {
		return O{}, newErr(MalformedAttribute, lineNum, f[2], "malformed session-version: %v", err)
	}
	return O{
		Username: f[0], SessionID: sessID, SessionVersion: sessVer,
		NetType: f[3], AddrType: f[4], UnicastAddress: f[5],
	}, nil
}

func parseS(raw string) S { return S{Name: raw} }

func parseT(lineNum int, raw string) (T, error) {
	f := splitWS(raw)
	if len(f) != 2 {
		return T{}, newErr(MalformedAttribute, lineNum, raw, "t= requires 2 fields, got %d", len(f))
	}
	start, err := strconv.ParseUint(f[0], 10, 64)
	if err != nil {
		return T{}, newErr(MalformedAttribute, lineNum, f[0], "malformed start-time: %v", err)
	}
	end, err := strconv.ParseUint(f[1], 10, 64)
	if err != nil {
		return T{}, newErr(MalformedAttribute, lineNum, f[1], "malformed stop-time: %v", err)
	}
	return T{Start: start, End: end}, nil
}

func parseC(lineNum int, raw string) (C, error) {
	f := splitWS(raw)
	if len(f) != 3 {
		return C{}, newErr(MalformedAttribute, lineNum, raw, "c= requires 3 fields, got %d", len(f))
	}
	return C{NetType: f[0], AddrType: f[1], ConnectionAddress: f[2]}, nil
}

// parseB follows the spec — the source's b= parser splits on ':' expecting
// 2 tokens but then indexes split[2], a pre-existing off-by-one bug (spec
// §9 Open Question). We index split[1] (the value after "bw-type:").
func parseB(lineNum int, raw string) (B, error) {
	f := splitNonEmpty(raw, ':')
	if len(f) != 2 {
		return B{}, newErr(MalformedAttribute, lineNum, raw, "b= requires bwtype:bandwidth")
	}
	val, err := strconv.ParseUint(f[1], 10, 64)
	if err != nil {
		return B{}, newErr(MalformedAttribute, lineNum, f[1], "malformed bandwidth: %v", err)
	}
	return B{BWType: f[0], Bandwidth: val}, nil
}

func parseM(lineNum int, raw string) (M, error) {
	f := splitWS(raw)
	if len(f) < 4 {
		return M{}, newErr(MalformedAttribute, lineNum, raw, "m= requires at least 4 fields, got %d", len(f))
	}

	m := M{Media: f[0]}

	portParts := splitNonEmpty(f[1], '/')
	port, err := strconv.ParseUint(portParts[0], 10, 16)
	if err != nil {
		return M{}, newErr(MalformedAttribute, lineNum, portParts[0], "malformed port: %v", err)
	}
	m.Port = uint16(port)
	if len(portParts) > 1 {
		cnt, err := strconv.ParseUint(portParts[1], 10, 16)
		if err != nil {
			return M{}, newErr(MalformedAttribute, lineNum, portParts[1], "malformed port count: %v", err)
		}
		c := uint16(cnt)
		m.PortCount = &c
	}

	m.ProtoStr = f[2]
	m.Proto = protocolFromProtoStr(f[2])
	m.Formats = append([]string(nil), f[3:]...)

	return m, nil
}
