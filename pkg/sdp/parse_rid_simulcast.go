package sdp

import (
	"strconv"
	"strings"
)

// parseRid parses an a=rid value (spec §4.4):
//
//	id SP direction *(";" param)
//
// direction excludes sendrecv/inactive (rid is always one-directional). The
// "pt" param carries a comma-separated payload-type list; everything else is
// a generic key[=value] param.
func parseRid(lineNum int, raw string) (Rid, error) {
	f := splitWS(raw)
	if len(f) < 2 {
		return Rid{}, newErr(MalformedAttribute, lineNum, raw, "rid requires at least 2 fields, got %d", len(f))
	}
	dir, ok := parseSendRecvToken(f[1])
	if !ok {
		return Rid{}, newErr(MalformedAttribute, lineNum, f[1], "rid direction must be send or recv")
	}

	r := Rid{ID: f[0], Direction: dir}
	if len(f) < 3 {
		return r, nil
	}
	rest := strings.Join(f[2:], " ")
	for _, param := range splitNonEmpty(rest, ';') {
		param = strings.TrimSpace(param)
		key, val, hasVal := cutByte(param, '=')
		if key == "pt" && hasVal {
			for _, ptStr := range splitNonEmpty(val, ',') {
				pt, err := strconv.ParseUint(strings.TrimSpace(ptStr), 10, 8)
				if err != nil {
					return Rid{}, newErr(MalformedAttribute, lineNum, ptStr, "malformed rid payload type: %v", err)
				}
				r.PayloadTypes = append(r.PayloadTypes, uint8(pt))
			}
			continue
		}
		r.Params = append(r.Params, RidParam{Key: key, Value: val})
	}
	return r, nil
}

// parseSendRecvToken parses the "send"/"recv" direction tokens rid (RFC
// 8851) and simulcast (RFC 8853) both use, distinct from the
// sendrecv/sendonly/recvonly/inactive attribute tokens parseDirectionToken
// handles.
func parseSendRecvToken(tok string) (Direction, bool) {
	switch tok {
	case "send":
		return DirectionSend, true
	case "recv":
		return DirectionRecv, true
	default:
		return DirectionNone, false
	}
}

// parseSimulcast parses an a=simulcast value (spec §4.4):
//
//	direction alt-list *(SP direction alt-list)
//
// alt-list = group *(";" group), group = rid *("," rid), a "~" prefix on a
// rid marks it paused.
func parseSimulcast(lineNum int, raw string) (Simulcast, error) {
	f := splitWS(raw)
	if len(f) == 0 || len(f)%2 != 0 {
		return Simulcast{}, newErr(MalformedAttribute, lineNum, raw, "simulcast requires direction/alt-list pairs, got %d fields", len(f))
	}

	var s Simulcast
	for i := 0; i < len(f); i += 2 {
		dir, ok := parseSendRecvToken(f[i])
		if !ok {
			return Simulcast{}, newErr(MalformedAttribute, lineNum, f[i], "simulcast direction must be send or recv")
		}
		entry := SimulcastEntry{Direction: dir}
		for _, group := range splitNonEmpty(f[i+1], ';') {
			var alts []SimulcastAlt
			for _, ridTok := range splitNonEmpty(group, ',') {
				paused := strings.HasPrefix(ridTok, "~")
				alts = append(alts, SimulcastAlt{Rid: strings.TrimPrefix(ridTok, "~"), Paused: paused})
			}
			entry.Alternatives = append(entry.Alternatives, alts)
		}
		s.Entries = append(s.Entries, entry)
	}
	return s, nil
}
