package sdp

import "strings"

// splitWS splits on runs of whitespace, collapsing consecutive separators
// and trimming the ends, per spec §4.4 "Splitting" discipline.
func splitWS(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
}

// splitNonEmpty splits on a single-byte separator, dropping empty tokens.
func splitNonEmpty(s string, sep byte) []string {
	var out []string
	for _, part := range strings.Split(s, string(sep)) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
