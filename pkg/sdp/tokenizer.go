package sdp

// rawLine is one line as split by the tokenizer, before attribute
// splitting or scope validation.
type rawLine struct {
	lineNum int
	typ     LineType
	value   string
}

// tokenize splits text into rawLines per spec §4.1: line separators are any
// run of '\r' and/or '\n'; a valid line matches <letter>=<value>. A line
// that doesn't match the grammar at all is skipped silently; a line with an
// unrecognized leading letter is skipped with a WarnUnknownLineType warning.
// Neither fails the whole parse.
func tokenize(text string, warnFn WarnFunc) []rawLine {
	var out []rawLine
	lineNum := 0
	start := 0
	n := len(text)

	emit := func(seg string) {
		lineNum++
		if len(seg) < 2 || seg[1] != '=' {
			return // garbage / doesn't match <letter>=<value>
		}
		lt, ok := LineTypeFromByte(seg[0])
		if !ok {
			warn(warnFn, WarnUnknownLineType, lineNum, "unrecognized line type %q", seg[0])
			return
		}
		out = append(out, rawLine{lineNum: lineNum, typ: lt, value: seg[2:]})
	}

	i := 0
	for i < n {
		c := text[i]
		if c == '\r' || c == '\n' {
			emit(text[start:i])
			for i < n && (text[i] == '\r' || text[i] == '\n') {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < n {
		emit(text[start:n])
	}
	return out
}
