package sdp

// ParseOption configures a single Parse call.
type ParseOption func(*parseOptions)

type parseOptions struct {
	warnFn WarnFunc
}

// WithWarnFunc registers a callback that receives recoverable warnings
// (unknown line types, unknown attributes, ...) as Parse walks the
// document. The core never logs on its own; see SPEC_FULL.md §2.1.
func WithWarnFunc(fn WarnFunc) ParseOption {
	return func(o *parseOptions) { o.warnFn = fn }
}

// Parse runs the full ingestion pipeline over raw SDP text: tokenize, split
// attributes, validate scope, parse each line's value, and fold the result
// into an SdpDoc (spec §4). Parse performs no I/O and shares no state
// across calls.
func Parse(text string, opts ...ParseOption) (*SdpDoc, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	rawLines := tokenize(text, o.warnFn)

	records, medias, err := validateScope(rawLines)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if err := dispatchParse(rec); err != nil {
			return nil, err
		}
	}

	d := &SdpDoc{lines: records, MediaLines: medias}
	if err := fold(d, o.warnFn); err != nil {
		return nil, err
	}

	if d.VLine == nil {
		return nil, newErr(MissingRequired, 0, "v", "missing required v= line")
	}
	if d.VLine.Version != 0 {
		return nil, newErr(UnsupportedVersion, 0, "v", "unsupported SDP version %d", d.VLine.Version)
	}
	if d.OLine == nil {
		return nil, newErr(MissingRequired, 0, "o", "missing required o= line")
	}
	if d.SLine == nil {
		return nil, newErr(MissingRequired, 0, "s", "missing required s= line")
	}
	if d.TLine == nil {
		return nil, newErr(MissingRequired, 0, "t", "missing required t= line")
	}

	if leftover := d.unabsorbed(); len(leftover) > 0 {
		return nil, newErr(MalformedAttribute, leftover[0].LineNum, "", "internal error: %d line(s) left unfolded", len(leftover))
	}

	return d, nil
}
