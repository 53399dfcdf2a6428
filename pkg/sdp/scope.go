package sdp

import (
	"context"

	"github.com/looplab/fsm"
)

// Scope validator states (spec §4.3), modeled as an FSM the way the rest
// of this media stack models any multi-state walk (see pkg/dialog's
// call/REFER state machines for the same looplab/fsm shape).
const (
	stateSession = "session"
	stateMedia   = "media"
	stateSource  = "source"
)

func newScopeFSM() *fsm.FSM {
	return fsm.NewFSM(
		stateSession,
		fsm.Events{
			// m= always resets to session before being (re)validated.
			{Name: "reset", Src: []string{stateSession, stateMedia, stateSource}, Dst: stateSession},
			{Name: "enter_media", Src: []string{stateSession}, Dst: stateMedia},
			{Name: "enter_source", Src: []string{stateMedia}, Dst: stateSource},
			// source -> media fallback when the next record isn't legal
			// at source but is legal at media (spec §4.3).
			{Name: "fallback_media", Src: []string{stateSource}, Dst: stateMedia},
		},
		nil,
	)
}

// fireEvent drives the FSM event, treating looplab/fsm's NoTransitionError
// (returned whenever Src==Dst, e.g. "reset" while already in stateSession) as
// success rather than failure: the machine is already in the requested state.
func fireEvent(ctx context.Context, machine *fsm.FSM, event string) error {
	err := machine.Event(ctx, event)
	if _, ok := err.(fsm.NoTransitionError); ok {
		return nil
	}
	return err
}

func scopeOf(state string) Scope {
	switch state {
	case stateMedia:
		return ScopeMedia
	case stateSource:
		return ScopeSource
	default:
		return ScopeSession
	}
}

// validateScope walks the tokenized+split records in order, assigning each
// one a Scope, MediaIndex and SSRCOrdinal, and raises ScopeViolation for
// any record that lands outside its legal scope mask. It also allocates
// MLine skeletons for each m= line and tracks the ssrc ordinal used by
// source-scope fmtp attachment (spec §4.6 source folder).
func validateScope(lines []rawLine) ([]*LineRecord, []*MLine, error) {
	machine := newScopeFSM()
	ctx := context.Background()

	var records []*LineRecord
	var medias []*MLine
	mediaIndex := -1
	ssrcOrdinal := 0

	for _, rl := range lines {
		rec := &LineRecord{LineNum: rl.lineNum, Type: rl.typ, MediaIndex: mediaIndex}

		if rl.typ == LineMedia {
			if err := fireEvent(ctx, machine, "reset"); err != nil {
				return nil, nil, err
			}
			mask := allowedScopesForLine(LineMedia)
			if !mask.allows(scopeOf(machine.Current())) {
				return nil, nil, newErr(ScopeViolation, rl.lineNum, "m=", "m= line illegal at scope %s", machine.Current())
			}
			rec.Scope = scopeOf(machine.Current())
			rec.RawValue = rl.value

			if err := fireEvent(ctx, machine, "enter_media"); err != nil {
				return nil, nil, err
			}
			mediaIndex++
			rec.MediaIndex = mediaIndex
			medias = append(medias, &MLine{})
			ssrcOrdinal = 0
			records = append(records, rec)
			continue
		}

		var attr Attribute
		var name string
		if rl.typ == LineAttribute {
			var hasValue bool
			name, rec.RawValue, hasValue = splitAttribute(rl.value)
			attr = LookupAttribute(name)
			rec.Attr = attr
			if attr != AttrUnknown {
				if err := checkAttributeCardinality(rl.lineNum, attr, name, hasValue); err != nil {
					return nil, nil, err
				}
			}
		} else {
			rec.RawValue = rl.value
		}

		var mask Scope
		if rl.typ == LineAttribute {
			if attr == AttrUnknown {
				mask = ScopeAll // dropped later with a warning, not a scope error
			} else {
				mask = allowedScopesForAttribute(attr)
			}
		} else {
			mask = allowedScopesForLine(rl.typ)
		}

		cur := scopeOf(machine.Current())
		if cur == ScopeSource && !mask.allows(ScopeSource) && mask.allows(ScopeMedia) {
			if err := fireEvent(ctx, machine, "fallback_media"); err != nil {
				return nil, nil, err
			}
			cur = scopeOf(machine.Current())
		}

		if !mask.allows(cur) {
			tok := name
			if tok == "" {
				tok = string(rl.typ)
			}
			return nil, nil, newErr(ScopeViolation, rl.lineNum, tok, "%q illegal at scope %d", tok, cur)
		}

		rec.Scope = cur
		if cur == ScopeSource {
			rec.SSRCOrdinal = ssrcOrdinal
		}
		records = append(records, rec)

		if rl.typ == LineAttribute && attr == AttrSsrc {
			if err := fireEvent(ctx, machine, "enter_source"); err != nil {
				return nil, nil, err
			}
			ssrcOrdinal++
		}
	}

	return records, medias, nil
}
