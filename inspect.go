package quantify

import "errors"

// Opt bundles inspection options.
type Opt struct {
	// FailFast stops All/Every collection at the first violating element.
	// Count-based quantifiers need the full pass and ignore it.
	FailFast bool
}

// Inspect applies check to every element of col and classifies the run
// against q. It returns nil on pass, a *Report on aggregate failure and a
// *ConfigError for invalid quantifier arguments; *Signal outcomes from the
// check are returned unchanged, aborting the remaining elements. Panics
// raised by the check are not recovered. Neither col nor check is mutated.
func Inspect[E any](q Quantifier, col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(q, col, check, opts, callerLocation(1))
}

// InspectAt is Inspect with an explicit fallback location, for front-ends
// that forward inspections on another caller's behalf.
func InspectAt[E any](loc Location, q Quantifier, col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(q, col, check, opts, loc)
}

// ---- convenience wrappers (quantifier-per-function entry points) ----

// ForAll inspects col with the All quantifier.
func ForAll[E any](col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(All(), col, check, opts, callerLocation(1))
}

// ForEvery inspects col with the Every quantifier.
func ForEvery[E any](col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(Every(), col, check, opts, callerLocation(1))
}

// ForAtLeast inspects col with the AtLeast(min) quantifier.
func ForAtLeast[E any](min int, col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(AtLeast(min), col, check, opts, callerLocation(1))
}

// ForAtMost inspects col with the AtMost(max) quantifier.
func ForAtMost[E any](max int, col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(AtMost(max), col, check, opts, callerLocation(1))
}

// ForExactly inspects col with the Exactly(count) quantifier.
func ForExactly[E any](count int, col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(Exactly(count), col, check, opts, callerLocation(1))
}

// ForNo inspects col with the No quantifier.
func ForNo[E any](col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(No(), col, check, opts, callerLocation(1))
}

// ForBetween inspects col with the Between(from, upTo) quantifier.
func ForBetween[E any](from, upTo int, col Collection[E], check Check[E], opts ...Opt) error {
	return inspect(Between(from, upTo), col, check, opts, callerLocation(1))
}

// inspect is the single-pass accumulator loop shared by all entry points.
func inspect[E any](q Quantifier, col Collection[E], check Check[E], opts []Opt, loc Location) error {
	if err := q.validate(); err != nil {
		return err
	}
	var opt Opt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	var satisfied []Label
	var entries []Entry
	for label, e := range col.All() {
		err := check(e)
		if err == nil {
			satisfied = append(satisfied, label)
			continue
		}
		if sig, ok := AsSignal(err); ok {
			return sig
		}
		var ce *ConfigError
		if errors.As(err, &ce) {
			// a misconfigured nested inspection is a bug, not element data
			return ce
		}
		entries = append(entries, newEntry(label, err, loc))
		if opt.FailFast && (q.kind == quantAll || q.kind == quantEvery) {
			break
		}
	}
	if q.passes(len(satisfied), col.Len()) {
		return nil
	}
	return &Report{
		Quant:     q,
		Container: col.String(),
		Satisfied: satisfied,
		Entries:   entries,
		Total:     col.Len(),
		Loc:       loc,
	}
}

// newEntry classifies a check error: nested reports keep their own call
// site, located failures keep theirs, anything else falls back to the
// inspection call site.
func newEntry(label Label, err error, fallback Location) Entry {
	e := Entry{Label: label, Cause: err}
	var rep *Report
	if errors.As(err, &rep) {
		e.Nested = rep
		e.Loc = rep.Loc
		return e
	}
	var f *Failure
	if errors.As(err, &f) {
		e.Message = f.Message
		e.Loc = f.Loc
		return e
	}
	e.Message = err.Error()
	e.Loc = fallback
	return e
}
