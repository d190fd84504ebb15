package quantify

import (
	"errors"
	"fmt"
	"strconv"
)

// LabelKind distinguishes positional labels from map-key labels.
type LabelKind int

const (
	LabelIndex LabelKind = iota
	LabelKey
)

// Label names one element's position inside the inspected container: a
// zero-based index for sequences and strings, the rendered key for maps.
type Label struct {
	Kind  LabelKind
	Index int
	Key   string // display form, for example `"a"`
}

func (l Label) String() string {
	if l.Kind == LabelKey {
		return "key " + l.Key
	}
	return "index " + strconv.Itoa(l.Index)
}

// value is the display form without the "index"/"key" word, used when
// several labels are listed after a single word.
func (l Label) value() string {
	if l.Kind == LabelKey {
		return l.Key
	}
	return strconv.Itoa(l.Index)
}

// Entry records one violating element.
type Entry struct {
	Label   Label
	Message string
	Loc     Location
	Cause   error   // the error the check returned, when any
	Nested  *Report // set when the check was itself an inspection
}

// Report is the aggregated failure of one inspection call. It implements
// error; Error renders the full multi-line report.
type Report struct {
	Quant     Quantifier
	Container string   // decorated container, for example [1, 2, 3]
	Satisfied []Label  // labels of elements that satisfied the check
	Entries   []Entry  // violating elements, in iteration order
	Total     int      // element count of the inspected container
	Loc       Location // the inspection call site
}

func (r *Report) Error() string { return render(r, 0) }

// Unwrap exposes entry causes (including nested reports) to errors.Is and
// errors.As, so callers can recover the innermost failing element.
func (r *Report) Unwrap() []error {
	out := make([]error, 0, len(r.Entries))
	for i := range r.Entries {
		if c := r.Entries[i].Cause; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// AsReport extracts a *Report from an error using errors.As internally.
func AsReport(err error) (*Report, bool) {
	if err == nil {
		return nil, false
	}
	var r *Report
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// ConfigError reports invalid quantifier arguments. It is returned before
// any element is evaluated and is never part of a Report.
type ConfigError struct {
	Quant  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid quantifier: %s", e.Quant, e.Reason)
}
