package quantify

import "fmt"

// quantKind enumerates the supported quantifier policies.
type quantKind int

const (
	quantAll quantKind = iota
	quantEvery
	quantAtLeast
	quantAtMost
	quantExactly
	quantNo
	quantBetween
)

// Quantifier is the policy deciding how many per-element successes are
// required for a whole inspection to pass. Construct values with All,
// Every, AtLeast, AtMost, Exactly, No and Between; the zero value behaves
// like All.
type Quantifier struct {
	kind quantKind
	min  int
	max  int
}

// All passes only when every element satisfies the check. One full pass is
// made and every violation found is reported.
func All() Quantifier { return Quantifier{kind: quantAll} }

// Every shares All's full-pass collection semantics and differs only in
// how failures name the quantifier.
func Every() Quantifier { return Quantifier{kind: quantEvery} }

// AtLeast passes when at least min elements satisfy the check. min must be
// >= 1.
func AtLeast(min int) Quantifier { return Quantifier{kind: quantAtLeast, min: min} }

// AtMost passes when at most max elements satisfy the check. max must be
// >= 1.
func AtMost(max int) Quantifier { return Quantifier{kind: quantAtMost, max: max} }

// Exactly passes when exactly count elements satisfy the check. count must
// be >= 1.
func Exactly(count int) Quantifier { return Quantifier{kind: quantExactly, min: count, max: count} }

// No passes when no element satisfies the check.
func No() Quantifier { return Quantifier{kind: quantNo} }

// Between passes when the number of satisfying elements is within
// [from, upTo]. Requires 0 <= from < upTo.
func Between(from, upTo int) Quantifier { return Quantifier{kind: quantBetween, min: from, max: upTo} }

// Name renders the quantifier the way failure messages refer to it, for
// example "forAll" or "forBetween(2, 4)".
func (q Quantifier) Name() string {
	switch q.kind {
	case quantEvery:
		return "forEvery"
	case quantAtLeast:
		return fmt.Sprintf("forAtLeast(%d)", q.min)
	case quantAtMost:
		return fmt.Sprintf("forAtMost(%d)", q.max)
	case quantExactly:
		return fmt.Sprintf("forExactly(%d)", q.min)
	case quantNo:
		return "forNo"
	case quantBetween:
		return fmt.Sprintf("forBetween(%d, %d)", q.min, q.max)
	default:
		return "forAll"
	}
}

// validate reports a ConfigError when numeric arguments violate their
// invariants. It runs before any element is visited, so a misconfigured
// quantifier never invokes the check.
func (q Quantifier) validate() error {
	switch q.kind {
	case quantAtLeast:
		if q.min < 1 {
			return &ConfigError{Quant: q.Name(), Reason: fmt.Sprintf("min must be >= 1, got %d", q.min)}
		}
	case quantAtMost:
		if q.max < 1 {
			return &ConfigError{Quant: q.Name(), Reason: fmt.Sprintf("max must be >= 1, got %d", q.max)}
		}
	case quantExactly:
		if q.min < 1 {
			return &ConfigError{Quant: q.Name(), Reason: fmt.Sprintf("count must be >= 1, got %d", q.min)}
		}
	case quantBetween:
		if q.min < 0 {
			return &ConfigError{Quant: q.Name(), Reason: fmt.Sprintf("from must be >= 0, got %d", q.min)}
		}
		if q.max <= q.min {
			return &ConfigError{Quant: q.Name(), Reason: fmt.Sprintf("upTo must be > from, got from=%d upTo=%d", q.min, q.max)}
		}
	}
	return nil
}

// passes reports whether satisfied successes out of total elements meet
// the policy.
func (q Quantifier) passes(satisfied, total int) bool {
	switch q.kind {
	case quantAll, quantEvery:
		return satisfied == total
	case quantAtLeast:
		return satisfied >= q.min
	case quantAtMost:
		return satisfied <= q.max
	case quantExactly:
		return satisfied == q.min
	case quantNo:
		return satisfied == 0
	case quantBetween:
		return satisfied >= q.min && satisfied <= q.max
	}
	return false
}
