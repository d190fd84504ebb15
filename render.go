package quantify

import (
	"strconv"
	"strings"

	"github.com/quantify-go/quantify/phrase"
)

// render produces the report text. depth controls indentation: entry lines
// sit at depth+1, the trailing "in <container>" at depth, so a nested
// report indents one level deeper than the entry that carries it. render
// is pure; rendering the same report twice yields identical text.
func render(r *Report, depth int) string {
	head := phrase.T("failed_because", map[string]string{"quant": r.Quant.Name()})
	n := len(r.Satisfied)
	switch r.Quant.kind {
	case quantAtLeast:
		return renderShortfall(r, depth, head+" "+onlyPhrase(n), false)
	case quantAtMost, quantNo:
		return renderInline(r, head+" "+satisfiedPhrase(n))
	case quantExactly:
		if n > r.Quant.min {
			return renderInline(r, head+" "+satisfiedPhrase(n))
		}
		return renderShortfall(r, depth, head+" "+onlyPhrase(n), true)
	case quantBetween:
		if n > r.Quant.max {
			return renderInline(r, head+" "+satisfiedPhrase(n))
		}
		return renderShortfall(r, depth, head+" "+onlyPhrase(n), true)
	default: // All, Every
		return renderBlock(r, depth, head)
	}
}

// renderShortfall handles lower-bound violations. nameSatisfied appends the
// labels of the elements that did satisfy the check (Exactly/Between name
// them, AtLeast does not). Without violation entries to list, the report
// collapses to a single line.
func renderShortfall(r *Report, depth int, reason string, nameSatisfied bool) string {
	if nameSatisfied && len(r.Satisfied) > 0 {
		reason += " at " + labelList(r.Satisfied)
	}
	if len(r.Entries) == 0 {
		return reason + " in " + r.Container
	}
	return renderBlock(r, depth, reason)
}

// renderInline handles upper-bound violations, where the satisfying
// elements are themselves the problem: one line naming their labels.
func renderInline(r *Report, reason string) string {
	if len(r.Satisfied) > 0 {
		reason += " at " + labelList(r.Satisfied)
	}
	return reason + " in " + r.Container
}

// renderBlock emits the multi-line form: reason, one line per violating
// element, then the inspected container.
func renderBlock(r *Report, depth int, reason string) string {
	ind := strings.Repeat("  ", depth)
	var b strings.Builder
	b.WriteString(reason)
	b.WriteString(": \n")
	for i := range r.Entries {
		if i > 0 {
			b.WriteString(", \n")
		}
		b.WriteString(ind)
		b.WriteString("  ")
		b.WriteString(renderEntry(&r.Entries[i], depth))
	}
	b.WriteString(" \n")
	b.WriteString(ind)
	b.WriteString("in ")
	b.WriteString(r.Container)
	return b.String()
}

func renderEntry(e *Entry, depth int) string {
	prefix := "at " + e.Label.String() + ", "
	if e.Nested != nil {
		return prefix + render(e.Nested, depth+1) + " (" + e.Loc.String() + ")"
	}
	return prefix + e.Message + " (" + e.Loc.String() + ")"
}

// onlyPhrase words a shortfall: "no element" / "only 1 element" /
// "only N elements".
func onlyPhrase(n int) string {
	switch n {
	case 0:
		return phrase.T("no_element", nil)
	case 1:
		return phrase.T("only_one_element", nil)
	default:
		return phrase.T("only_n_elements", map[string]string{"count": strconv.Itoa(n)})
	}
}

// satisfiedPhrase words an excess: "1 element satisfied" / "N elements
// satisfied".
func satisfiedPhrase(n int) string {
	if n == 1 {
		return phrase.T("one_element_satisfied", nil)
	}
	return phrase.T("n_elements_satisfied", map[string]string{"count": strconv.Itoa(n)})
}

// labelList renders "index 0, 1 and 2" or `key "a" and "b"`.
func labelList(labels []Label) string {
	word := "index"
	if labels[0].Kind == LabelKey {
		word = "key"
	}
	vals := make([]string, len(labels))
	for i, l := range labels {
		vals[i] = l.value()
	}
	switch len(vals) {
	case 1:
		return word + " " + vals[0]
	case 2:
		return word + " " + vals[0] + " and " + vals[1]
	default:
		return word + " " + strings.Join(vals[:len(vals)-1], ", ") + " and " + vals[len(vals)-1]
	}
}
