// Package inspectors binds quantified inspections to testing.T-style
// runners: a failing inspection fails the test with the full report, and
// pending/canceled signals skip it when the runner supports skipping.
package inspectors

import (
	quantify "github.com/quantify-go/quantify"
)

// TestingT is the minimal runner surface needed to report an inspection
// failure. *testing.T satisfies it.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface{ Helper() }
type tSkipper interface {
	Skipf(format string, args ...any)
}
type tFailNow interface{ FailNow() }

// ForAll fails t unless every element of col satisfies check.
func ForAll[E any](t TestingT, col quantify.Collection[E], check quantify.Check[E]) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, quantify.InspectAt(quantify.Caller(1), quantify.All(), col, check))
}

// ForEvery fails t unless every element of col satisfies check, reporting
// with forEvery phrasing.
func ForEvery[E any](t TestingT, col quantify.Collection[E], check quantify.Check[E]) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, quantify.InspectAt(quantify.Caller(1), quantify.Every(), col, check))
}

// ForAtLeast fails t unless at least min elements of col satisfy check.
func ForAtLeast[E any](t TestingT, min int, col quantify.Collection[E], check quantify.Check[E]) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, quantify.InspectAt(quantify.Caller(1), quantify.AtLeast(min), col, check))
}

// ForAtMost fails t unless at most max elements of col satisfy check.
func ForAtMost[E any](t TestingT, max int, col quantify.Collection[E], check quantify.Check[E]) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, quantify.InspectAt(quantify.Caller(1), quantify.AtMost(max), col, check))
}

// ForExactly fails t unless exactly count elements of col satisfy check.
func ForExactly[E any](t TestingT, count int, col quantify.Collection[E], check quantify.Check[E]) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, quantify.InspectAt(quantify.Caller(1), quantify.Exactly(count), col, check))
}

// ForNo fails t when any element of col satisfies check.
func ForNo[E any](t TestingT, col quantify.Collection[E], check quantify.Check[E]) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, quantify.InspectAt(quantify.Caller(1), quantify.No(), col, check))
}

// ForBetween fails t unless between from and upTo elements of col satisfy
// check.
func ForBetween[E any](t TestingT, from, upTo int, col quantify.Collection[E], check quantify.Check[E]) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, quantify.InspectAt(quantify.Caller(1), quantify.Between(from, upTo), col, check))
}

// report converts an inspection outcome into a test verdict: nothing on
// pass, skip on pending/canceled signals when the runner supports it, a
// fatal failure otherwise.
func report(t TestingT, err error) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err == nil {
		return
	}
	if sig, ok := quantify.AsSignal(err); ok {
		if sk, ok := t.(tSkipper); ok {
			sk.Skipf("%s", sig.Error())
			return
		}
		t.Errorf("%s", sig.Error())
		return
	}
	t.Errorf("%s", err.Error())
	if f, ok := t.(tFailNow); ok {
		f.FailNow()
	}
}
