package quantify

import "errors"

// SignalKind distinguishes the control-flow outcomes that abort a whole
// inspection instead of counting as one more element failure.
type SignalKind int

const (
	SignalPending SignalKind = iota
	SignalCanceled
)

func (k SignalKind) String() string {
	if k == SignalCanceled {
		return "canceled"
	}
	return "pending"
}

// Signal is a propagating outcome raised by a per-element check. Inspect
// returns it unchanged, short-circuiting the remaining elements; it is
// never folded into a Report.
type Signal struct {
	Kind   SignalKind
	Reason string
	Loc    Location
}

func (s *Signal) Error() string {
	if s.Reason == "" {
		return s.Kind.String()
	}
	return s.Kind.String() + ": " + s.Reason
}

// Pending marks the current check as pending work, aborting the inspection.
// The caller's file and line are captured.
func Pending(reason string) *Signal {
	return &Signal{Kind: SignalPending, Reason: reason, Loc: callerLocation(1)}
}

// Canceled marks the current check as canceled, aborting the inspection.
// The caller's file and line are captured.
func Canceled(reason string) *Signal {
	return &Signal{Kind: SignalCanceled, Reason: reason, Loc: callerLocation(1)}
}

// AsSignal extracts a *Signal from an error using errors.As internally.
func AsSignal(err error) (*Signal, bool) {
	if err == nil {
		return nil, false
	}
	var s *Signal
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}
