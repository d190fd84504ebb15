package quantify

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

// Check evaluates one element. A nil return means the element satisfied
// the check. Return a value built with Fail or Failf to attach the failing
// source location; return the error of a nested Inspect to compose
// inspections; return a Signal to abort the whole inspection. Panics are
// not recovered and abort the scan.
type Check[E any] func(e E) error

// Location is a source position cited by failure messages.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	if l.IsZero() {
		return "unknown source"
	}
	return l.File + ":" + strconv.Itoa(l.Line)
}

// IsZero reports whether no position was captured.
func (l Location) IsZero() bool { return l.File == "" && l.Line == 0 }

// Failure is a single element-check failure with its source location.
type Failure struct {
	Message string
	Loc     Location
	Cause   error
}

func (f *Failure) Error() string { return f.Message }
func (f *Failure) Unwrap() error { return f.Cause }

// Fail builds a Failure capturing the caller's file and line.
func Fail(msg string) error {
	return &Failure{Message: msg, Loc: callerLocation(1)}
}

// Failf is Fail with fmt-style formatting.
func Failf(format string, args ...any) error {
	return &Failure{Message: fmt.Sprintf(format, args...), Loc: callerLocation(1)}
}

// Wrap attaches the caller's location to an arbitrary error, preserving it
// as the cause. Wrap(nil) is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Failure{Message: err.Error(), Loc: callerLocation(1), Cause: err}
}

// callerLocation captures file:line skip+1 frames up, keeping only the
// base file name to match how failure messages cite positions.
func callerLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: filepath.Base(file), Line: line}
}

// Caller captures the file and line skip frames above the caller, for
// front-ends that forward inspections on another caller's behalf.
func Caller(skip int) Location { return callerLocation(skip + 1) }
