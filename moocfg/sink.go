package moocfg

import "fmt"

// Sink is the host-installable diagnostic surface described in spec.md §7.
// It exposes three verbs:
//
//   - Fatal: does not return control to the caller in any meaningful sense;
//     the default implementation panics. Host bindings map this to their own
//     unrecoverable-error convention (exception, process exit, ...).
//   - Error: reports and returns; the call that triggered it still fails.
//   - Warn: reports and returns; the call that triggered it still succeeds,
//     typically after a locally-recovered fallback (see spec.md §7
//     "Recovery boundary").
//
// Installation must happen before any core call and must outlive every core
// call that uses it (spec.md §5 "Shared resources"). A Sink is an ordinary
// value threaded through call sites; moocore never reaches for a package
// global to find one.
type Sink struct {
	FatalFunc func(kind ErrorKind, msg string)
	ErrorFunc func(kind ErrorKind, msg string)
	WarnFunc  func(kind ErrorKind, msg string)
}

// DefaultSink returns the out-of-the-box Sink: Fatal panics with the message,
// Error and Warn are no-ops (the caller is expected to inspect the returned
// error value instead). Host bindings override FatalFunc/ErrorFunc/WarnFunc
// to route through their own logging or exception machinery.
func DefaultSink() *Sink {
	return &Sink{
		FatalFunc: func(kind ErrorKind, msg string) {
			panic(fmt.Sprintf("moocore: fatal [%s]: %s", kind, msg))
		},
		ErrorFunc: func(ErrorKind, string) {},
		WarnFunc:  func(ErrorKind, string) {},
	}
}

// Fatal reports a fatal condition through the sink. Callers that reach this
// point have no meaningful value to return; DefaultSink panics.
func (s *Sink) Fatal(kind ErrorKind, format string, args ...interface{}) {
	if s == nil || s.FatalFunc == nil {
		DefaultSink().Fatal(kind, format, args...)
		return
	}
	s.FatalFunc(kind, fmt.Sprintf(format, args...))
}

// Error reports a recoverable failure; the caller still returns an error.
func (s *Sink) Error(kind ErrorKind, format string, args ...interface{}) {
	if s == nil || s.ErrorFunc == nil {
		return
	}
	s.ErrorFunc(kind, fmt.Sprintf(format, args...))
}

// Warn reports a locally-recovered condition; the caller still succeeds.
func (s *Sink) Warn(kind ErrorKind, format string, args ...interface{}) {
	if s == nil || s.WarnFunc == nil {
		return
	}
	s.WarnFunc(kind, fmt.Sprintf(format, args...))
}
