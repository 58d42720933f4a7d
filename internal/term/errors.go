package term

import (
	"errors"
	"log"
)

// Domain errors for term operations.
var (
	// ErrSecularTerm indicates time integration of a static term, which would
	// grow without bound. Unreachable through the documented recursion; it
	// signals direct misuse of the low-level operators.
	ErrSecularTerm = errors.New("term: time integration of a static term produces unbounded secular growth")
)

// warnf records recoverable recursion-invariant violations: a derivative
// leaving a nonzero residual frequency power, or an integration landing on
// power zero. The numeric fields stay well-defined, so execution continues.
var warnf func(format string, args ...any) = log.Printf

// SetWarnHandler replaces the diagnostic sink. Passing nil restores the
// default (stdlib log).
func SetWarnHandler(f func(format string, args ...any)) {
	if f == nil {
		f = log.Printf
	}
	warnf = f
}
