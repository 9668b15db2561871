// Package paniclog turns panics into errors,
// logging the panic and its stack trace on the way.
package paniclog

import (
	"fmt"
	"io"
	"runtime/debug"

	"go.uber.org/multierr"
)

// Handle converts a recovered panic value into an error
// after writing it and the current stack to w.
// Returns nil if pval is nil.
//
// If pval is an error, the returned error wraps it.
func Handle(pval any, w io.Writer) error {
	if pval == nil {
		return nil
	}

	fmt.Fprintf(w, "panic: %v\n%s", pval, debug.Stack())

	if err, ok := pval.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", pval)
}

// Recover recovers from a panic and appends it to the error at err.
// It must be called directly with defer.
//
//	defer paniclog.Recover(&err, os.Stderr)
func Recover(err *error, w io.Writer) {
	if pval := recover(); pval != nil {
		*err = multierr.Append(*err, Handle(pval, w))
	}
}
