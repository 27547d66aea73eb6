// Package fault carries fatal errors from deep in an action up to the command
// handler, which logs them and terminates the process with a non-zero status.
package fault

import (
	"errors"
	"fmt"
)

// Fatal is an error that ends the run. Op names the failing operation
// (e.g. "reconcile", "yadm pull") so the final log line says what broke.
type Fatal struct {
	Op  string
	Err error
}

func (f *Fatal) Error() string {
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *Fatal) Unwrap() error {
	return f.Err
}

// Wrap marks err as fatal for operation op. A nil err stays nil, and an error
// that is already fatal keeps its original operation.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var f *Fatal
	if errors.As(err, &f) {
		return err
	}
	return &Fatal{Op: op, Err: err}
}

// IsFatal reports whether err, or anything it wraps, is a *Fatal.
func IsFatal(err error) bool {
	var f *Fatal
	return errors.As(err, &f)
}

// Op returns the failing operation recorded in err, or "" if err is not fatal.
func Op(err error) string {
	var f *Fatal
	if errors.As(err, &f) {
		return f.Op
	}
	return ""
}

// Message formats err for the final log line. A fatal error names its
// operation once, followed by the underlying cause.
func Message(err error) string {
	var f *Fatal
	if errors.As(err, &f) {
		return fmt.Sprintf("Fatal error during %s: %v", f.Op, f.Err)
	}
	return err.Error()
}
