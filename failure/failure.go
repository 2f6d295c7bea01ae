// Package failure defines how failures travel between the two error idioms of funcore:
// errors returned from fallible cores and panics raised by non-fallible ones.
//
// A failure is "unchecked" when it implements runtime.Error. Unchecked failures are
// propagated as-is by every adaptation; any other error is either wrapped (Nest) or
// re-raised with its identity intact (Throw).
package failure

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrNilRecovery is matched by every RecoveryError.
var ErrNilRecovery = errors.New("recovery handler returned nil function")

var (
	_ runtime.Error = (*NestedError)(nil)
	_ runtime.Error = (*PanicError)(nil)
)

// NestedError carries a checked failure through a panic.
type NestedError struct {
	msg   string
	cause error
}

func (e *NestedError) Error() string { return e.msg }

func (e *NestedError) Unwrap() error { return e.cause }

// RuntimeError marks NestedError as unchecked so that it is never nested twice.
func (e *NestedError) RuntimeError() {}

// PanicError holds a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) RuntimeError() {}

// RecoveryError reports a recovery handler that returned no substitute.
// Cause is the failure the handler was asked to recover from.
type RecoveryError struct {
	Cause error
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("%v: recovering from %T: %v", ErrNilRecovery, e.Cause, e.Cause)
}

func (e *RecoveryError) Unwrap() []error {
	return []error{ErrNilRecovery, e.Cause}
}

// IsUnchecked reports whether err, or any error it wraps, is a runtime.Error.
func IsUnchecked(err error) bool {
	var re runtime.Error
	return errors.As(err, &re)
}

// Nest returns err unchanged when it is unchecked, or a NestedError with err's message
// and err as cause.
func Nest(err error) error {
	if err == nil || IsUnchecked(err) {
		return err
	}
	return &NestedError{msg: err.Error(), cause: err}
}

// Throw panics with err itself. Nothing is wrapped, so a later Catch returns the
// identical value.
func Throw(err error) {
	panic(err)
}

// Catch turns a value obtained from recover() back into an error.
// It returns nil when nothing was recovered.
func Catch(recovered any) error {
	switch r := recovered.(type) {
	case nil:
		return nil
	case error:
		return r
	default:
		return &PanicError{Value: r}
	}
}
