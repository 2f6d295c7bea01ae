package function

import (
	"reflect"

	"github.com/on-the-ground/funcore/failure"
)

// ThrowingFunction1 is a fallible core of arity 1.
type ThrowingFunction1[A, R any] interface {
	Apply(A) (R, error)
}

// ThrowingFunction2 is a fallible core of arity 2.
type ThrowingFunction2[A, B, R any] interface {
	Apply(A, B) (R, error)
}

// ThrowingFunction3 is a fallible core of arity 3.
type ThrowingFunction3[A, B, C, R any] interface {
	Apply(A, B, C) (R, error)
}

var (
	_ ThrowingFunction1[int, int]           = ThrowingFunc1[int, int](nil)
	_ ThrowingFunction2[int, int, int]      = ThrowingFunc2[int, int, int](nil)
	_ ThrowingFunction3[int, int, int, int] = ThrowingFunc3[int, int, int, int](nil)
)

// ThrowingFunc1 lifts a func literal into a ThrowingFunction1.
type ThrowingFunc1[A, R any] func(A) (R, error)

func (f ThrowingFunc1[A, R]) Apply(a A) (R, error) { return f(a) }

// ThrowingFunc2 lifts a func literal into a ThrowingFunction2.
type ThrowingFunc2[A, B, R any] func(A, B) (R, error)

func (f ThrowingFunc2[A, B, R]) Apply(a A, b B) (R, error) { return f(a, b) }

// ThrowingFunc3 lifts a func literal into a ThrowingFunction3.
type ThrowingFunc3[A, B, C, R any] func(A, B, C) (R, error)

func (f ThrowingFunc3[A, B, C, R]) Apply(a A, b B, c C) (R, error) { return f(a, b, c) }

// OfThrowing1 views any ThrowingFunction1 as a ThrowingFunc1.
func OfThrowing1[A, R any](f ThrowingFunction1[A, R]) ThrowingFunc1[A, R] {
	if fn, ok := f.(ThrowingFunc1[A, R]); ok {
		return fn
	}
	return f.Apply
}

// OfThrowing2 views any ThrowingFunction2 as a ThrowingFunc2.
func OfThrowing2[A, B, R any](f ThrowingFunction2[A, B, R]) ThrowingFunc2[A, B, R] {
	if fn, ok := f.(ThrowingFunc2[A, B, R]); ok {
		return fn
	}
	return f.Apply
}

// OfThrowing3 views any ThrowingFunction3 as a ThrowingFunc3.
func OfThrowing3[A, B, C, R any](f ThrowingFunction3[A, B, C, R]) ThrowingFunc3[A, B, C, R] {
	if fn, ok := f.(ThrowingFunc3[A, B, C, R]); ok {
		return fn
	}
	return f.Apply
}

// Nest drops the error from the signature. A returned error is raised as a panic:
// unchecked errors as they are, anything else as a *failure.NestedError carrying the
// error's message and the error itself as cause.
func (f ThrowingFunc1[A, R]) Nest() Func1[A, R] {
	return func(a A) R {
		r, err := f(a)
		raise(failure.Nest, err)
		return r
	}
}

func (f ThrowingFunc2[A, B, R]) Nest() Func2[A, B, R] {
	return func(a A, b B) R {
		r, err := f(a, b)
		raise(failure.Nest, err)
		return r
	}
}

func (f ThrowingFunc3[A, B, C, R]) Nest() Func3[A, B, C, R] {
	return func(a A, b B, c C) R {
		r, err := f(a, b, c)
		raise(failure.Nest, err)
		return r
	}
}

// Sneaky drops the error from the signature. A returned error is raised as a panic
// with the error value itself, so FuncN.Throwing or failure.Catch get back the
// identical error.
func (f ThrowingFunc1[A, R]) Sneaky() Func1[A, R] {
	return func(a A) R {
		r, err := f(a)
		raise(identity, err)
		return r
	}
}

func (f ThrowingFunc2[A, B, R]) Sneaky() Func2[A, B, R] {
	return func(a A, b B) R {
		r, err := f(a, b)
		raise(identity, err)
		return r
	}
}

func (f ThrowingFunc3[A, B, C, R]) Sneaky() Func3[A, B, C, R] {
	return func(a A, b B, c C) R {
		r, err := f(a, b, c)
		raise(identity, err)
		return r
	}
}

// Recover returns a core that, when f fails, asks handler for a substitute and applies
// it to the same arguments. The substitute's result and error are returned as they are.
// A nil substitute yields a *failure.RecoveryError describing the original error.
func (f ThrowingFunc1[A, R]) Recover(handler func(error) ThrowingFunction1[A, R]) ThrowingFunc1[A, R] {
	return func(a A) (R, error) {
		r, err := f(a)
		if err == nil {
			return r, nil
		}
		g := handler(err)
		if absent(g) {
			var zero R
			return zero, &failure.RecoveryError{Cause: err}
		}
		return g.Apply(a)
	}
}

func (f ThrowingFunc2[A, B, R]) Recover(handler func(error) ThrowingFunction2[A, B, R]) ThrowingFunc2[A, B, R] {
	return func(a A, b B) (R, error) {
		r, err := f(a, b)
		if err == nil {
			return r, nil
		}
		g := handler(err)
		if absent(g) {
			var zero R
			return zero, &failure.RecoveryError{Cause: err}
		}
		return g.Apply(a, b)
	}
}

func (f ThrowingFunc3[A, B, C, R]) Recover(handler func(error) ThrowingFunction3[A, B, C, R]) ThrowingFunc3[A, B, C, R] {
	return func(a A, b B, c C) (R, error) {
		r, err := f(a, b, c)
		if err == nil {
			return r, nil
		}
		g := handler(err)
		if absent(g) {
			var zero R
			return zero, &failure.RecoveryError{Cause: err}
		}
		return g.Apply(a, b, c)
	}
}

// Throwing brings panics raised by f back into the error channel. Error panic values
// are returned unchanged; other values become a *failure.PanicError.
func (f Func1[A, R]) Throwing() ThrowingFunc1[A, R] {
	return func(a A) (r R, err error) {
		defer func() {
			if caught := failure.Catch(recover()); caught != nil {
				err = caught
			}
		}()
		return f(a), nil
	}
}

func (f Func2[A, B, R]) Throwing() ThrowingFunc2[A, B, R] {
	return func(a A, b B) (r R, err error) {
		defer func() {
			if caught := failure.Catch(recover()); caught != nil {
				err = caught
			}
		}()
		return f(a, b), nil
	}
}

func (f Func3[A, B, C, R]) Throwing() ThrowingFunc3[A, B, C, R] {
	return func(a A, b B, c C) (r R, err error) {
		defer func() {
			if caught := failure.Catch(recover()); caught != nil {
				err = caught
			}
		}()
		return f(a, b, c), nil
	}
}

// Recover is the panicking counterpart of ThrowingFunc1.Recover. A panic raised by f is
// handed to handler as an error; a nil substitute panics with a *failure.RecoveryError.
func (f Func1[A, R]) Recover(handler func(error) Function1[A, R]) Func1[A, R] {
	return func(a A) R {
		r, err := f.Throwing()(a)
		if err == nil {
			return r
		}
		g := handler(err)
		if absent(g) {
			panic(&failure.RecoveryError{Cause: err})
		}
		return g.Apply(a)
	}
}

// Recover is the panicking counterpart of ThrowingFunc2.Recover.
func (f Func2[A, B, R]) Recover(handler func(error) Function2[A, B, R]) Func2[A, B, R] {
	return func(a A, b B) R {
		r, err := f.Throwing()(a, b)
		if err == nil {
			return r
		}
		g := handler(err)
		if absent(g) {
			panic(&failure.RecoveryError{Cause: err})
		}
		return g.Apply(a, b)
	}
}

// Recover is the panicking counterpart of ThrowingFunc3.Recover.
func (f Func3[A, B, C, R]) Recover(handler func(error) Function3[A, B, C, R]) Func3[A, B, C, R] {
	return func(a A, b B, c C) R {
		r, err := f.Throwing()(a, b, c)
		if err == nil {
			return r
		}
		g := handler(err)
		if absent(g) {
			panic(&failure.RecoveryError{Cause: err})
		}
		return g.Apply(a, b, c)
	}
}

func identity(err error) error { return err }

// absent reports whether a substitute is nil, including a typed nil such as a nil
// func value or a nil pointer to a memoized wrapper.
func absent(g any) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// raise panics with adapt(err) when err is not nil.
func raise(adapt func(error) error, err error) {
	if err != nil {
		panic(adapt(err))
	}
}
