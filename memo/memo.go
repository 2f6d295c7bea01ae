package memo

import (
	"fmt"

	"github.com/on-the-ground/funcore/function"
)

// Memoized is implemented by every memoizing wrapper of this package. Memoizing a
// value that already implements it returns that value unchanged.
type Memoized interface {
	ID() string
	Len() int
	Stats() Stats
	memoized()
}

var (
	_ Memoized = (*Memoized1[int, int])(nil)
	_ Memoized = (*Memoized2[int, int, int])(nil)
	_ Memoized = (*Memoized3[int, int, int, int])(nil)
	_ Memoized = (*ThrowingMemoized1[int, int])(nil)
	_ Memoized = (*ThrowingMemoized2[int, int, int])(nil)
	_ Memoized = (*ThrowingMemoized3[int, int, int, int])(nil)

	_ function.Function1[int, int]                   = (*Memoized1[int, int])(nil)
	_ function.ThrowingFunction3[int, int, int, int] = (*ThrowingMemoized3[int, int, int, int])(nil)
)

// Memoized1 is a memoizing Function1.
type Memoized1[A, R any] struct {
	*meter
	apply func(A) R
}

func (m *Memoized1[A, R]) Apply(a A) R { return m.apply(a) }

// Func exposes m as a function.Func1 for further composition.
func (m *Memoized1[A, R]) Func() function.Func1[A, R] { return m.apply }

// Memoized2 is a memoizing Function2.
type Memoized2[A, B, R any] struct {
	*meter
	apply func(A, B) R
}

func (m *Memoized2[A, B, R]) Apply(a A, b B) R { return m.apply(a, b) }

func (m *Memoized2[A, B, R]) Func() function.Func2[A, B, R] { return m.apply }

// Memoized3 is a memoizing Function3.
type Memoized3[A, B, C, R any] struct {
	*meter
	apply func(A, B, C) R
}

func (m *Memoized3[A, B, C, R]) Apply(a A, b B, c C) R { return m.apply(a, b, c) }

func (m *Memoized3[A, B, C, R]) Func() function.Func3[A, B, C, R] { return m.apply }

// ThrowingMemoized1 is a memoizing ThrowingFunction1.
type ThrowingMemoized1[A, R any] struct {
	*meter
	apply func(A) (R, error)
}

func (m *ThrowingMemoized1[A, R]) Apply(a A) (R, error) { return m.apply(a) }

func (m *ThrowingMemoized1[A, R]) Func() function.ThrowingFunc1[A, R] { return m.apply }

// ThrowingMemoized2 is a memoizing ThrowingFunction2.
type ThrowingMemoized2[A, B, R any] struct {
	*meter
	apply func(A, B) (R, error)
}

func (m *ThrowingMemoized2[A, B, R]) Apply(a A, b B) (R, error) { return m.apply(a, b) }

func (m *ThrowingMemoized2[A, B, R]) Func() function.ThrowingFunc2[A, B, R] { return m.apply }

// ThrowingMemoized3 is a memoizing ThrowingFunction3.
type ThrowingMemoized3[A, B, C, R any] struct {
	*meter
	apply func(A, B, C) (R, error)
}

func (m *ThrowingMemoized3[A, B, C, R]) Apply(a A, b B, c C) (R, error) { return m.apply(a, b, c) }

func (m *ThrowingMemoized3[A, B, C, R]) Func() function.ThrowingFunc3[A, B, C, R] { return m.apply }

// Memoize1 caches f by argument. f runs at most once per distinct argument, also under
// concurrent calls; callers racing on the same argument wait for the first one.
// A panic from f is re-raised to every caller of that computation and nothing is
// cached, so a later call runs f again.
//
// f must not call the returned function with the argument it is computing, which
// would wait on itself. Recursion on other arguments is fine.
func Memoize1[A comparable, R any](f function.Function1[A, R], cfg ...Config) *Memoized1[A, R] {
	if m, ok := f.(*Memoized1[A, R]); ok {
		return m
	}
	c := newCache[A, R](normalizeConfig(cfg))
	return &Memoized1[A, R]{
		meter: c.meter,
		apply: func(a A) R {
			r, _ := c.load(a, func() (R, error) { return f.Apply(a), nil })
			return r
		},
	}
}

// Memoize2 is Memoize1 for two arguments, keyed by function.Tuple2.
func Memoize2[A, B comparable, R any](f function.Function2[A, B, R], cfg ...Config) *Memoized2[A, B, R] {
	if m, ok := f.(*Memoized2[A, B, R]); ok {
		return m
	}
	c := newCache[function.Tuple2[A, B], R](normalizeConfig(cfg))
	return &Memoized2[A, B, R]{
		meter: c.meter,
		apply: func(a A, b B) R {
			r, _ := c.load(function.NewTuple2(a, b), func() (R, error) { return f.Apply(a, b), nil })
			return r
		},
	}
}

// Memoize3 is Memoize1 for three arguments, keyed by function.Tuple3.
func Memoize3[A, B, C comparable, R any](f function.Function3[A, B, C, R], cfg ...Config) *Memoized3[A, B, C, R] {
	if m, ok := f.(*Memoized3[A, B, C, R]); ok {
		return m
	}
	c := newCache[function.Tuple3[A, B, C], R](normalizeConfig(cfg))
	return &Memoized3[A, B, C, R]{
		meter: c.meter,
		apply: func(a A, b B, c3 C) R {
			r, _ := c.load(function.NewTuple3(a, b, c3), func() (R, error) { return f.Apply(a, b, c3), nil })
			return r
		},
	}
}

// MemoizeThrowing1 caches the successful results of f. An error is returned to every
// caller of the failed computation and is not cached.
func MemoizeThrowing1[A comparable, R any](f function.ThrowingFunction1[A, R], cfg ...Config) *ThrowingMemoized1[A, R] {
	if m, ok := f.(*ThrowingMemoized1[A, R]); ok {
		return m
	}
	c := newCache[A, R](normalizeConfig(cfg))
	return &ThrowingMemoized1[A, R]{
		meter: c.meter,
		apply: func(a A) (R, error) {
			return c.load(a, func() (R, error) { return f.Apply(a) })
		},
	}
}

// MemoizeThrowing2 memoizes a fallible core of arity 2 keyed on its argument pair.
func MemoizeThrowing2[A, B comparable, R any](f function.ThrowingFunction2[A, B, R], cfg ...Config) *ThrowingMemoized2[A, B, R] {
	if m, ok := f.(*ThrowingMemoized2[A, B, R]); ok {
		return m
	}
	c := newCache[function.Tuple2[A, B], R](normalizeConfig(cfg))
	return &ThrowingMemoized2[A, B, R]{
		meter: c.meter,
		apply: func(a A, b B) (R, error) {
			return c.load(function.NewTuple2(a, b), func() (R, error) { return f.Apply(a, b) })
		},
	}
}

// MemoizeThrowing3 memoizes a fallible core of arity 3 keyed on its argument triple.
func MemoizeThrowing3[A, B, C comparable, R any](f function.ThrowingFunction3[A, B, C, R], cfg ...Config) *ThrowingMemoized3[A, B, C, R] {
	if m, ok := f.(*ThrowingMemoized3[A, B, C, R]); ok {
		return m
	}
	c := newCache[function.Tuple3[A, B, C], R](normalizeConfig(cfg))
	return &ThrowingMemoized3[A, B, C, R]{
		meter: c.meter,
		apply: func(a A, b B, c3 C) (R, error) {
			return c.load(function.NewTuple3(a, b, c3), func() (R, error) { return f.Apply(a, b, c3) })
		},
	}
}

// MemoizeKeyed1 caches f by key(a) instead of by a, for arguments that are not
// comparable. key must map equal arguments to equal keys and different arguments to
// different keys; two arguments sharing a key share a result.
func MemoizeKeyed1[A any, K comparable, R any](
	f function.Function1[A, R],
	key func(A) K,
	cfg ...Config,
) *Memoized1[A, R] {
	if m, ok := f.(*Memoized1[A, R]); ok {
		return m
	}
	c := newCache[K, R](normalizeConfig(cfg))
	return &Memoized1[A, R]{
		meter: c.meter,
		apply: func(a A) R {
			r, _ := c.load(key(a), func() (R, error) { return f.Apply(a), nil })
			return r
		},
	}
}

// MemoizeStringer1 caches f by the String() form of its argument.
func MemoizeStringer1[A fmt.Stringer, R any](f function.Function1[A, R], cfg ...Config) *Memoized1[A, R] {
	return MemoizeKeyed1(f, func(a A) string { return a.String() }, cfg...)
}
