package function

// Function1 is a non-fallible core of arity 1.
type Function1[A, R any] interface {
	Apply(A) R
}

// Function2 is a non-fallible core of arity 2.
type Function2[A, B, R any] interface {
	Apply(A, B) R
}

// Function3 is a non-fallible core of arity 3.
type Function3[A, B, C, R any] interface {
	Apply(A, B, C) R
}

var (
	_ Function1[int, int]           = Func1[int, int](nil)
	_ Function2[int, int, int]      = Func2[int, int, int](nil)
	_ Function3[int, int, int, int] = Func3[int, int, int, int](nil)
)

// Func1 lifts a func literal into a Function1.
type Func1[A, R any] func(A) R

func (f Func1[A, R]) Apply(a A) R { return f(a) }

// Func2 lifts a func literal into a Function2.
type Func2[A, B, R any] func(A, B) R

func (f Func2[A, B, R]) Apply(a A, b B) R { return f(a, b) }

// Func3 lifts a func literal into a Function3.
type Func3[A, B, C, R any] func(A, B, C) R

func (f Func3[A, B, C, R]) Apply(a A, b B, c C) R { return f(a, b, c) }

// Of1 views any Function1 as a Func1 so the combinator methods become available.
func Of1[A, R any](f Function1[A, R]) Func1[A, R] {
	if fn, ok := f.(Func1[A, R]); ok {
		return fn
	}
	return f.Apply
}

// Of2 views any Function2 as a Func2.
func Of2[A, B, R any](f Function2[A, B, R]) Func2[A, B, R] {
	if fn, ok := f.(Func2[A, B, R]); ok {
		return fn
	}
	return f.Apply
}

// Of3 views any Function3 as a Func3.
func Of3[A, B, C, R any](f Function3[A, B, C, R]) Func3[A, B, C, R] {
	if fn, ok := f.(Func3[A, B, C, R]); ok {
		return fn
	}
	return f.Apply
}

// Identity returns its argument.
func Identity[A any]() Func1[A, A] {
	return func(a A) A { return a }
}

// Constant1 ignores its argument and returns r.
func Constant1[A, R any](r R) Func1[A, R] {
	return func(A) R { return r }
}
