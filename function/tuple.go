package function

import "fmt"

// Tuple2 groups two arguments into one value. It is comparable whenever A and B are.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V1, t.V2)
}

// Tuple3 groups three arguments into one value. It is comparable whenever A, B and C are.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V1, t.V2, t.V3)
}

// NewTuple2 pairs a and b.
func NewTuple2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{V1: a, V2: b}
}

// NewTuple3 groups a, b and c.
func NewTuple3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: a, V2: b, V3: c}
}

// Tupled turns f into a single-argument core over Tuple2.
func (f Func2[A, B, R]) Tupled() Func1[Tuple2[A, B], R] {
	return func(t Tuple2[A, B]) R { return f(t.V1, t.V2) }
}

// Tupled turns f into a single-argument core over Tuple3.
func (f Func3[A, B, C, R]) Tupled() Func1[Tuple3[A, B, C], R] {
	return func(t Tuple3[A, B, C]) R { return f(t.V1, t.V2, t.V3) }
}

func (f ThrowingFunc2[A, B, R]) Tupled() ThrowingFunc1[Tuple2[A, B], R] {
	return func(t Tuple2[A, B]) (R, error) { return f(t.V1, t.V2) }
}

func (f ThrowingFunc3[A, B, C, R]) Tupled() ThrowingFunc1[Tuple3[A, B, C], R] {
	return func(t Tuple3[A, B, C]) (R, error) { return f(t.V1, t.V2, t.V3) }
}

// Untupled2 is the inverse of Func2.Tupled.
func Untupled2[A, B, R any](f Function1[Tuple2[A, B], R]) Func2[A, B, R] {
	return func(a A, b B) R { return f.Apply(Tuple2[A, B]{V1: a, V2: b}) }
}

// Untupled3 is the inverse of Func3.Tupled.
func Untupled3[A, B, C, R any](f Function1[Tuple3[A, B, C], R]) Func3[A, B, C, R] {
	return func(a A, b B, c C) R { return f.Apply(Tuple3[A, B, C]{V1: a, V2: b, V3: c}) }
}

// Reversed swaps the two arguments of f.
func (f Func2[A, B, R]) Reversed() Func2[B, A, R] {
	return func(b B, a A) R { return f(a, b) }
}

// Reversed reverses the whole argument list: (c, b, a) is applied as f(a, b, c).
func (f Func3[A, B, C, R]) Reversed() Func3[C, B, A, R] {
	return func(c C, b B, a A) R { return f(a, b, c) }
}

func (f ThrowingFunc2[A, B, R]) Reversed() ThrowingFunc2[B, A, R] {
	return func(b B, a A) (R, error) { return f(a, b) }
}

func (f ThrowingFunc3[A, B, C, R]) Reversed() ThrowingFunc3[C, B, A, R] {
	return func(c C, b B, a A) (R, error) { return f(a, b, c) }
}
