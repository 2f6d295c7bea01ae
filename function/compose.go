package function

// Compose1 returns a core applying before to the argument and f to the result.
func Compose1[V, A, R any](f Function1[A, R], before Function1[V, A]) Func1[V, R] {
	return func(v V) R {
		return f.Apply(before.Apply(v))
	}
}

// Compose2 transforms each argument with its own function, left to right, then applies f.
func Compose2[V, W, A, B, R any](
	f Function2[A, B, R],
	beforeA Function1[V, A],
	beforeB Function1[W, B],
) Func2[V, W, R] {
	return func(v V, w W) R {
		a := beforeA.Apply(v)
		b := beforeB.Apply(w)
		return f.Apply(a, b)
	}
}

// Compose3 transforms each argument with its own function, left to right, then applies f.
func Compose3[V, W, X, A, B, C, R any](
	f Function3[A, B, C, R],
	beforeA Function1[V, A],
	beforeB Function1[W, B],
	beforeC Function1[X, C],
) Func3[V, W, X, R] {
	return func(v V, w W, x X) R {
		a := beforeA.Apply(v)
		b := beforeB.Apply(w)
		c := beforeC.Apply(x)
		return f.Apply(a, b, c)
	}
}

// AndThen1 returns a core applying f and then after to f's result.
func AndThen1[A, R, V any](f Function1[A, R], after Function1[R, V]) Func1[A, V] {
	return func(a A) V {
		return after.Apply(f.Apply(a))
	}
}

func AndThen2[A, B, R, V any](f Function2[A, B, R], after Function1[R, V]) Func2[A, B, V] {
	return func(a A, b B) V {
		return after.Apply(f.Apply(a, b))
	}
}

func AndThen3[A, B, C, R, V any](f Function3[A, B, C, R], after Function1[R, V]) Func3[A, B, C, V] {
	return func(a A, b B, c C) V {
		return after.Apply(f.Apply(a, b, c))
	}
}

// ComposeThrowing1 is Compose1 for fallible cores. An error from before skips f.
func ComposeThrowing1[V, A, R any](f ThrowingFunction1[A, R], before ThrowingFunction1[V, A]) ThrowingFunc1[V, R] {
	return func(v V) (R, error) {
		a, err := before.Apply(v)
		if err != nil {
			var zero R
			return zero, err
		}
		return f.Apply(a)
	}
}

// ComposeThrowing2 is Compose2 for fallible cores. Transforms run in argument order and
// the first error is returned without running the remaining transforms or f.
func ComposeThrowing2[V, W, A, B, R any](
	f ThrowingFunction2[A, B, R],
	beforeA ThrowingFunction1[V, A],
	beforeB ThrowingFunction1[W, B],
) ThrowingFunc2[V, W, R] {
	return func(v V, w W) (r R, err error) {
		a, err := beforeA.Apply(v)
		if err != nil {
			return r, err
		}
		b, err := beforeB.Apply(w)
		if err != nil {
			return r, err
		}
		return f.Apply(a, b)
	}
}

// ComposeThrowing3 is Compose3 for fallible cores, with the same ordering as
// ComposeThrowing2.
func ComposeThrowing3[V, W, X, A, B, C, R any](
	f ThrowingFunction3[A, B, C, R],
	beforeA ThrowingFunction1[V, A],
	beforeB ThrowingFunction1[W, B],
	beforeC ThrowingFunction1[X, C],
) ThrowingFunc3[V, W, X, R] {
	return func(v V, w W, x X) (r R, err error) {
		a, err := beforeA.Apply(v)
		if err != nil {
			return r, err
		}
		b, err := beforeB.Apply(w)
		if err != nil {
			return r, err
		}
		c, err := beforeC.Apply(x)
		if err != nil {
			return r, err
		}
		return f.Apply(a, b, c)
	}
}

// AndThenThrowing1 is AndThen1 for fallible cores. An error from f skips after.
func AndThenThrowing1[A, R, V any](f ThrowingFunction1[A, R], after ThrowingFunction1[R, V]) ThrowingFunc1[A, V] {
	return func(a A) (V, error) {
		r, err := f.Apply(a)
		if err != nil {
			var zero V
			return zero, err
		}
		return after.Apply(r)
	}
}

func AndThenThrowing2[A, B, R, V any](f ThrowingFunction2[A, B, R], after ThrowingFunction1[R, V]) ThrowingFunc2[A, B, V] {
	return func(a A, b B) (V, error) {
		r, err := f.Apply(a, b)
		if err != nil {
			var zero V
			return zero, err
		}
		return after.Apply(r)
	}
}

func AndThenThrowing3[A, B, C, R, V any](f ThrowingFunction3[A, B, C, R], after ThrowingFunction1[R, V]) ThrowingFunc3[A, B, C, V] {
	return func(a A, b B, c C) (V, error) {
		r, err := f.Apply(a, b, c)
		if err != nil {
			var zero V
			return zero, err
		}
		return after.Apply(r)
	}
}
