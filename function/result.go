package function

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// ToResult1 folds the (R, error) pair of f into an fn.Result.
func ToResult1[A, R any](f ThrowingFunction1[A, R]) Func1[A, fn.Result[R]] {
	return func(a A) fn.Result[R] {
		return toResult(f.Apply(a))
	}
}

// ToResult2 folds the (R, error) pair of f into an fn.Result.
func ToResult2[A, B, R any](f ThrowingFunction2[A, B, R]) Func2[A, B, fn.Result[R]] {
	return func(a A, b B) fn.Result[R] {
		return toResult(f.Apply(a, b))
	}
}

// ToResult3 folds the (R, error) pair of f into an fn.Result.
func ToResult3[A, B, C, R any](f ThrowingFunction3[A, B, C, R]) Func3[A, B, C, fn.Result[R]] {
	return func(a A, b B, c C) fn.Result[R] {
		return toResult(f.Apply(a, b, c))
	}
}

// FromResult1 is the inverse of ToResult1.
func FromResult1[A, R any](f Function1[A, fn.Result[R]]) ThrowingFunc1[A, R] {
	return func(a A) (R, error) {
		return f.Apply(a).Unpack()
	}
}

// FromResult2 is the inverse of ToResult2.
func FromResult2[A, B, R any](f Function2[A, B, fn.Result[R]]) ThrowingFunc2[A, B, R] {
	return func(a A, b B) (R, error) {
		return f.Apply(a, b).Unpack()
	}
}

// FromResult3 is the inverse of ToResult3.
func FromResult3[A, B, C, R any](f Function3[A, B, C, fn.Result[R]]) ThrowingFunc3[A, B, C, R] {
	return func(a A, b B, c C) (R, error) {
		return f.Apply(a, b, c).Unpack()
	}
}

func toResult[R any](r R, err error) fn.Result[R] {
	if err != nil {
		return fn.Err[R](err)
	}
	return fn.Ok(r)
}
