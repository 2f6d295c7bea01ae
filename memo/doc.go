// Package memo memoizes pure functions by their arguments.
//
// Memoizing is not only about speed. Wrapping a function with Memoize is a claim:
//
//	→ "This function is pure: equal arguments always give equal results."
//
// The cache trusts that claim. It keeps the first successful result for every distinct
// argument tuple and never looks at the function again for that tuple.
//
// Guarantees:
//   - At most one computation per argument tuple at any time. Concurrent callers of a
//     tuple that is being computed wait for it and receive the same outcome.
//   - Failures are not cached. An error (MemoizeThrowingN) or a panic (MemoizeN) reaches
//     every caller that waited on the failed computation; the next call computes again.
//   - Memoizing an already memoized wrapper returns it unchanged.
//   - Zero values and nil results are cached like any other result.
//
// Non-guarantees:
//   - No eviction, no TTL, no size bound. The cache lives as long as the wrapper.
//   - Arguments must be comparable. Use MemoizeKeyed1 or MemoizeStringer1 otherwise.
//
// Example:
//
//	var fib *memo.Memoized1[int, int]
//	fib = memo.Memoize1(function.Func1[int, int](func(n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return fib.Apply(n-1) + fib.Apply(n-2)
//	}))
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package memo
