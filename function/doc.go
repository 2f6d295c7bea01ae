// Package function provides generic single-method function cores of arity 1 to 3
// and the combinators that derive new cores from them.
//
// Every core comes in two flavours:
//
//   - FunctionN / FuncN never fail through their signature. A failure, if any, is a panic.
//   - ThrowingFunctionN / ThrowingFuncN return (R, error).
//
// The FuncN and ThrowingFuncN adapter types carry the combinators as methods, so a
// plain Go func literal can be lifted with a conversion and chained:
//
//	isEven := function.Pred1[int](func(i int) bool { return i%2 == 0 })
//	isOddPositive := isEven.Negate().And(function.Pred1[int](func(i int) bool { return i > 0 }))
//
// Combinators that introduce new type parameters (Compose, AndThen, Untupled) are plain
// functions, since Go methods cannot declare their own type parameters.
//
// Moving between the two flavours:
//
//	ThrowingFuncN.Nest()    panics with a *failure.NestedError wrapping the error
//	ThrowingFuncN.Sneaky()  panics with the error value itself
//	FuncN.Throwing()        recovers such panics back into errors
//	ThrowingFuncN.Recover() substitutes another core chosen from the error
//
// None of the cores hold state of their own. Caching lives in package memo.
package function
