package function

// Pred1 is a boolean-valued Func1.
type Pred1[A any] func(A) bool

func (p Pred1[A]) Apply(a A) bool { return p(a) }

// Negate returns the logical complement of p.
func (p Pred1[A]) Negate() Pred1[A] {
	return func(a A) bool { return !p(a) }
}

// And returns p && other. other is not applied when p yields false.
func (p Pred1[A]) And(other Function1[A, bool]) Pred1[A] {
	return func(a A) bool { return p(a) && other.Apply(a) }
}

// Or returns p || other. other is not applied when p yields true.
func (p Pred1[A]) Or(other Function1[A, bool]) Pred1[A] {
	return func(a A) bool { return p(a) || other.Apply(a) }
}

// Xor applies both predicates and returns true when exactly one holds.
func (p Pred1[A]) Xor(other Function1[A, bool]) Pred1[A] {
	return func(a A) bool { return p(a) != other.Apply(a) }
}

// Pred2 is a boolean-valued Func2.
type Pred2[A, B any] func(A, B) bool

func (p Pred2[A, B]) Apply(a A, b B) bool { return p(a, b) }

func (p Pred2[A, B]) Negate() Pred2[A, B] {
	return func(a A, b B) bool { return !p(a, b) }
}

func (p Pred2[A, B]) And(other Function2[A, B, bool]) Pred2[A, B] {
	return func(a A, b B) bool { return p(a, b) && other.Apply(a, b) }
}

func (p Pred2[A, B]) Or(other Function2[A, B, bool]) Pred2[A, B] {
	return func(a A, b B) bool { return p(a, b) || other.Apply(a, b) }
}

func (p Pred2[A, B]) Xor(other Function2[A, B, bool]) Pred2[A, B] {
	return func(a A, b B) bool { return p(a, b) != other.Apply(a, b) }
}

func (p Pred2[A, B]) Reversed() Pred2[B, A] {
	return func(b B, a A) bool { return p(a, b) }
}

// Pred3 is a boolean-valued Func3.
type Pred3[A, B, C any] func(A, B, C) bool

func (p Pred3[A, B, C]) Apply(a A, b B, c C) bool { return p(a, b, c) }

func (p Pred3[A, B, C]) Negate() Pred3[A, B, C] {
	return func(a A, b B, c C) bool { return !p(a, b, c) }
}

func (p Pred3[A, B, C]) And(other Function3[A, B, C, bool]) Pred3[A, B, C] {
	return func(a A, b B, c C) bool { return p(a, b, c) && other.Apply(a, b, c) }
}

func (p Pred3[A, B, C]) Or(other Function3[A, B, C, bool]) Pred3[A, B, C] {
	return func(a A, b B, c C) bool { return p(a, b, c) || other.Apply(a, b, c) }
}

func (p Pred3[A, B, C]) Xor(other Function3[A, B, C, bool]) Pred3[A, B, C] {
	return func(a A, b B, c C) bool { return p(a, b, c) != other.Apply(a, b, c) }
}

func (p Pred3[A, B, C]) Reversed() Pred3[C, B, A] {
	return func(c C, b B, a A) bool { return p(a, b, c) }
}

// ThrowingPred1 is a boolean-valued ThrowingFunc1. In every combinator an error from
// the left operand is returned before the right operand is consulted.
type ThrowingPred1[A any] func(A) (bool, error)

func (p ThrowingPred1[A]) Apply(a A) (bool, error) { return p(a) }

func (p ThrowingPred1[A]) Negate() ThrowingPred1[A] {
	return func(a A) (bool, error) {
		ok, err := p(a)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

func (p ThrowingPred1[A]) And(other ThrowingFunction1[A, bool]) ThrowingPred1[A] {
	return func(a A) (bool, error) {
		ok, err := p(a)
		if err != nil || !ok {
			return false, err
		}
		return other.Apply(a)
	}
}

func (p ThrowingPred1[A]) Or(other ThrowingFunction1[A, bool]) ThrowingPred1[A] {
	return func(a A) (bool, error) {
		ok, err := p(a)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return other.Apply(a)
	}
}

func (p ThrowingPred1[A]) Xor(other ThrowingFunction1[A, bool]) ThrowingPred1[A] {
	return func(a A) (bool, error) {
		left, err := p(a)
		if err != nil {
			return false, err
		}
		right, err := other.Apply(a)
		if err != nil {
			return false, err
		}
		return left != right, nil
	}
}

// ThrowingPred2 is a boolean-valued ThrowingFunc2.
type ThrowingPred2[A, B any] func(A, B) (bool, error)

func (p ThrowingPred2[A, B]) Apply(a A, b B) (bool, error) { return p(a, b) }

func (p ThrowingPred2[A, B]) Negate() ThrowingPred2[A, B] {
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

func (p ThrowingPred2[A, B]) And(other ThrowingFunction2[A, B, bool]) ThrowingPred2[A, B] {
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil || !ok {
			return false, err
		}
		return other.Apply(a, b)
	}
}

func (p ThrowingPred2[A, B]) Or(other ThrowingFunction2[A, B, bool]) ThrowingPred2[A, B] {
	return func(a A, b B) (bool, error) {
		ok, err := p(a, b)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return other.Apply(a, b)
	}
}

func (p ThrowingPred2[A, B]) Xor(other ThrowingFunction2[A, B, bool]) ThrowingPred2[A, B] {
	return func(a A, b B) (bool, error) {
		left, err := p(a, b)
		if err != nil {
			return false, err
		}
		right, err := other.Apply(a, b)
		if err != nil {
			return false, err
		}
		return left != right, nil
	}
}

func (p ThrowingPred2[A, B]) Reversed() ThrowingPred2[B, A] {
	return func(b B, a A) (bool, error) { return p(a, b) }
}

// ThrowingPred3 is a boolean-valued ThrowingFunc3.
type ThrowingPred3[A, B, C any] func(A, B, C) (bool, error)

func (p ThrowingPred3[A, B, C]) Apply(a A, b B, c C) (bool, error) { return p(a, b, c) }

func (p ThrowingPred3[A, B, C]) Negate() ThrowingPred3[A, B, C] {
	return func(a A, b B, c C) (bool, error) {
		ok, err := p(a, b, c)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

func (p ThrowingPred3[A, B, C]) And(other ThrowingFunction3[A, B, C, bool]) ThrowingPred3[A, B, C] {
	return func(a A, b B, c C) (bool, error) {
		ok, err := p(a, b, c)
		if err != nil || !ok {
			return false, err
		}
		return other.Apply(a, b, c)
	}
}

func (p ThrowingPred3[A, B, C]) Or(other ThrowingFunction3[A, B, C, bool]) ThrowingPred3[A, B, C] {
	return func(a A, b B, c C) (bool, error) {
		ok, err := p(a, b, c)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return other.Apply(a, b, c)
	}
}

func (p ThrowingPred3[A, B, C]) Xor(other ThrowingFunction3[A, B, C, bool]) ThrowingPred3[A, B, C] {
	return func(a A, b B, c C) (bool, error) {
		left, err := p(a, b, c)
		if err != nil {
			return false, err
		}
		right, err := other.Apply(a, b, c)
		if err != nil {
			return false, err
		}
		return left != right, nil
	}
}

func (p ThrowingPred3[A, B, C]) Reversed() ThrowingPred3[C, B, A] {
	return func(c C, b B, a A) (bool, error) { return p(a, b, c) }
}
