package function_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/funcore/function"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func always(v bool) function.Pred1[int] {
	return func(int) bool { return v }
}

func mustNotRun(t *testing.T) function.Pred1[int] {
	return func(int) bool {
		t.Fatal("right operand must not be applied")
		return false
	}
}

func TestPred1_ShortCircuit(t *testing.T) {
	assert.True(t, always(true).Or(mustNotRun(t)).Apply(1))
	assert.False(t, always(false).And(mustNotRun(t)).Apply(1))
}

func TestPred1_Table(t *testing.T) {
	for _, tc := range []struct {
		left, right     bool
		and, or, xor, n bool
	}{
		{left: false, right: false, and: false, or: false, xor: false, n: true},
		{left: false, right: true, and: false, or: true, xor: true, n: true},
		{left: true, right: false, and: false, or: true, xor: true, n: false},
		{left: true, right: true, and: true, or: true, xor: false, n: false},
	} {
		p, q := always(tc.left), always(tc.right)
		assert.Equal(t, tc.and, p.And(q).Apply(0), "%v and %v", tc.left, tc.right)
		assert.Equal(t, tc.or, p.Or(q).Apply(0), "%v or %v", tc.left, tc.right)
		assert.Equal(t, tc.xor, p.Xor(q).Apply(0), "%v xor %v", tc.left, tc.right)
		assert.Equal(t, tc.n, p.Negate().Apply(0), "not %v", tc.left)
	}
}

func TestPred1_XorAppliesBoth(t *testing.T) {
	calls := 0
	counting := function.Pred1[int](func(int) bool {
		calls++
		return true
	})

	assert.False(t, counting.Xor(counting).Apply(0))
	assert.Equal(t, 2, calls)
}

func TestPred2_Combinators(t *testing.T) {
	less := function.Pred2[int, int](func(a, b int) bool { return a < b })
	equal := function.Pred2[int, int](func(a, b int) bool { return a == b })

	lessOrEqual := less.Or(equal)
	assert.True(t, lessOrEqual.Apply(1, 1))
	assert.True(t, lessOrEqual.Apply(1, 2))
	assert.False(t, lessOrEqual.Apply(2, 1))

	assert.True(t, less.Reversed().Apply(2, 1))
	assert.False(t, less.And(equal).Apply(1, 2))
	assert.True(t, less.Negate().Xor(equal).Apply(3, 1))
}

func TestPred3_Combinators(t *testing.T) {
	ordered := function.Pred3[int, int, int](func(a, b, c int) bool { return a <= b && b <= c })

	assert.True(t, ordered.Apply(1, 2, 3))
	assert.True(t, ordered.Reversed().Apply(3, 2, 1))
	assert.False(t, ordered.Negate().Apply(1, 2, 3))
	assert.True(t, ordered.Or(ordered.Reversed()).Apply(3, 2, 1))
	assert.False(t, ordered.And(ordered.Reversed()).Apply(1, 2, 3))
	assert.True(t, ordered.Xor(ordered.Negate()).Apply(5, 0, 9))
}

var errBoom = errors.New("boom")

func TestThrowingPred1_ErrorSkipsRightOperand(t *testing.T) {
	failing := function.ThrowingPred1[int](func(int) (bool, error) { return false, errBoom })
	untouched := function.ThrowingPred1[int](func(int) (bool, error) {
		t.Fatal("right operand must not be applied")
		return false, nil
	})

	for name, p := range map[string]function.ThrowingPred1[int]{
		"and":    failing.And(untouched),
		"or":     failing.Or(untouched),
		"xor":    failing.Xor(untouched),
		"negate": failing.Negate(),
	} {
		_, err := p.Apply(1)
		assert.ErrorIs(t, err, errBoom, name)
	}
}

func TestThrowingPred1_ShortCircuit(t *testing.T) {
	yes := function.ThrowingPred1[int](func(int) (bool, error) { return true, nil })
	no := yes.Negate()
	untouched := function.ThrowingPred1[int](func(int) (bool, error) {
		t.Fatal("right operand must not be applied")
		return false, nil
	})

	ok, err := yes.Or(untouched).Apply(0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = no.And(untouched).Apply(0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = yes.Xor(no).Apply(0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestThrowingPred2And3(t *testing.T) {
	positive := function.ThrowingPred2[int, int](func(a, b int) (bool, error) {
		if b == 0 {
			return false, errBoom
		}
		return a/b > 0, nil
	})

	ok, err := positive.And(positive.Negate().Negate()).Apply(4, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = positive.Or(positive).Apply(4, 0)
	assert.ErrorIs(t, err, errBoom)

	ok, err = positive.Xor(positive).Apply(4, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	sum := function.ThrowingPred3[int, int, int](func(a, b, c int) (bool, error) {
		return a+b == c, nil
	})
	ok, err = sum.Negate().Or(sum).And(sum).Apply(1, 2, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sum.Xor(sum.Negate()).Apply(1, 1, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestThrowingPred_Reversed(t *testing.T) {
	hasPrefix := function.ThrowingPred2[string, string](func(s, prefix string) (bool, error) {
		if prefix == "" {
			return false, errBoom
		}
		return strings.HasPrefix(s, prefix), nil
	})

	ok, err := hasPrefix.Reversed().Apply("go", "gopher")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = hasPrefix.Reversed().Apply("", "gopher")
	assert.ErrorIs(t, err, errBoom)

	between := function.ThrowingPred3[int, string, float64](func(lo int, _ string, hi float64) (bool, error) {
		return float64(lo) < hi, nil
	})
	ok, err = between.Reversed().Apply(2.5, "x", 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = between.Reversed().Reversed().Apply(3, "x", 2.5)
	require.NoError(t, err)
	assert.False(t, ok)
}
