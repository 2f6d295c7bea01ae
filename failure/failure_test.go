package failure_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/on-the-ground/funcore/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNest_WrapsCheckedError(t *testing.T) {
	cause := fmt.Errorf("read config: %w", io.ErrUnexpectedEOF)

	err := failure.Nest(cause)

	var nested *failure.NestedError
	require.ErrorAs(t, err, &nested)
	assert.Equal(t, cause.Error(), nested.Error())
	assert.Same(t, cause, errors.Unwrap(nested))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.True(t, failure.IsUnchecked(err))
}

func TestNest_KeepsUncheckedError(t *testing.T) {
	unchecked := &failure.PanicError{Value: 7}
	assert.Same(t, unchecked, failure.Nest(unchecked))

	once := failure.Nest(io.EOF)
	assert.Same(t, once, failure.Nest(once)) // never nested twice
}

func TestNest_Nil(t *testing.T) {
	assert.NoError(t, failure.Nest(nil))
}

func TestIsUnchecked(t *testing.T) {
	assert.False(t, failure.IsUnchecked(io.EOF))
	assert.False(t, failure.IsUnchecked(nil))

	var runtimeErr error
	func() {
		defer func() { runtimeErr = failure.Catch(recover()) }()
		var m map[string]int
		m["boom"] = 1
	}()
	require.Error(t, runtimeErr)
	assert.True(t, failure.IsUnchecked(runtimeErr))
}

func TestThrowAndCatch_PreserveIdentity(t *testing.T) {
	sentinel := errors.New("checked")

	var caught error
	func() {
		defer func() { caught = failure.Catch(recover()) }()
		failure.Throw(sentinel)
	}()

	assert.Same(t, sentinel, caught)
}

func TestCatch(t *testing.T) {
	assert.NoError(t, failure.Catch(nil))

	err := failure.Catch("plain string")
	var pe *failure.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "plain string", pe.Value)
	assert.Equal(t, "panic: plain string", err.Error())
}

func TestRecoveryError(t *testing.T) {
	err := error(&failure.RecoveryError{Cause: io.ErrClosedPipe})

	assert.ErrorIs(t, err, failure.ErrNilRecovery)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Contains(t, err.Error(), "*errors.errorString")
	assert.Contains(t, err.Error(), io.ErrClosedPipe.Error())
}
