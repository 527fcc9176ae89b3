package errs_test

import (
	"errors"
	"testing"

	"darkstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "order:123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "order:123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order:123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store unreachable")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "user:7", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: user:7 (cause: store unreachable)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("total")

		assert.Equal(t, "value is invalid: total", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("does not match line items")
		err := errs.NewValueIsInvalidErrorWithCause("total", cause)

		assert.Equal(t, "value is invalid: total (cause: does not match line items)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("cancellationReason")

	assert.Equal(t, "value is required: cancellationReason", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats_bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 99.5, -90.0, 90.0)

		assert.Equal(t, "value is out of range: 99.5 is latitude, min value is -90, max value is 90", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("address", "line one\nline two", 0, 10)

		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("claim", "delivered")

	assert.Equal(t, "invalid state: cannot claim from status delivered", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("order:42", 3)

	assert.Equal(t, "concurrent modification: order:42 (expected version 3)", err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrentModification)
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("missing bearer token")

		assert.Equal(t, "unauthorized: missing bearer token", err.Error())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("token expired")
		err := errs.NewUnauthorizedErrorWithCause("invalid token", cause)

		assert.Equal(t, "unauthorized: invalid token (cause: token expired)", err.Error())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("consumer", "claim orders")

	assert.Equal(t, "forbidden: role consumer may not claim orders", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
	assert.Equal(t, "concurrent modification", errs.ErrConcurrentModification.Error())
	assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
	assert.Equal(t, "forbidden", errs.ErrForbidden.Error())
}
