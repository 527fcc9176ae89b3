package guard_test

import (
	"errors"
	"testing"

	"darkstore/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage in a domain object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type otp struct {
		code  string
		guard guard.ConstructorGuard
	}

	var errOtpNotConstructed = errors.New("OTP must be created via NewOTP")

	newOtp := func(code string) (otp, error) {
		if len(code) != 6 {
			return otp{}, errors.New("code must be 6 digits")
		}
		return otp{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		o, err := newOtp("483921")

		require.NoError(t, err)
		require.NoError(t, o.guard.Validate(errOtpNotConstructed))
		assert.Equal(t, "483921", o.code)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o otp // zero value

		err := o.guard.Validate(errOtpNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errOtpNotConstructed, err)
	})
}

// TestConstructorGuardConcurrency verifies that a constructed guard is safe for
// concurrent reads.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
