package order

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"

	"darkstore/internal/pkg/errs"
	"darkstore/internal/pkg/guard"
)

// OTPLength is the fixed length of a one-time code. The code proves physical
// hand-off: it is minted at order creation, communicated to the purchaser, and
// presented by the fulfillment agent to confirm delivery.
const OTPLength = 6

// otpSpace is the number of codes in the fixed-length numeric space,
// [10^(OTPLength-1), 10^OTPLength).
const otpSpace = 900000

// otpFloor is the smallest valid code value.
const otpFloor = 100000

// ErrOTPIsNotConstructed is returned when attempting to use an improperly
// initialized OTP.
var ErrOTPIsNotConstructed = errs.NewValueIsRequiredError(
	"OTP must be created via GenerateOTP or OTPFromString")

// OTP is a fixed-length numeric one-time code. It is an immutable value
// object; the code is never exposed through String() to keep it out of logs -
// use Code() only where the protocol requires the raw value (the creation
// response to the purchaser, and persistence).
type OTP struct {
	code  string
	guard guard.ConstructorGuard
}

// GenerateOTP mints a fresh code drawn uniformly from the fixed-length numeric
// space using a cryptographic randomness source.
func GenerateOTP() (OTP, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpace))
	if err != nil {
		return OTP{}, fmt.Errorf("generating otp: %w", err)
	}

	return OTP{
		code:  fmt.Sprintf("%d", n.Int64()+otpFloor),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// OTPFromString reconstructs an OTP from its stored representation.
// The code must be exactly OTPLength decimal digits.
func OTPFromString(code string) (OTP, error) {
	if len(code) != OTPLength || strings.Trim(code, "0123456789") != "" {
		return OTP{}, errs.NewValueIsInvalidErrorWithCause("otp",
			fmt.Errorf("code must be %d decimal digits", OTPLength))
	}

	return OTP{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the OTP was created through a constructor.
func (o OTP) Validate() error {
	return o.guard.Validate(ErrOTPIsNotConstructed)
}

// Matches compares a submitted code against the stored one in constant time.
func (o OTP) Matches(submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(o.code), []byte(submitted)) == 1
}

// Code returns the raw code value.
func (o OTP) Code() string {
	return o.code
}

// String redacts the code so the OTP never leaks through formatted output.
func (o OTP) String() string {
	return strings.Repeat("*", OTPLength)
}
