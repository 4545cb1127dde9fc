package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"storepanel/internal/pkg/errs"
)

// verificationCodeLength is the fixed number of digits in a pickup code.
const verificationCodeLength = 6

// ErrVerificationCodeIsNotConstructed is returned when validating a
// zero-value VerificationCode.
var ErrVerificationCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"VerificationCode must be created via NewVerificationCode or GenerateVerificationCode")

// VerificationCode is the 6-digit shared secret a customer presents to
// confirm physical pickup of an order. It is assigned at order creation
// and never changes afterwards.
//
// Matching is exact string equality; the code is stored in clear, which is
// deliberate for this low-stakes internal tool.
type VerificationCode struct {
	value string
}

// NewVerificationCode creates a VerificationCode from an existing string.
// The value must consist of exactly 6 ASCII digits.
func NewVerificationCode(value string) (VerificationCode, error) {
	if value == "" {
		return VerificationCode{}, errs.NewValueIsRequiredError("verificationCode")
	}
	if len(value) != verificationCodeLength {
		return VerificationCode{}, errs.NewValueIsInvalidErrorWithCause("verificationCode",
			fmt.Errorf("%q is not %d characters long", value, verificationCodeLength))
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return VerificationCode{}, errs.NewValueIsInvalidErrorWithCause("verificationCode",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}
	return VerificationCode{value: value}, nil
}

// GenerateVerificationCode produces a random code in [100000, 999999].
// The first digit is never zero, matching the original code generator.
func GenerateVerificationCode() VerificationCode {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand reading from the OS entropy source does not fail in
		// practice; a panic here means the platform is broken.
		panic(fmt.Sprintf("verification code generation failed: %v", err))
	}
	return VerificationCode{value: fmt.Sprintf("%06d", n.Int64()+100000)}
}

// String returns the 6-digit code.
func (c VerificationCode) String() string {
	return c.value
}

// Matches compares a submitted code against this one using exact string
// equality. No normalization is applied.
func (c VerificationCode) Matches(submitted string) bool {
	return c.value != "" && c.value == submitted
}

// IsEqual reports whether both codes carry the same digits.
func (c VerificationCode) IsEqual(other VerificationCode) bool {
	return c.value == other.value
}

// Validate returns ErrVerificationCodeIsNotConstructed for the zero value.
func (c VerificationCode) Validate() error {
	if c.value == "" {
		return ErrVerificationCodeIsNotConstructed
	}
	return nil
}
