package errs_test

import (
	"errors"
	"testing"

	"storepanel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "ORDER-001")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORDER-001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ORDER-001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "ORDER-001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: ORDER-001 (cause: connection refused)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("verificationCode")

		assert.Equal(t, "value is invalid: verificationCode", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("must be 6 digits")
		err := errs.NewValueIsInvalidErrorWithCause("verificationCode", cause)

		assert.Equal(t, "value is invalid: verificationCode (cause: must be 6 digits)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Equal(t, 7, err.Value)
		assert.Equal(t, "value is invalid: 7 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("collapses newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("productName")

	assert.Equal(t, "value is required: productName", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	cause := errors.New("missing field")
	withCause := errs.NewValueIsRequiredErrorWithCause("productName", cause)
	assert.Equal(t, "value is required: productName (cause: missing field)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("code"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 9, 1, 5), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
}
