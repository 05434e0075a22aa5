package errs_test

import (
	"errors"
	"testing"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})

	t.Run("sanitizes newlines in cause", func(t *testing.T) {
		cause := errors.New("hello\nworld")
		err := errs.NewValueIsInvalidErrorWithCause("text", cause)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestEntityNotFoundError(t *testing.T) {
	err := errs.NewEntityNotFoundError("Order 42 not found")

	assert.Equal(t, "Order 42 not found", err.Error())
	assert.Equal(t, errs.ErrEntityNotFound, err.Unwrap())

	withCause := errs.NewEntityNotFoundErrorWithCause("Order 42 not found", errors.New("record not found"))
	assert.Equal(t, "Order 42 not found (cause: record not found)", withCause.Error())
}

func TestEntityInUseError(t *testing.T) {
	err := errs.NewEntityInUseError("Payment method 3 is in use and cannot be removed")

	assert.Equal(t, "Payment method 3 is in use and cannot be removed", err.Error())
	assert.Equal(t, errs.ErrEntityInUse, err.Unwrap())
}

func TestBusinessError(t *testing.T) {
	err := errs.NewBusinessError("order %s cannot transition from status %s to status %s",
		"abc", "DELIVERED", "CONFIRMED")

	assert.Equal(t, "order abc cannot transition from status DELIVERED to status CONFIRMED", err.Error())
	assert.Equal(t, errs.ErrBusinessRule, err.Unwrap())
}

func TestValidationError(t *testing.T) {
	err := errs.NewValidationError(
		errs.Violation{Name: "name", Code: "required"},
		errs.Violation{Name: "shippingFee", Code: "positiveOrZero"},
	)

	assert.Len(t, err.Violations, 2)
	assert.Equal(t, "validation failed: name, shippingFee", err.Error())
	assert.Equal(t, errs.ErrValidationFailed, err.Unwrap())
}

func TestMalformedRequestError(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		err := errs.NewMalformedSyntaxError(errors.New("unexpected end of JSON input"))

		assert.Equal(t, errs.MalformedSyntax, err.Reason)
		assert.Equal(t, "malformed request body (cause: unexpected end of JSON input)", err.Error())
	})

	t.Run("unknown property", func(t *testing.T) {
		err := errs.NewUnknownPropertyError("deliveryAddress.zip")

		assert.Equal(t, errs.MalformedUnknownProperty, err.Reason)
		assert.Equal(t, "malformed request body: unknown property 'deliveryAddress.zip'", err.Error())
	})

	t.Run("invalid value", func(t *testing.T) {
		err := errs.NewInvalidValueError("items.quantity", "string", "int")

		assert.Equal(t, errs.MalformedInvalidValue, err.Reason)
		assert.Equal(t,
			"malformed request body: property 'items.quantity' received 'string', expected type int",
			err.Error())
	})
}

func TestParamTypeMismatchError(t *testing.T) {
	err := errs.NewParamTypeMismatchError("restaurantId", "abc", "int64")

	assert.Equal(t,
		"parameter type mismatch: parameter 'restaurantId' received 'abc', required type int64",
		err.Error())
	assert.Equal(t, errs.ErrParamTypeMismatch, err.Unwrap())
}

func TestNotAcceptableError(t *testing.T) {
	err := errs.NewNotAcceptableError("text/plain")

	assert.Equal(t, "representation not acceptable: accept 'text/plain'", err.Error())
	assert.Equal(t, errs.ErrNotAcceptable, err.Unwrap())
}

func TestRouteNotFoundError(t *testing.T) {
	err := errs.NewRouteNotFoundError("/no/such/path")

	assert.Equal(t, "route not found: /no/such/path", err.Error())
	assert.Equal(t, errs.ErrRouteNotFound, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewEntityNotFoundError("x"), errs.ErrEntityNotFound)
	require.ErrorIs(t, errs.NewEntityInUseError("x"), errs.ErrEntityInUse)
	require.ErrorIs(t, errs.NewBusinessError("x"), errs.ErrBusinessRule)
	require.ErrorIs(t, errs.NewValidationError(), errs.ErrValidationFailed)
	require.ErrorIs(t, errs.NewMalformedSyntaxError(nil), errs.ErrMalformedRequest)
	require.ErrorIs(t, errs.NewParamTypeMismatchError("a", "b", "c"), errs.ErrParamTypeMismatch)
	require.ErrorIs(t, errs.NewNotAcceptableError("text/plain"), errs.ErrNotAcceptable)
	require.ErrorIs(t, errs.NewRouteNotFoundError("/x"), errs.ErrRouteNotFound)
	require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
}
