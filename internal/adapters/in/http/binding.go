package http

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// bindJSON decodes the request body into dst, rejecting unknown properties.
// Decoding failures are converted into tagged malformed-request errors here,
// at the parsing boundary, so the translation layer receives already
// extracted property paths and type names instead of raw decoder errors.
func bindJSON(c echo.Context, dst any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.NewInvalidValueError(typeErr.Field, typeErr.Value, typeErr.Type.String())
	}

	// The decoder reports unknown fields only through the error text.
	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return errs.NewUnknownPropertyError(strings.Trim(field, `"`))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.NewMalformedSyntaxError(err)
	}

	return errs.NewMalformedSyntaxError(err)
}

// pathParamInt64 parses a numeric path parameter, reporting a type mismatch
// with the parameter name and the received value when parsing fails.
func pathParamInt64(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewParamTypeMismatchError(name, raw, "int64")
	}
	return value, nil
}
