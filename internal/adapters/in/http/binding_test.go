package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

func jsonContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindJSON_Success(t *testing.T) {
	var req registerRequest

	err := bindJSON(jsonContext(t, `{"name":"Maria","email":"maria@example.com","password":"secret1"}`), &req)

	require.NoError(t, err)
	assert.Equal(t, "Maria", req.Name)
	assert.Equal(t, "maria@example.com", req.Email)
}

func TestBindJSON_UnknownProperty(t *testing.T) {
	var req registerRequest

	err := bindJSON(jsonContext(t, `{"name":"Maria","nickname":"ma"}`), &req)

	require.Error(t, err)
	var malformed *errs.MalformedRequestError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, errs.MalformedUnknownProperty, malformed.Reason)
	assert.Equal(t, "nickname", malformed.Path)
}

func TestBindJSON_InvalidValueType(t *testing.T) {
	var req placeOrderRequest

	err := bindJSON(jsonContext(t, `{"restaurantId":"seven"}`), &req)

	require.Error(t, err)
	var malformed *errs.MalformedRequestError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, errs.MalformedInvalidValue, malformed.Reason)
	assert.Equal(t, "restaurantId", malformed.Path)
	assert.Equal(t, "int64", malformed.ExpectedType)
}

func TestBindJSON_SyntaxError(t *testing.T) {
	var req registerRequest

	err := bindJSON(jsonContext(t, `{"name": "Maria"`), &req)

	require.Error(t, err)
	var malformed *errs.MalformedRequestError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, errs.MalformedSyntax, malformed.Reason)
}

func TestBindJSON_EmptyBody(t *testing.T) {
	var req registerRequest

	err := bindJSON(jsonContext(t, ""), &req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMalformedRequest))
}

func TestPathParamInt64(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("42")

	value, err := pathParamInt64(c, "id")

	require.NoError(t, err)
	assert.Equal(t, int64(42), value)
}

func TestPathParamInt64_Mismatch(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	_, err := pathParamInt64(c, "id")

	require.Error(t, err)
	var mismatch *errs.ParamTypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "id", mismatch.Name)
	assert.Equal(t, "abc", mismatch.Value)
	assert.Equal(t, "int64", mismatch.RequiredType)
}
