package http

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

func invokeErrorHandler(t *testing.T, err error, logs io.Writer) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewProblemErrorHandler(slog.New(slog.NewTextHandler(logs, nil)))
	handler(err, c)
	return rec
}

func TestProblemErrorHandler_NotAcceptableHasEmptyBody(t *testing.T) {
	rec := invokeErrorHandler(t, errs.NewNotAcceptableError("text/plain"), io.Discard)

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestProblemErrorHandler_EchoNotAcceptableHasEmptyBody(t *testing.T) {
	rec := invokeErrorHandler(t, echo.ErrNotAcceptable, io.Discard)

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestProblemErrorHandler_UnknownErrorIsLoggedButNotLeaked(t *testing.T) {
	var logs bytes.Buffer

	rec := invokeErrorHandler(t, errors.New("pq: relation orders does not exist"), &logs)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation orders")
	assert.Contains(t, logs.String(), "relation orders")
}

func TestProblemErrorHandler_BusinessErrorIsNotLogged(t *testing.T) {
	var logs bytes.Buffer

	rec := invokeErrorHandler(t, errs.NewBusinessError("restaurant 7 is closed and cannot accept orders"), &logs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, logs.String())
}
