package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hmucanze19/algafood-api/internal/adapters/in/http/problems"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// NewProblemErrorHandler builds the echo error handler that serves every
// failure as a problem document. The locale comes from Accept-Language.
// Unrecognized errors are logged in full here and reach the client only as
// the generic system-error problem.
func NewProblemErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.Is(err, errs.ErrNotAcceptable) ||
			(errors.As(err, &httpErr) && httpErr.Code == http.StatusNotAcceptable) {
			if writeErr := c.NoContent(http.StatusNotAcceptable); writeErr != nil {
				logger.Error("failed to write error response", "error", writeErr)
			}
			return
		}

		// Router misses surface as echo's own 404.
		if errors.Is(err, echo.ErrNotFound) {
			err = errs.NewRouteNotFoundError(c.Request().URL.Path)
		}

		locale := problems.MatchLocale(c.Request().Header.Get("Accept-Language"))
		problem, status := problems.Translate(err, locale)

		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, problem)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
