package problems

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// Translate maps an application error to a Problem and the HTTP status it
// should be served with. Dispatch is by error kind, highest specificity
// first; anything unrecognized becomes a 500 system-error whose body carries
// only the generic safe message, never the original error text.
func Translate(err error, locale string) (Problem, int) {
	var notFound *errs.EntityNotFoundError
	if errors.As(err, &notFound) {
		problem := newProblem(http.StatusNotFound, TypeResourceNotFound, notFound.Message)
		problem.UserMessage = notFound.Message
		return problem, http.StatusNotFound
	}

	var inUse *errs.EntityInUseError
	if errors.As(err, &inUse) {
		problem := newProblem(http.StatusConflict, TypeEntityInUse, inUse.Message)
		problem.UserMessage = inUse.Message
		return problem, http.StatusConflict
	}

	var business *errs.BusinessError
	if errors.As(err, &business) {
		problem := newProblem(http.StatusBadRequest, TypeBusinessError, business.Message)
		problem.UserMessage = message(locale, msgGenericError)
		return problem, http.StatusBadRequest
	}

	var validation *errs.ValidationError
	if errors.As(err, &validation) {
		objects := make([]Object, 0, len(validation.Violations))
		for _, violation := range validation.Violations {
			objects = append(objects, Object{
				Name:        violation.Name,
				UserMessage: ResolveViolation(locale, violation.Code),
			})
		}
		return invalidDataProblem(locale, objects), http.StatusBadRequest
	}

	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) {
		objects := []Object{{
			Name:        required.ParamName,
			UserMessage: ResolveViolation(locale, "required"),
		}}
		return invalidDataProblem(locale, objects), http.StatusBadRequest
	}

	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) {
		objects := []Object{{
			Name:        invalid.ParamName,
			UserMessage: ResolveViolation(locale, "invalid"),
		}}
		return invalidDataProblem(locale, objects), http.StatusBadRequest
	}

	var malformed *errs.MalformedRequestError
	if errors.As(err, &malformed) {
		var detail string
		switch malformed.Reason {
		case errs.MalformedUnknownProperty:
			detail = message(locale, msgBodyUnknownProperty, malformed.Path)
		case errs.MalformedInvalidValue:
			detail = message(locale, msgBodyInvalidValue,
				malformed.Path, malformed.Value, malformed.ExpectedType)
		default:
			detail = message(locale, msgBodySyntax)
		}
		problem := newProblem(http.StatusBadRequest, TypeIncomprehensibleMessage, detail)
		problem.UserMessage = message(locale, msgGenericError)
		return problem, http.StatusBadRequest
	}

	var mismatch *errs.ParamTypeMismatchError
	if errors.As(err, &mismatch) {
		detail := message(locale, msgInvalidURLParameter,
			mismatch.Name, mismatch.Value, mismatch.RequiredType)
		problem := newProblem(http.StatusBadRequest, TypeInvalidParameter, detail)
		problem.UserMessage = message(locale, msgGenericError)
		return problem, http.StatusBadRequest
	}

	var route *errs.RouteNotFoundError
	if errors.As(err, &route) {
		detail := message(locale, msgRouteNotFound, route.Path)
		problem := newProblem(http.StatusNotFound, TypeResourceNotFound, detail)
		problem.UserMessage = message(locale, msgGenericError)
		return problem, http.StatusNotFound
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return wrapHTTPError(httpErr, locale), httpErr.Code
	}

	problem := newProblem(http.StatusInternalServerError, TypeSystemError,
		message(locale, msgGenericError))
	problem.UserMessage = message(locale, msgGenericError)
	return problem, http.StatusInternalServerError
}

func invalidDataProblem(locale string, objects []Object) Problem {
	problem := newProblem(http.StatusBadRequest, TypeInvalidData,
		message(locale, msgInvalidDataDetail))
	problem.UserMessage = message(locale, msgInvalidDataDetail)
	problem.Objects = objects
	return problem
}

// wrapHTTPError turns a framework error with a bare-string body into a
// minimal Problem: status, standard reason phrase as title, and the string
// as the user-facing message. Non-string bodies keep only status and title.
func wrapHTTPError(httpErr *echo.HTTPError, locale string) Problem {
	problem := Problem{
		Status:    httpErr.Code,
		Title:     http.StatusText(httpErr.Code),
		Timestamp: time.Now(),
	}
	if text, ok := httpErr.Message.(string); ok {
		problem.UserMessage = text
	}
	if httpErr.Code >= http.StatusInternalServerError {
		problem.Type = TypeSystemError.URI
		problem.Title = TypeSystemError.Title
		problem.UserMessage = message(locale, msgGenericError)
	}
	return problem
}
