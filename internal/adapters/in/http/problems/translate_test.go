package problems_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmucanze19/algafood-api/internal/adapters/in/http/problems"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

const genericMessageEN = "An unexpected internal error occurred. Try again and, if the problem persists, contact the system administrator."

func TestTranslate_EntityNotFound(t *testing.T) {
	err := errs.NewEntityNotFoundError("Order 42 not found")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Equal(t, problems.TypeResourceNotFound.URI, problem.Type)
	assert.Equal(t, "Resource not found", problem.Title)
	assert.Equal(t, "Order 42 not found", problem.Detail)
	assert.Equal(t, "Order 42 not found", problem.UserMessage)
	assert.False(t, problem.Timestamp.IsZero())
}

func TestTranslate_EntityInUse(t *testing.T) {
	err := errs.NewEntityInUseError("payment method 3 is referenced by restaurants")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, problems.TypeEntityInUse.URI, problem.Type)
	assert.Equal(t, "payment method 3 is referenced by restaurants", problem.Detail)
	assert.Equal(t, "payment method 3 is referenced by restaurants", problem.UserMessage)
}

func TestTranslate_BusinessErrorHidesDetailFromUsers(t *testing.T) {
	err := errs.NewBusinessError("order %s cannot transition from status %s to status %s",
		"abc", "DELIVERED", "CONFIRMED")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, problems.TypeBusinessError.URI, problem.Type)
	assert.Equal(t, "order abc cannot transition from status DELIVERED to status CONFIRMED", problem.Detail)
	assert.Equal(t, genericMessageEN, problem.UserMessage)
}

func TestTranslate_ValidationErrorCarriesSubProblems(t *testing.T) {
	err := errs.NewValidationError(errs.Violation{Name: "nome", Code: "required"})

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, problems.TypeInvalidData.URI, problem.Type)
	assert.Equal(t, "One or more fields are invalid. Fill them in correctly and try again.", problem.Detail)
	require.Len(t, problem.Objects, 1)
	assert.Equal(t, "nome", problem.Objects[0].Name)
	assert.Equal(t, "must not be blank", problem.Objects[0].UserMessage)
}

func TestTranslate_ValidationErrorLocalizedToPortuguese(t *testing.T) {
	err := errs.NewValidationError(errs.Violation{Name: "nome", Code: "required"})

	problem, _ := problems.Translate(err, problems.LocalePT)

	assert.Equal(t, "Um ou mais campos estão inválidos. Faça o preenchimento correto e tente novamente.", problem.Detail)
	require.Len(t, problem.Objects, 1)
	assert.Equal(t, "não deve estar em branco", problem.Objects[0].UserMessage)
}

func TestTranslate_ValueIsRequiredBecomesInvalidData(t *testing.T) {
	err := errs.NewValueIsRequiredError("restaurantId")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, problems.TypeInvalidData.URI, problem.Type)
	require.Len(t, problem.Objects, 1)
	assert.Equal(t, "restaurantId", problem.Objects[0].Name)
	assert.Equal(t, "must not be blank", problem.Objects[0].UserMessage)
}

func TestTranslate_ValueIsInvalidBecomesInvalidData(t *testing.T) {
	err := errs.NewValueIsInvalidError("items.quantity")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, problem.Objects, 1)
	assert.Equal(t, "items.quantity", problem.Objects[0].Name)
	assert.Equal(t, "is invalid", problem.Objects[0].UserMessage)
}

func TestTranslate_MalformedSyntax(t *testing.T) {
	err := errs.NewMalformedSyntaxError(errors.New("unexpected end of JSON input"))

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, problems.TypeIncomprehensibleMessage.URI, problem.Type)
	assert.Equal(t, "The request body is invalid. Check it for syntax errors.", problem.Detail)
	assert.Equal(t, genericMessageEN, problem.UserMessage)
}

func TestTranslate_MalformedUnknownProperty(t *testing.T) {
	err := errs.NewUnknownPropertyError("deliveryAddress.zipcode")

	problem, _ := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, "The property 'deliveryAddress.zipcode' does not exist. Fix or remove it and try again.", problem.Detail)
}

func TestTranslate_MalformedInvalidValue(t *testing.T) {
	err := errs.NewInvalidValueError("items.quantity", "two", "int")

	problem, _ := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, "The property 'items.quantity' received the value 'two', which is of an invalid type. Provide a value compatible with type int.", problem.Detail)
}

func TestTranslate_ParamTypeMismatch(t *testing.T) {
	err := errs.NewParamTypeMismatchError("id", "abc", "int64")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, problems.TypeInvalidParameter.URI, problem.Type)
	assert.Equal(t, "The URL parameter 'id' received the value 'abc', which is of an invalid type. Provide a value compatible with type int64.", problem.Detail)
}

func TestTranslate_RouteNotFound(t *testing.T) {
	err := errs.NewRouteNotFoundError("/no/such/path")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, problems.TypeResourceNotFound.URI, problem.Type)
	assert.Equal(t, "The resource /no/such/path you tried to access does not exist.", problem.Detail)
}

func TestTranslate_UnknownErrorNeverLeaksDetail(t *testing.T) {
	err := errors.New("pq: connection refused on 10.0.0.5:5432")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, problems.TypeSystemError.URI, problem.Type)
	assert.Equal(t, genericMessageEN, problem.Detail)
	assert.Equal(t, genericMessageEN, problem.UserMessage)
	assert.NotContains(t, problem.Detail, "10.0.0.5")
}

func TestTranslate_HTTPErrorWithStringBodyWrapsIntoMinimalProblem(t *testing.T) {
	err := echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials")

	problem, status := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", problem.Title)
	assert.Equal(t, "invalid or missing credentials", problem.UserMessage)
	assert.Empty(t, problem.Type)
}

func TestTranslate_SameErrorTranslatesEquallyExceptTimestamp(t *testing.T) {
	err := errs.NewBusinessError("restaurant 7 is closed and cannot accept orders")

	first, firstStatus := problems.Translate(err, problems.LocaleEN)
	second, secondStatus := problems.Translate(err, problems.LocaleEN)

	assert.Equal(t, firstStatus, secondStatus)
	first.Timestamp = second.Timestamp
	assert.Equal(t, first, second)
}

func TestMatchLocale(t *testing.T) {
	assert.Equal(t, problems.LocaleEN, problems.MatchLocale(""))
	assert.Equal(t, problems.LocaleEN, problems.MatchLocale("en-US,en;q=0.9"))
	assert.Equal(t, problems.LocalePT, problems.MatchLocale("pt-BR,pt;q=0.9,en;q=0.8"))
	assert.Equal(t, problems.LocalePT, problems.MatchLocale("PT"))
	assert.Equal(t, problems.LocaleEN, problems.MatchLocale("fr-FR"))
}
