package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy. Each concrete error type
// unwraps to exactly one of these, so callers can classify errors with errors.Is
// without inspecting concrete types.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrEntityNotFound    = errors.New("entity not found")
	ErrEntityInUse       = errors.New("entity in use")
	ErrBusinessRule      = errors.New("business rule violated")
	ErrValidationFailed  = errors.New("validation failed")
	ErrMalformedRequest  = errors.New("malformed request body")
	ErrParamTypeMismatch = errors.New("parameter type mismatch")
	ErrRouteNotFound     = errors.New("route not found")
	ErrNotAcceptable     = errors.New("representation not acceptable")
)

// sanitize collapses newlines so multi-line causes cannot break log lines
// or structured error output.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ValueIsRequiredError reports a missing required value, named by ParamName.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that fails a domain constraint.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// EntityNotFoundError reports that a requested entity does not exist.
// Message is safe to expose to API clients.
type EntityNotFoundError struct {
	Message string
	Cause   error
}

// NewEntityNotFoundError creates an EntityNotFoundError with a client-safe message.
func NewEntityNotFoundError(message string) *EntityNotFoundError {
	return &EntityNotFoundError{Message: message}
}

// NewEntityNotFoundErrorWithCause creates an EntityNotFoundError wrapping a cause.
func NewEntityNotFoundErrorWithCause(message string, cause error) *EntityNotFoundError {
	return &EntityNotFoundError{Message: message, Cause: cause}
}

func (e *EntityNotFoundError) Error() string {
	return withCause(sanitize(e.Message), e.Cause)
}

func (e *EntityNotFoundError) Unwrap() error {
	return ErrEntityNotFound
}

// EntityInUseError reports that an entity cannot be removed or changed because
// other records still reference it.
type EntityInUseError struct {
	Message string
}

// NewEntityInUseError creates an EntityInUseError with a client-safe message.
func NewEntityInUseError(message string) *EntityInUseError {
	return &EntityInUseError{Message: message}
}

func (e *EntityInUseError) Error() string {
	return sanitize(e.Message)
}

func (e *EntityInUseError) Unwrap() error {
	return ErrEntityInUse
}

// BusinessError reports a violated business rule, such as an illegal order
// status transition. The message is precise and intended for logs and API
// clients, not necessarily for end users.
type BusinessError struct {
	Message string
	Cause   error
}

// NewBusinessError creates a BusinessError from a formatted message.
func NewBusinessError(format string, args ...any) *BusinessError {
	return &BusinessError{Message: fmt.Sprintf(format, args...)}
}

// NewBusinessErrorWithCause creates a BusinessError wrapping a cause.
func NewBusinessErrorWithCause(message string, cause error) *BusinessError {
	return &BusinessError{Message: message, Cause: cause}
}

func (e *BusinessError) Error() string {
	return withCause(sanitize(e.Message), e.Cause)
}

func (e *BusinessError) Unwrap() error {
	return ErrBusinessRule
}

// Violation is a single rejected field or object within a ValidationError.
// Name is the field name for field-scoped violations, otherwise the logical
// object name. Code is a message key resolved to a localized text by the
// message resolver at the API boundary.
type Violation struct {
	Name string
	Code string
}

// ValidationError reports one or more rejected input fields.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError creates a ValidationError from the given violations.
func NewValidationError(violations ...Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		names = append(names, v.Name)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// MalformedReason distinguishes the ways a request body can be unreadable.
type MalformedReason int

const (
	// MalformedSyntax indicates the body is not syntactically valid JSON.
	MalformedSyntax MalformedReason = iota

	// MalformedUnknownProperty indicates the body names a property that does
	// not exist on the target representation.
	MalformedUnknownProperty

	// MalformedInvalidValue indicates a property received a value of an
	// incompatible type.
	MalformedInvalidValue
)

// MalformedRequestError is the tagged variant produced at the JSON parsing
// boundary. The structured fields are extracted once, when the decoding error
// occurs, so the translation layer never needs to re-inspect parser internals.
type MalformedRequestError struct {
	Reason       MalformedReason
	Path         string
	Value        string
	ExpectedType string
	Cause        error
}

// NewMalformedSyntaxError creates a MalformedRequestError for unparseable bodies.
func NewMalformedSyntaxError(cause error) *MalformedRequestError {
	return &MalformedRequestError{Reason: MalformedSyntax, Cause: cause}
}

// NewUnknownPropertyError creates a MalformedRequestError naming an unknown property path.
func NewUnknownPropertyError(path string) *MalformedRequestError {
	return &MalformedRequestError{Reason: MalformedUnknownProperty, Path: path}
}

// NewInvalidValueError creates a MalformedRequestError naming the offending
// property path, the received value and the expected type.
func NewInvalidValueError(path, value, expectedType string) *MalformedRequestError {
	return &MalformedRequestError{
		Reason:       MalformedInvalidValue,
		Path:         path,
		Value:        value,
		ExpectedType: expectedType,
	}
}

func (e *MalformedRequestError) Error() string {
	switch e.Reason {
	case MalformedUnknownProperty:
		return fmt.Sprintf("%s: unknown property '%s'", ErrMalformedRequest, sanitize(e.Path))
	case MalformedInvalidValue:
		return fmt.Sprintf("%s: property '%s' received '%s', expected type %s",
			ErrMalformedRequest, sanitize(e.Path), sanitize(e.Value), e.ExpectedType)
	default:
		return withCause(ErrMalformedRequest.Error(), e.Cause)
	}
}

func (e *MalformedRequestError) Unwrap() error {
	return ErrMalformedRequest
}

// ParamTypeMismatchError reports a URL parameter whose value cannot be
// converted to the required type.
type ParamTypeMismatchError struct {
	Name         string
	Value        string
	RequiredType string
}

// NewParamTypeMismatchError creates a ParamTypeMismatchError for the named parameter.
func NewParamTypeMismatchError(name, value, requiredType string) *ParamTypeMismatchError {
	return &ParamTypeMismatchError{Name: name, Value: value, RequiredType: requiredType}
}

func (e *ParamTypeMismatchError) Error() string {
	return fmt.Sprintf("%s: parameter '%s' received '%s', required type %s",
		ErrParamTypeMismatch, sanitize(e.Name), sanitize(e.Value), e.RequiredType)
}

func (e *ParamTypeMismatchError) Unwrap() error {
	return ErrParamTypeMismatch
}

// NotAcceptableError reports that no representation of the resource is
// compatible with the request's Accept header.
type NotAcceptableError struct {
	Accept string
}

// NewNotAcceptableError creates a NotAcceptableError for the given Accept header value.
func NewNotAcceptableError(accept string) *NotAcceptableError {
	return &NotAcceptableError{Accept: accept}
}

func (e *NotAcceptableError) Error() string {
	return fmt.Sprintf("%s: accept '%s'", ErrNotAcceptable, sanitize(e.Accept))
}

func (e *NotAcceptableError) Unwrap() error {
	return ErrNotAcceptable
}

// RouteNotFoundError reports a request for a path no handler serves.
type RouteNotFoundError struct {
	Path string
}

// NewRouteNotFoundError creates a RouteNotFoundError for the given request path.
func NewRouteNotFoundError(path string) *RouteNotFoundError {
	return &RouteNotFoundError{Path: path}
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRouteNotFound, sanitize(e.Path))
}

func (e *RouteNotFoundError) Unwrap() error {
	return ErrRouteNotFound
}
