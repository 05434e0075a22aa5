// Package errs provides the standardized error types used throughout the
// food-ordering application. It implements a consistent pattern for error
// creation, formatting, and unwrapping.
//
// The package covers two layers of the taxonomy:
//   - Constructor validation errors (ValueIsRequiredError, ValueIsInvalidError)
//     raised while building value objects, commands, and queries
//   - API-facing error kinds (EntityNotFoundError, EntityInUseError,
//     BusinessError, ValidationError, MalformedRequestError,
//     ParamTypeMismatchError, RouteNotFoundError) consumed by the problem
//     translation layer
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrEntityNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Classification therefore always works through errors.Is against the
// sentinels, never through string matching.
package errs
