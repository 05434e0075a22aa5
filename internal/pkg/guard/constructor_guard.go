// Package guard implements the constructor guard pattern used by commands,
// queries, and value objects to reject zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor function. Embedding a guard and calling Validate in the owning
// type's Validate method prevents accidental use of zero values.
//
// Example:
//
//	type ConfirmOrderCommand struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewConfirmOrderCommand(code string) (ConfirmOrderCommand, error) {
//	    ...
//	    return ConfirmOrderCommand{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ConfirmOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object went through its constructor,
// otherwise the given validationError (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
