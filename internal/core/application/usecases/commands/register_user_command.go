package commands

import (
	"errors"
	"strings"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
	"github.com/hmucanze19/algafood-api/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to register a customer account.
// It carries the plaintext password; hashing happens in the handler so the
// hash never round-trips through transport types.
type RegisterUserCommand struct {
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user. The password
// must be at least 6 characters.
func NewRegisterUserCommand(name, email, password string) (RegisterUserCommand, error) {
	if name == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("name")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("email")
	}
	if len(password) < 6 {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("password")
	}

	return RegisterUserCommand{
		name:     name,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the user's display name.
func (c RegisterUserCommand) Name() string { return c.name }

// Email returns the normalized email.
func (c RegisterUserCommand) Email() string { return c.email }

// Password returns the plaintext password.
func (c RegisterUserCommand) Password() string { return c.password }
