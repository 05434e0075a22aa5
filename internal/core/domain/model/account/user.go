// Package account provides the customer account entity.
package account

import (
	"errors"
	"strings"
	"time"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a customer account. The password is stored only as a bcrypt hash,
// produced at the application layer; the entity never sees the plaintext.
type User struct {
	id           int64
	name         string
	email        string
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a user with the given name, email, and password hash.
// The email is lowercased; uniqueness is enforced by the store.
func NewUser(name, email, passwordHash string) (*User, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidError("email")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	return &User{
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		createdAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id int64, name, email, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned id, zero before first persistence.
func (u *User) ID() int64 { return u.id }

// AssignID records the store-assigned id after the first insert.
func (u *User) AssignID(id int64) {
	if u.id == 0 {
		u.id = id
	}
}

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the lowercased email address.
func (u *User) Email() string { return u.email }

// PasswordHash returns the bcrypt hash of the password.
func (u *User) PasswordHash() string { return u.passwordHash }

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }
