package commands

import (
	"context"
	"errors"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler handles customer account registration. The
// password is bcrypt-hashed; a duplicate email fails with an entity-in-use
// error.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration command and returns the persisted user.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err = uow.UserRepository().GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, errs.NewEntityInUseError("email " + cmd.Email() + " is already registered")
	case !errors.Is(err, errs.ErrEntityNotFound):
		return nil, err
	}

	user, err := account.NewUser(cmd.Name(), cmd.Email(), string(hash))
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
