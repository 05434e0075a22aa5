package commands_test

import (
	"testing"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/commands"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/account"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewRegisterUserCommand_NormalizesEmail(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand("Maria", "  Maria@Example.COM ", "secret1")
	require.NoError(t, err)
	require.Equal(t, "maria@example.com", cmd.Email())
}

func TestNewRegisterUserCommand_RejectsShortPassword(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("Maria", "maria@example.com", "short")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("Maria", "maria@example.com", "secret1")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	notFound := errs.NewEntityNotFoundError("User maria@example.com not found")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "maria@example.com").Return(nil, notFound).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	user, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "maria@example.com", user.Email())
	// The stored hash verifies against the original password.
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte("secret1")))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand("Maria", "maria@example.com", "secret1")
	require.NoError(t, err)

	existing := account.RestoreUser(1, "Maria", "maria@example.com", "hash", time.Now())

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "maria@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrEntityInUse)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUserUoWFactory)
	h := commands.NewRegisterUserCommandHandler(factory)

	_, err := h.Handle(ctx, commands.RegisterUserCommand{})
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
}
