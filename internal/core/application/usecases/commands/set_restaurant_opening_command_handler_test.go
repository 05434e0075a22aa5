package commands_test

import (
	"testing"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/commands"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/restaurant"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetRestaurantOpeningCommandHandler_Handle_Open(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetRestaurantOpeningCommand(testRestaurantID, true)
	require.NoError(t, err)

	now := time.Now()
	target := restaurant.RestoreRestaurant(
		testRestaurantID, "Luigi's", "Italian", money("5.00"),
		true, false, []int64{testPaymentMethodID}, nil, now, now)

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, testRestaurantID).Return(target, nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRestaurantOpeningCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, target.IsOpen())
	uow.AssertExpectations(t)
}

func TestSetRestaurantOpeningCommandHandler_Handle_OpenInactiveFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetRestaurantOpeningCommand(testRestaurantID, true)
	require.NoError(t, err)

	now := time.Now()
	inactive := restaurant.RestoreRestaurant(
		testRestaurantID, "Luigi's", "Italian", money("5.00"),
		false, false, []int64{testPaymentMethodID}, nil, now, now)

	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, testRestaurantID).Return(inactive, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRestaurantOpeningCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrBusinessRule)
	require.Contains(t, err.Error(), "inactive")
	uow.AssertExpectations(t)
}

func TestSetRestaurantOpeningCommandHandler_Handle_Close(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetRestaurantOpeningCommand(testRestaurantID, false)
	require.NoError(t, err)

	target := testRestaurant()
	repo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, testRestaurantID).Return(target, nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRestaurantOpeningCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.False(t, target.IsOpen())
	uow.AssertExpectations(t)
}
