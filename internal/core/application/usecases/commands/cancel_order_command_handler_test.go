package commands_test

import (
	"testing"

	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/commands"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder()
	cmd, err := commands.NewCancelOrderCommand(stored.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, stored.Code()).Return(stored, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("[]order.Event")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, publisher, discardLogger())
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusCancelled, cancelled.Status())
	require.NotNil(t, cancelled.CancelledAt())

	published := publisher.Calls[0].Arguments.Get(1).([]order.Event)
	require.Len(t, published, 1)
	require.Equal(t, order.EventOrderCancelled, published[0].Kind())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder()
	require.NoError(t, stored.Confirm())
	require.NoError(t, stored.Deliver())
	stored.ReleaseEvents()

	cmd, err := commands.NewCancelOrderCommand(stored.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, stored.Code()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, publisher, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrBusinessRule)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher), discardLogger())

	_, err := h.Handle(ctx, commands.CancelOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
