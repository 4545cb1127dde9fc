package commands_test

import (
	"errors"
	"testing"

	"storepanel/internal/core/application/usecases/commands"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder("482917")
	cmd, _ := commands.NewVerifyPickupCommand(aggregate.ID(), "482917")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyPickupCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.PickedUp, aggregate.Status())
	require.NotNil(t, aggregate.PickupTimestamp())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestVerifyPickupCommandHandler_Handle_CodeMismatch(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder("482917")
	cmd, _ := commands.NewVerifyPickupCommand(aggregate.ID(), "000000")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyPickupCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrVerificationCodeMismatch)

	// No write happened and the order is untouched.
	assert.Equal(t, order.Pending, aggregate.Status())
	assert.Nil(t, aggregate.PickupTimestamp())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestVerifyPickupCommandHandler_Handle_AlreadyFinalized(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder("482917")
	require.NoError(t, aggregate.Cancel())

	// Even the correct code is rejected once the order is terminal.
	cmd, _ := commands.NewVerifyPickupCommand(aggregate.ID(), "482917")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyPickupCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderAlreadyFinalized)

	assert.Equal(t, order.Cancelled, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestVerifyPickupCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewVerifyPickupCommand(id, "482917")

	notFound := errs.NewObjectNotFoundError("orderID", id.String())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyPickupCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestVerifyPickupCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewVerifyPickupCommand(kernel.NewUUID(), "482917")

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewVerifyPickupCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestVerifyPickupCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.VerifyPickupCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewVerifyPickupCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
