package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"storepanel/internal/core/application/usecases/commands"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	var created *order.Order
	orderRepo := new(MockOrderRepository)
	notifRepo := new(MockNotificationRepository)
	uow := new(MockOrderNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notifRepo).Once(),
		notifRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	sink := new(MockNotificationSink)
	sink.On("Publish", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockOrderNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, sink, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.Len(t, created.VerificationCode().String(), 6)
	assert.Nil(t, created.PickupTimestamp())

	orderRepo.AssertExpectations(t)
	notifRepo.AssertExpectations(t)
	sink.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	notifRepo := new(MockNotificationRepository)
	uow := new(MockOrderNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notifRepo).Once(),
		notifRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	sink := new(MockNotificationSink)
	sink.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	factory := new(MockOrderNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, sink, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	sink.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NilSink(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	notifRepo := new(MockNotificationRepository)
	uow := new(MockOrderNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notifRepo).Once(),
		notifRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}

func TestCreateOrderCommandHandler_Handle_NotificationType(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	var recorded *notification.Notification
	orderRepo := new(MockOrderRepository)
	notifRepo := new(MockNotificationRepository)
	uow := new(MockOrderNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notifRepo).Once(),
		notifRepo.On("Add", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*notification.Notification)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, recorded)
	assert.Equal(t, notification.NewOrder, recorded.Type)
	require.NotNil(t, recorded.RelatedID)
	assert.True(t, recorded.RelatedID.IsEqual(cmd.OrderID()))
	assert.False(t, recorded.Read)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderNotificationUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, nil, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil, testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
