package queries_test

import (
	"testing"

	"storepanel/internal/core/application/usecases/queries"
	"storepanel/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle_All(t *testing.T) {
	ctx := t.Context()
	orders := []*order.Order{
		orderInStatus("Brake Pads", 3500, order.Pending, nil),
		orderInStatus("Oil Filter", 1200, order.Delivered, nil),
	}

	repo := new(MockOrderRepository)
	repo.On("GetAll", mock.Anything).Return(orders, nil).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	query, err := queries.NewListOrdersQuery(nil)
	require.NoError(t, err)

	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, responses, 2)

	assert.Equal(t, "Brake Pads", responses[0].ProductName)
	assert.Equal(t, order.Pending, responses[0].Status)
	assert.Nil(t, responses[0].PickupTimestamp)

	assert.Equal(t, order.Delivered, responses[1].Status)
	assert.NotNil(t, responses[1].PickupTimestamp)
	repo.AssertNotCalled(t, "GetAllInStatus", mock.Anything, mock.Anything)
}

func TestListOrdersQueryHandler_Handle_StatusFilter(t *testing.T) {
	ctx := t.Context()
	pending := order.Pending
	orders := []*order.Order{orderInStatus("Brake Pads", 3500, order.Pending, nil)}

	repo := new(MockOrderRepository)
	repo.On("GetAllInStatus", mock.Anything, order.Pending).Return(orders, nil).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	query, err := queries.NewListOrdersQuery(&pending)
	require.NoError(t, err)

	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestListOrdersQueryHandler_Handle_InvalidStatus(t *testing.T) {
	unknown := order.Unknown
	_, err := queries.NewListOrdersQuery(&unknown)
	require.Error(t, err)
}
