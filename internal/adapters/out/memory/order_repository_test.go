package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/pkg/errs"
)

func testOrder(t *testing.T, status order.Status, withInstallment bool, createdAt time.Time) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(8200)
	require.NoError(t, err)

	var installment *order.InstallmentDetails
	paymentType := order.FullPayment
	if withInstallment {
		monthly, err := kernel.NewMoney(1367)
		require.NoError(t, err)
		details, err := order.NewInstallmentDetails(6, monthly, 1, nil)
		require.NoError(t, err)
		installment = &details
		paymentType = order.InstallmentPlan
	}

	var pickupTimestamp *time.Time
	if status.IsCompleted() {
		picked := createdAt.Add(time.Hour)
		pickupTimestamp = &picked
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), nil, "Karim B.", "Brake Pads (Set of 4)",
		kernel.Product, "AutoParts Plus", "Oran", price, paymentType,
		installment, kernel.GenerateVerificationCode(), "",
		status, pickupTimestamp, createdAt)
	require.NoError(t, err)
	return aggregate
}

func TestOrderRepositoryAddAndGet(t *testing.T) {
	repo := NewOrderRepository()
	aggregate := testOrder(t, order.Pending, false, time.Now().UTC())

	require.NoError(t, repo.Add(context.Background(), aggregate))

	got, err := repo.Get(context.Background(), aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, aggregate, got)
}

func TestOrderRepositoryAddDuplicate(t *testing.T) {
	repo := NewOrderRepository()
	aggregate := testOrder(t, order.Pending, false, time.Now().UTC())

	require.NoError(t, repo.Add(context.Background(), aggregate))
	assert.ErrorIs(t, repo.Add(context.Background(), aggregate), errs.ErrValueIsInvalid)
}

func TestOrderRepositoryGetNotFound(t *testing.T) {
	repo := NewOrderRepository()

	_, err := repo.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestOrderRepositoryUpdateMissing(t *testing.T) {
	repo := NewOrderRepository()
	aggregate := testOrder(t, order.Pending, false, time.Now().UTC())

	var notFound *errs.ObjectNotFoundError
	assert.ErrorAs(t, repo.Update(context.Background(), aggregate), &notFound)
}

func TestOrderRepositoryGetAllNewestFirst(t *testing.T) {
	repo := NewOrderRepository()
	now := time.Now().UTC()
	older := testOrder(t, order.Pending, false, now.Add(-time.Hour))
	newer := testOrder(t, order.Confirmed, false, now)

	require.NoError(t, repo.Add(context.Background(), older))
	require.NoError(t, repo.Add(context.Background(), newer))

	orders, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID(), orders[0].ID())
	assert.Equal(t, older.ID(), orders[1].ID())
}

func TestOrderRepositoryGetAllInStatus(t *testing.T) {
	repo := NewOrderRepository()
	now := time.Now().UTC()
	pending := testOrder(t, order.Pending, false, now)
	confirmed := testOrder(t, order.Confirmed, false, now)

	require.NoError(t, repo.Add(context.Background(), pending))
	require.NoError(t, repo.Add(context.Background(), confirmed))

	orders, err := repo.GetAllInStatus(context.Background(), order.Confirmed)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, confirmed.ID(), orders[0].ID())
}

func TestOrderRepositoryGetAllWithInstallments(t *testing.T) {
	repo := NewOrderRepository()
	now := time.Now().UTC()
	active := testOrder(t, order.Confirmed, true, now)
	fullPayment := testOrder(t, order.Confirmed, false, now)
	cancelled := testOrder(t, order.Cancelled, true, now)

	require.NoError(t, repo.Add(context.Background(), active))
	require.NoError(t, repo.Add(context.Background(), fullPayment))
	require.NoError(t, repo.Add(context.Background(), cancelled))

	orders, err := repo.GetAllWithInstallments(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, active.ID(), orders[0].ID())
}
