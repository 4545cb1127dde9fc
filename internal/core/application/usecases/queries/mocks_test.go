package queries_test

import (
	"context"
	"time"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/domain/model/store"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithInstallments(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Add(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) Update(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockCatalogRepository) GetAll(ctx context.Context) ([]*catalog.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.Item), args.Error(1)
}

func (m *MockCatalogRepository) GetAllLowStock(ctx context.Context) ([]*catalog.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.Item), args.Error(1)
}

func (m *MockCatalogRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAllReviews(ctx context.Context) ([]customer.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]customer.Review), args.Error(1)
}

type MockStoreProfileRepository struct{ mock.Mock }

func (m *MockStoreProfileRepository) Get(ctx context.Context) (*store.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Profile), args.Error(1)
}

func (m *MockStoreProfileRepository) Save(ctx context.Context, profile *store.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetAll(ctx context.Context) ([]*notification.Notification, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// orderInStatus restores an order directly into the given status.
func orderInStatus(productName string, priceAmount int64, status order.Status, customerID *kernel.UUID) *order.Order {
	code, err := kernel.NewVerificationCode("482917")
	if err != nil {
		panic(err)
	}

	price, err := kernel.NewMoney(priceAmount)
	if err != nil {
		panic(err)
	}

	var pickedUpAt *time.Time
	if status.IsCompleted() {
		ts := time.Date(2025, 11, 12, 14, 30, 0, 0, time.UTC)
		pickedUpAt = &ts
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, "Ahmed B.", productName, kernel.Product,
		"AutoParts Plus", "Algiers", price, order.FullPayment, nil, code, "",
		status, pickedUpAt, time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return o
}
