package commands_test

import (
	"context"

	"time"

	"storepanel/internal/core/application/usecases/commands"
	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/domain/model/store"
	"storepanel/internal/core/ports"

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

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Publish(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationSink) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderNotificationUoW struct{ MockOrderUoW }

func (m *MockOrderNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderNotificationUoWFactory struct{ mock.Mock }

func (m *MockOrderNotificationUoWFactory) Create() commands.OrderNotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderNotificationUoW)
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockCatalogNotificationUoW struct{ MockCatalogUoW }

func (m *MockCatalogNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockCatalogNotificationUoWFactory struct{ mock.Mock }

func (m *MockCatalogNotificationUoWFactory) Create() commands.CatalogNotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogNotificationUoW)
}

type MockProfileUoW struct{ mock.Mock }

func (m *MockProfileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) StoreProfileRepository() ports.StoreProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreProfileRepository)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

// pendingOrder builds a fresh order in Pending status with the given code.
func pendingOrder(code string) *order.Order {
	vc, err := kernel.NewVerificationCode(code)
	if err != nil {
		panic(err)
	}

	price, err := kernel.NewMoney(3500)
	if err != nil {
		panic(err)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), nil, "Ahmed B.", "Brake Pads", kernel.Product,
		"AutoParts Plus", "Algiers", price, order.FullPayment, nil, vc, "",
		time.Now().UTC(),
	)
	if err != nil {
		panic(err)
	}
	return o
}
