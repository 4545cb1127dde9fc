package memory

import (
	"context"

	"storepanel/internal/core/ports"
)

// Repositories bundles the in-memory stores shared by every unit of work
// produced by the same factory.
type Repositories struct {
	Orders        *OrderRepository
	Catalog       *CatalogRepository
	Customers     *CustomerRepository
	Profile       *StoreProfileRepository
	Notifications *NotificationRepository
}

// NewRepositories creates a full set of empty in-memory repositories.
func NewRepositories() *Repositories {
	return &Repositories{
		Orders:        NewOrderRepository(),
		Catalog:       NewCatalogRepository(),
		Customers:     NewCustomerRepository(),
		Profile:       NewStoreProfileRepository(),
		Notifications: NewNotificationRepository(),
	}
}

// UnitOfWorkFactory creates in-memory UnitOfWork instances that all share
// the same backing repositories.
type UnitOfWorkFactory struct {
	repos *Repositories
}

// NewUnitOfWorkFactory creates a factory over the given repositories.
func NewUnitOfWorkFactory(repos *Repositories) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repos: repos}
}

// Create produces a new UnitOfWork over the shared repositories.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{repos: f.repos}
}

// UnitOfWork satisfies the transactional contract without real
// transactions. Writes apply immediately; Rollback cannot undo them.
type UnitOfWork struct {
	repos *Repositories
}

// Begin is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op.
func (uow *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op.
func (uow *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns the shared order repository.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository { return uow.repos.Orders }

// CatalogRepository returns the shared catalog repository.
func (uow *UnitOfWork) CatalogRepository() ports.CatalogRepository { return uow.repos.Catalog }

// StoreProfileRepository returns the shared store profile repository.
func (uow *UnitOfWork) StoreProfileRepository() ports.StoreProfileRepository {
	return uow.repos.Profile
}

// NotificationRepository returns the shared notification repository.
func (uow *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return uow.repos.Notifications
}
