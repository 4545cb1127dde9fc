// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storepanel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// ProfileRepoFactory provides access to the store profile repository within a transaction.
	ProfileRepoFactory interface {
		StoreProfileRepository() ports.StoreProfileRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// ProfileUoW manages transactions for store profile operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new store profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// NotificationUoW manages transactions for the notification feed.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// CatalogNotificationUoW manages transactions that read the catalog
	// and record notifications about it, used by the low stock scan.
	CatalogNotificationUoW interface {
		TxManager
		CatalogRepoFactory
		NotificationRepoFactory
	}

	// CatalogNotificationUoWFactory creates unit of work instances for
	// catalog operations that also record notifications.
	CatalogNotificationUoWFactory interface {
		Create() CatalogNotificationUoW
	}

	// OrderNotificationUoW manages transactions that write an order and
	// record a notification about it in the same business transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   notifRepo := uow.NotificationRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderNotificationUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
	}

	// OrderNotificationUoWFactory creates unit of work instances for
	// order operations that also record notifications.
	OrderNotificationUoWFactory interface {
		Create() OrderNotificationUoW
	}
)
