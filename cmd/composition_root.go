package cmd

import (
	"log/slog"

	httpin "storepanel/internal/adapters/in/http"
	"storepanel/internal/core/application/usecases/commands"
	"storepanel/internal/core/application/usecases/queries"
	"storepanel/internal/core/ports"
	"storepanel/internal/jobs"
)

// CompositionRoot wires use case handlers over the selected storage
// backend. The unit of work factory and the customer repository come from
// either the memory or the postgres adapter; everything above them is
// backend-agnostic.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	customers  ports.CustomerRepository
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewCompositionRoot creates the application wiring.
// sink may be nil when no broker is configured.
func NewCompositionRoot(
	uowFactory ports.UnitOfWorkFactory,
	customers ports.CustomerRepository,
	sink ports.NotificationSink,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		uowFactory: uowFactory,
		customers:  customers,
		sink:       sink,
		logger:     logger,
	}
}

// CreateServer assembles the HTTP server over all use case handlers.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:              c.CreateCreateOrderCommandHandler(),
		ConfirmOrder:             commands.NewConfirmOrderCommandHandler(c.orderUoWFactory()),
		StartProcessingOrder:     commands.NewStartProcessingOrderCommandHandler(c.orderUoWFactory()),
		VerifyPickup:             commands.NewVerifyPickupCommandHandler(c.orderUoWFactory()),
		MarkOrderDelivered:       commands.NewMarkOrderDeliveredCommandHandler(c.orderUoWFactory()),
		CancelOrder:              commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),
		AddStoreItem:             commands.NewAddStoreItemCommandHandler(c.catalogUoWFactory()),
		UpdateStoreItem:          commands.NewUpdateStoreItemCommandHandler(c.catalogUoWFactory()),
		RemoveStoreItem:          commands.NewRemoveStoreItemCommandHandler(c.catalogUoWFactory()),
		UpdateStoreProfile:       commands.NewUpdateStoreProfileCommandHandler(c.profileUoWFactory()),
		MarkNotificationRead:     commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory()),
		MarkAllNotificationsRead: commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory()),

		GetOrder:          queries.NewGetOrderQueryHandler(c.orderReader()),
		ListOrders:        queries.NewListOrdersQueryHandler(c.orderReader()),
		GetReceipt:        queries.NewGetReceiptQueryHandler(c.orderReader()),
		GetAnalytics:      queries.NewGetAnalyticsQueryHandler(c.orderReader(), c.catalogReader(), c.customers),
		ListStoreItems:    queries.NewListStoreItemsQueryHandler(c.catalogReader()),
		ListCustomers:     queries.NewListCustomersQueryHandler(c.customers),
		GetCustomer:       queries.NewGetCustomerQueryHandler(c.customers),
		GetStoreProfile:   queries.NewGetStoreProfileQueryHandler(c.profileReader()),
		ListNotifications: queries.NewListNotificationsQueryHandler(c.notificationReader()),
	})
}

// CreateCreateOrderCommandHandler wires order intake with its
// notification side effects.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderNotificationUoWFactory(), c.sink, c.logger)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	scanHandler := commands.NewScanLowStockCommandHandler(
		c.catalogNotificationUoWFactory(), c.sink, c.logger)
	remindHandler := commands.NewRemindInstallmentsCommandHandler(
		c.orderNotificationUoWFactory(), c.sink, c.logger)
	return jobs.NewJobManager(scanHandler, remindHandler, c.logger)
}

// Query handlers read through repositories outside any transaction.

func (c *CompositionRoot) orderReader() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) catalogReader() ports.CatalogRepository {
	return c.uowFactory.Create().CatalogRepository()
}

func (c *CompositionRoot) profileReader() ports.StoreProfileRepository {
	return c.uowFactory.Create().StoreProfileRepository()
}

func (c *CompositionRoot) notificationReader() ports.NotificationRepository {
	return c.uowFactory.Create().NotificationRepository()
}

// Narrow unit of work factories hand each command handler exactly the
// repositories it works with.

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) profileUoWFactory() commands.ProfileUoWFactory {
	return FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderNotificationUoWFactory() commands.OrderNotificationUoWFactory {
	return FuncOrderNotificationUoWFactory(func() commands.OrderNotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogNotificationUoWFactory() commands.CatalogNotificationUoWFactory {
	return FuncCatalogNotificationUoWFactory(func() commands.CatalogNotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncOrderNotificationUoWFactory func() commands.OrderNotificationUoW

func (f FuncOrderNotificationUoWFactory) Create() commands.OrderNotificationUoW {
	return f()
}

type FuncCatalogNotificationUoWFactory func() commands.CatalogNotificationUoW

func (f FuncCatalogNotificationUoWFactory) Create() commands.CatalogNotificationUoW {
	return f()
}
