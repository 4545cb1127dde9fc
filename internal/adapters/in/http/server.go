// Package http exposes the panel's REST surface on echo. Handlers parse
// and validate transport concerns, then delegate to the command and query
// handlers; domain errors map onto HTTP status codes in one place.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"storepanel/internal/core/application/usecases/commands"
	"storepanel/internal/core/application/usecases/queries"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/domain/model/store"
	"storepanel/internal/pkg/errs"
)

// defaultTopProducts bounds the sales-by-product list on the dashboard.
const defaultTopProducts = 5

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder              commands.CreateOrderCommandHandler
	ConfirmOrder             commands.ConfirmOrderCommandHandler
	StartProcessingOrder     commands.StartProcessingOrderCommandHandler
	VerifyPickup             commands.VerifyPickupCommandHandler
	MarkOrderDelivered       commands.MarkOrderDeliveredCommandHandler
	CancelOrder              commands.CancelOrderCommandHandler
	AddStoreItem             commands.AddStoreItemCommandHandler
	UpdateStoreItem          commands.UpdateStoreItemCommandHandler
	RemoveStoreItem          commands.RemoveStoreItemCommandHandler
	UpdateStoreProfile       commands.UpdateStoreProfileCommandHandler
	MarkNotificationRead     commands.MarkNotificationReadCommandHandler
	MarkAllNotificationsRead commands.MarkAllNotificationsReadCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	GetReceipt        queries.GetReceiptQueryHandler
	GetAnalytics      queries.GetAnalyticsQueryHandler
	ListStoreItems    queries.ListStoreItemsQueryHandler
	ListCustomers     queries.ListCustomersQueryHandler
	GetCustomer       queries.GetCustomerQueryHandler
	GetStoreProfile   queries.GetStoreProfileQueryHandler
	ListNotifications queries.ListNotificationsQueryHandler
}

// Server coordinates between HTTP requests and the application use cases.
// It stays unavailable (503) until MarkReady is called after seeding.
type Server struct {
	handlers Handlers
	ready    atomic.Bool
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// MarkReady opens the API for requests. Called once startup seeding is done.
func (s *Server) MarkReady() {
	s.ready.Store(true)
}

// RegisterRoutes mounts the panel API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.readinessGate)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/:orderId/receipt", s.GetReceipt)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/start-processing", s.StartProcessingOrder)
	api.POST("/orders/:orderId/verify-pickup", s.VerifyPickup)
	api.POST("/orders/:orderId/deliver", s.MarkOrderDelivered)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.GET("/items", s.ListStoreItems)
	api.POST("/items", s.AddStoreItem)
	api.PUT("/items/:itemId", s.UpdateStoreItem)
	api.DELETE("/items/:itemId", s.RemoveStoreItem)

	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:customerId", s.GetCustomer)

	api.GET("/profile", s.GetStoreProfile)
	api.PATCH("/profile", s.UpdateStoreProfile)

	api.GET("/analytics", s.GetAnalytics)

	api.GET("/notifications", s.ListNotifications)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
	api.POST("/notifications/:notificationId/read", s.MarkNotificationRead)
}

// Health handles GET /health. Reports liveness regardless of readiness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readinessGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !s.ready.Load() {
			return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Code:    http.StatusServiceUnavailable,
				Message: "store panel is starting up",
			})
		}
		return next(ctx)
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var customerID *kernel.UUID
	if req.CustomerID != nil {
		id, err := kernel.UUIDFromString(*req.CustomerID)
		if err != nil {
			return respondError(ctx, err)
		}
		customerID = &id
	}

	category, err := kernel.ItemCategoryFromString(req.Category)
	if err != nil {
		return respondError(ctx, err)
	}
	paymentType, err := order.PaymentTypeFromString(req.PaymentType)
	if err != nil {
		return respondError(ctx, err)
	}
	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	var installment *order.InstallmentDetails
	if req.Installment != nil {
		monthly, err := kernel.NewMoney(req.Installment.MonthlyAmount)
		if err != nil {
			return respondError(ctx, err)
		}
		details, err := order.NewInstallmentDetails(
			req.Installment.PlanMonths, monthly,
			req.Installment.InstallmentsPaid, req.Installment.NextDueDate)
		if err != nil {
			return respondError(ctx, err)
		}
		installment = &details
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID,
		req.BuyerName, req.ProductName, category, req.StoreName,
		req.Location, price, paymentType, installment, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ListOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewListOrdersQuery(statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		response = append(response, newOrderDTO(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newOrderDTO(response))
}

// GetReceipt handles GET /api/v1/orders/{orderId}/receipt.
func (s *Server) GetReceipt(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetReceiptQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	receipt, err := s.handlers.GetReceipt.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newReceiptDTO(receipt))
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartProcessingOrder handles POST /api/v1/orders/{orderId}/start-processing.
func (s *Server) StartProcessingOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartProcessingOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.StartProcessingOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// VerifyPickup handles POST /api/v1/orders/{orderId}/verify-pickup.
// Responds 409 on code mismatch or when the order is already finalized.
func (s *Server) VerifyPickup(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req VerifyPickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewVerifyPickupCommand(orderID, req.VerificationCode)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.VerifyPickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderDelivered handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) MarkOrderDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.MarkOrderDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListStoreItems handles GET /api/v1/items.
func (s *Server) ListStoreItems(ctx echo.Context) error {
	query := queries.NewListStoreItemsQuery()

	items, err := s.handlers.ListStoreItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StoreItemDTO, 0, len(items))
	for _, item := range items {
		response = append(response, newStoreItemDTO(item))
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddStoreItem handles POST /api/v1/items.
func (s *Server) AddStoreItem(ctx echo.Context) error {
	var req StoreItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	category, err := kernel.ItemCategoryFromString(req.Category)
	if err != nil {
		return respondError(ctx, err)
	}
	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddStoreItemCommand(itemID, req.Title, category,
		req.Subcategory, price, req.Description, req.Images,
		req.AvailableStock, req.ServiceDuration, req.IsFeatured)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.AddStoreItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// UpdateStoreItem handles PUT /api/v1/items/{itemId}.
func (s *Server) UpdateStoreItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req StoreItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateStoreItemCommand(itemID, req.Title,
		req.Subcategory, price, req.Description, req.Images,
		req.AvailableStock, req.ServiceDuration, req.IsFeatured)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.UpdateStoreItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveStoreItem handles DELETE /api/v1/items/{itemId}.
func (s *Server) RemoveStoreItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveStoreItemCommand(itemID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.RemoveStoreItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	query := queries.NewListCustomersQuery()

	customers, err := s.handlers.ListCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		response = append(response, newCustomerDTO(c))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/{customerId}.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newCustomerDTO(response))
}

// GetStoreProfile handles GET /api/v1/profile.
func (s *Server) GetStoreProfile(ctx echo.Context) error {
	query := queries.NewGetStoreProfileQuery()

	response, err := s.handlers.GetStoreProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newStoreProfileDTO(response))
}

// UpdateStoreProfile handles PATCH /api/v1/profile with merge semantics.
func (s *Server) UpdateStoreProfile(ctx echo.Context) error {
	var req StoreProfilePatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	patch := store.ProfilePatch{
		Name:             req.Name,
		Phone:            req.Phone,
		WorkingHours:     req.WorkingHours,
		Bio:              req.Bio,
		LogoURL:          req.LogoURL,
		LocationAddress:  req.LocationAddress,
		MapCoordinates:   req.MapCoordinates,
		DeliveryZones:    req.DeliveryZones,
		ProximityVisible: req.ProximityVisible,
	}
	if req.StoreCategory != nil {
		category, err := store.CategoryFromString(*req.StoreCategory)
		if err != nil {
			return respondError(ctx, err)
		}
		patch.Category = &category
	}

	cmd, err := commands.NewUpdateStoreProfileCommand(patch)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.UpdateStoreProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetAnalytics handles GET /api/v1/analytics.
func (s *Server) GetAnalytics(ctx echo.Context) error {
	topProducts := defaultTopProducts
	if raw := ctx.QueryParam("topProducts"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "topProducts must be an integer")
		}
		topProducts = parsed
	}

	query, err := queries.NewGetAnalyticsQuery(topProducts)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newAnalyticsDTO(response))
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	query := queries.NewListNotificationsQuery()

	feed, err := s.handlers.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := NotificationFeedDTO{
		Notifications: make([]NotificationDTO, 0, len(feed.Notifications)),
		UnreadCount:   feed.UnreadCount,
	}
	for _, n := range feed.Notifications {
		response.Notifications = append(response.Notifications, newNotificationDTO(n))
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("notificationId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	cmd, err := commands.NewMarkAllNotificationsReadCommand()
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.MarkAllNotificationsRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// respondError maps domain errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrVerificationCodeMismatch),
		errors.Is(err, order.ErrOrderAlreadyFinalized),
		errors.Is(err, order.ErrOrderNotCompleted):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
