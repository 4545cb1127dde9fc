package http

import (
	"time"

	"storepanel/internal/core/application/usecases/queries"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/domain/services"
)

// ErrorResponse is the JSON body returned on request failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InstallmentRequest carries installment terms on order creation.
type InstallmentRequest struct {
	PlanMonths       int        `json:"planMonths"`
	MonthlyAmount    int64      `json:"monthlyAmount"`
	InstallmentsPaid int        `json:"installmentsPaid"`
	NextDueDate      *time.Time `json:"nextDueDate,omitempty"`
}

// CreateOrderRequest is the JSON body of POST /orders.
type CreateOrderRequest struct {
	CustomerID  *string             `json:"customerId,omitempty"`
	BuyerName   string              `json:"buyerName"`
	ProductName string              `json:"productName"`
	Category    string              `json:"itemCategory"`
	StoreName   string              `json:"storeName"`
	Location    string              `json:"location"`
	Price       int64               `json:"price"`
	PaymentType string              `json:"paymentType"`
	Installment *InstallmentRequest `json:"installmentDetails,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// VerifyPickupRequest is the JSON body of POST /orders/{id}/verify-pickup.
type VerifyPickupRequest struct {
	VerificationCode string `json:"verificationCode"`
}

// InstallmentDTO is the JSON form of installment terms on an order.
type InstallmentDTO struct {
	Plan              string     `json:"plan"`
	PlanMonths        int        `json:"planMonths"`
	MonthlyAmount     int64      `json:"monthlyAmount"`
	InstallmentsPaid  int        `json:"installmentsPaid"`
	TotalInstallments int        `json:"totalInstallments"`
	NextDueDate       *time.Time `json:"nextDueDate,omitempty"`
}

// OrderDTO is the JSON form of an order as shown in the panel.
type OrderDTO struct {
	ID               string          `json:"id"`
	CustomerID       *string         `json:"customerId,omitempty"`
	BuyerName        string          `json:"buyerName"`
	ProductName      string          `json:"productName"`
	Category         string          `json:"itemCategory"`
	StoreName        string          `json:"storeName"`
	Location         string          `json:"location"`
	Price            int64           `json:"price"`
	PaymentType      string          `json:"paymentType"`
	Installment      *InstallmentDTO `json:"installmentDetails,omitempty"`
	VerificationCode string          `json:"verificationCode"`
	Notes            string          `json:"notes,omitempty"`
	Status           string          `json:"status"`
	PickupTimestamp  *time.Time      `json:"pickupTimestamp,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func newInstallmentDTO(d *order.InstallmentDetails) *InstallmentDTO {
	if d == nil {
		return nil
	}
	return &InstallmentDTO{
		Plan:              d.Plan(),
		PlanMonths:        d.PlanMonths(),
		MonthlyAmount:     d.MonthlyAmount().Amount(),
		InstallmentsPaid:  d.InstallmentsPaid(),
		TotalInstallments: d.TotalInstallments(),
		NextDueDate:       d.NextDueDate(),
	}
}

func newOrderDTO(r queries.OrderResponse) OrderDTO {
	dto := OrderDTO{
		ID:               r.ID.String(),
		BuyerName:        r.BuyerName,
		ProductName:      r.ProductName,
		Category:         r.Category.String(),
		StoreName:        r.StoreName,
		Location:         r.Location,
		Price:            r.Price.Amount(),
		PaymentType:      r.PaymentType.String(),
		Installment:      newInstallmentDTO(r.Installment),
		VerificationCode: r.VerificationCode,
		Notes:            r.Notes,
		Status:           r.Status.String(),
		PickupTimestamp:  r.PickupTimestamp,
		CreatedAt:        r.CreatedAt,
	}
	if r.CustomerID != nil {
		id := r.CustomerID.String()
		dto.CustomerID = &id
	}
	return dto
}

// ReceiptDTO is the JSON form of a completed order's receipt.
type ReceiptDTO struct {
	OrderID         string          `json:"orderId"`
	BuyerName       string          `json:"buyerName"`
	ProductName     string          `json:"productName"`
	StoreName       string          `json:"storeName"`
	Price           int64           `json:"price"`
	PaymentType     string          `json:"paymentType"`
	Installment     *InstallmentDTO `json:"installmentDetails,omitempty"`
	Status          string          `json:"status"`
	PickupTimestamp time.Time       `json:"pickupTimestamp"`
}

func newReceiptDTO(r order.Receipt) ReceiptDTO {
	return ReceiptDTO{
		OrderID:         r.OrderID.String(),
		BuyerName:       r.BuyerName,
		ProductName:     r.ProductName,
		StoreName:       r.StoreName,
		Price:           r.Price.Amount(),
		PaymentType:     r.PaymentType.String(),
		Installment:     newInstallmentDTO(r.Installment),
		Status:          r.Status.String(),
		PickupTimestamp: r.PickupTimestamp,
	}
}

// StoreItemRequest is the JSON body of POST /items and PUT /items/{id}.
// Category is only honored on creation, items cannot change category.
type StoreItemRequest struct {
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	Price           int64    `json:"price"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
	AvailableStock  *int     `json:"availableStock,omitempty"`
	ServiceDuration string   `json:"serviceDuration,omitempty"`
	IsFeatured      bool     `json:"isFeatured"`
}

// StoreItemDTO is the JSON form of a catalog item.
type StoreItemDTO struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Category        string     `json:"category"`
	Subcategory     string     `json:"subcategory"`
	Price           int64      `json:"price"`
	Description     string     `json:"description"`
	Images          []string   `json:"images"`
	AvailableStock  *int       `json:"availableStock,omitempty"`
	ServiceDuration string     `json:"serviceDuration,omitempty"`
	IsFeatured      bool       `json:"isFeatured"`
	IsLowStock      bool       `json:"isLowStock"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

func newStoreItemDTO(r queries.StoreItemResponse) StoreItemDTO {
	return StoreItemDTO{
		ID:              r.ID.String(),
		Title:           r.Title,
		Category:        r.Category.String(),
		Subcategory:     r.Subcategory,
		Price:           r.Price.Amount(),
		Description:     r.Description,
		Images:          r.Images,
		AvailableStock:  r.AvailableStock,
		ServiceDuration: r.ServiceDuration,
		IsFeatured:      r.IsFeatured,
		IsLowStock:      r.IsLowStock,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// StoreProfileDTO is the JSON form of the store profile.
type StoreProfileDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	WorkingHours     string   `json:"workingHours"`
	StoreCategory    string   `json:"storeCategory"`
	Bio              string   `json:"bio"`
	LogoURL          string   `json:"logoUrl"`
	LocationAddress  string   `json:"locationAddress"`
	MapCoordinates   string   `json:"mapCoordinates"`
	DeliveryZones    []string `json:"deliveryZones"`
	ProximityVisible bool     `json:"proximityVisible"`
}

func newStoreProfileDTO(r queries.StoreProfileResponse) StoreProfileDTO {
	return StoreProfileDTO{
		ID:               r.ID.String(),
		Name:             r.Name,
		Phone:            r.Phone,
		WorkingHours:     r.WorkingHours,
		StoreCategory:    r.Category.String(),
		Bio:              r.Bio,
		LogoURL:          r.LogoURL,
		LocationAddress:  r.LocationAddress,
		MapCoordinates:   r.MapCoordinates,
		DeliveryZones:    r.DeliveryZones,
		ProximityVisible: r.ProximityVisible,
	}
}

// StoreProfilePatchRequest is the JSON body of PATCH /profile. Absent
// fields are left unchanged.
type StoreProfilePatchRequest struct {
	Name             *string   `json:"name,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	WorkingHours     *string   `json:"workingHours,omitempty"`
	StoreCategory    *string   `json:"storeCategory,omitempty"`
	Bio              *string   `json:"bio,omitempty"`
	LogoURL          *string   `json:"logoUrl,omitempty"`
	LocationAddress  *string   `json:"locationAddress,omitempty"`
	MapCoordinates   *string   `json:"mapCoordinates,omitempty"`
	DeliveryZones    *[]string `json:"deliveryZones,omitempty"`
	ProximityVisible *bool     `json:"proximityVisible,omitempty"`
}

// ReviewDTO is the JSON form of a customer review.
type ReviewDTO struct {
	OrderID   string    `json:"orderId"`
	ItemID    *string   `json:"itemId,omitempty"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerDTO is the JSON form of a customer record.
type CustomerDTO struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Email         string      `json:"email"`
	TotalSpent    int64       `json:"totalSpent"`
	OrderCount    int         `json:"orderCount"`
	LastOrderDate *time.Time  `json:"lastOrderDate,omitempty"`
	Reviews       []ReviewDTO `json:"reviews"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func newCustomerDTO(r queries.CustomerResponse) CustomerDTO {
	reviews := make([]ReviewDTO, 0, len(r.Reviews))
	for _, review := range r.Reviews {
		dto := ReviewDTO{
			OrderID:   review.OrderID.String(),
			Rating:    review.Rating,
			Text:      review.Text,
			CreatedAt: review.CreatedAt,
		}
		if review.ItemID != nil {
			id := review.ItemID.String()
			dto.ItemID = &id
		}
		reviews = append(reviews, dto)
	}

	return CustomerDTO{
		ID:            r.ID.String(),
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		TotalSpent:    r.TotalSpent.Amount(),
		OrderCount:    r.OrderCount,
		LastOrderDate: r.LastOrderDate,
		Reviews:       reviews,
		CreatedAt:     r.CreatedAt,
	}
}

// NotificationDTO is the JSON form of a bell-menu entry.
type NotificationDTO struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	RelatedID *string   `json:"relatedId,omitempty"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationFeedDTO is the JSON form of the notification feed.
type NotificationFeedDTO struct {
	Notifications []NotificationDTO `json:"notifications"`
	UnreadCount   int               `json:"unreadCount"`
}

func newNotificationDTO(n notification.Notification) NotificationDTO {
	dto := NotificationDTO{
		ID:        n.ID.String(),
		Message:   n.Message,
		Type:      n.Type.String(),
		Read:      n.Read,
		Timestamp: n.Timestamp,
	}
	if n.RelatedID != nil {
		id := n.RelatedID.String()
		dto.RelatedID = &id
	}
	return dto
}

// BestSellerDTO is the JSON form of one product's sales tally.
type BestSellerDTO struct {
	ProductName string `json:"productName"`
	SalesCount  int    `json:"salesCount"`
}

// LowStockItemDTO is the JSON form of a low-stock catalog entry.
type LowStockItemDTO struct {
	ItemID         string `json:"itemId"`
	Title          string `json:"title"`
	AvailableStock int    `json:"availableStock"`
}

// AnalyticsDTO is the JSON form of the derived analytics dashboard.
type AnalyticsDTO struct {
	TotalSales         int64             `json:"totalSales"`
	BestSeller         *BestSellerDTO    `json:"bestSeller,omitempty"`
	SalesByProduct     []BestSellerDTO   `json:"salesByProduct"`
	CustomerRepeatRate float64           `json:"customerRepeatRate"`
	AverageRating      *float64          `json:"averageRating,omitempty"`
	LowStockItems      []LowStockItemDTO `json:"lowStockItems"`
}

func newBestSellerDTO(b services.BestSeller) BestSellerDTO {
	return BestSellerDTO{ProductName: b.ProductName, SalesCount: b.SalesCount}
}

func newAnalyticsDTO(r queries.AnalyticsResponse) AnalyticsDTO {
	dto := AnalyticsDTO{
		TotalSales:         r.TotalSales.Amount(),
		CustomerRepeatRate: r.CustomerRepeatRate,
		AverageRating:      r.AverageRating,
		SalesByProduct:     make([]BestSellerDTO, 0, len(r.SalesByProduct)),
		LowStockItems:      make([]LowStockItemDTO, 0, len(r.LowStockItems)),
	}
	if r.BestSeller != nil {
		best := newBestSellerDTO(*r.BestSeller)
		dto.BestSeller = &best
	}
	for _, b := range r.SalesByProduct {
		dto.SalesByProduct = append(dto.SalesByProduct, newBestSellerDTO(b))
	}
	for _, item := range r.LowStockItems {
		dto.LowStockItems = append(dto.LowStockItems, LowStockItemDTO{
			ItemID:         item.ItemID.String(),
			Title:          item.Title,
			AvailableStock: item.AvailableStock,
		})
	}
	return dto
}
