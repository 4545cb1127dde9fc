package memory

import (
	"context"
	"fmt"
	"time"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/domain/model/store"
)

// Seed fills the repositories with a demo data set: a store profile,
// a catalog of automotive parts and services, a handful of customers
// with reviews, and orders in every lifecycle status. Times are laid
// out relative to now so the panel looks freshly used.
func Seed(ctx context.Context, repos *Repositories, now time.Time) error {
	if err := seedProfile(ctx, repos); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	if err := seedCatalog(ctx, repos, now); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	orderIDs, customerIDs, err := seedOrders(ctx, repos, now)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if err := seedCustomers(ctx, repos, now, orderIDs, customerIDs); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	if err := seedNotifications(ctx, repos, now, orderIDs); err != nil {
		return fmt.Errorf("seed notifications: %w", err)
	}
	return nil
}

func seedProfile(ctx context.Context, repos *Repositories) error {
	profile, err := store.NewProfile(
		kernel.NewUUID(),
		"AutoServe Central Hub - Algiers",
		"+213 555 123 456",
		"Sat-Thu: 8:30 AM - 6:30 PM, Fri: Closed",
		store.Both,
		"Your one-stop destination for premium automotive parts and expert car services in the heart of Algiers.",
		"https://placehold.co/200x200.png",
		"123 Rue Didouche Mourad, Alger Centre, Algiers, 16000, Algeria",
		"36.7753 N, 3.0590 E",
		[]string{"Alger Centre", "Hydra", "El Biar", "Kouba", "Ben Aknoun"},
		true,
	)
	if err != nil {
		return err
	}
	return repos.Profile.Save(ctx, profile)
}

func seedCatalog(ctx context.Context, repos *Repositories, now time.Time) error {
	type fixture struct {
		title           string
		category        kernel.ItemCategory
		subcategory     string
		price           int64
		description     string
		stock           *int
		serviceDuration string
		featured        bool
		ageDays         int
	}

	stock := func(n int) *int { return &n }

	fixtures := []fixture{
		{
			title:       "Premium Synthetic Engine Oil (5L Mobil1)",
			category:    kernel.Product,
			subcategory: "Engine Lubricants",
			price:       6200,
			description: "Mobil1 advanced full synthetic 5W-30 engine oil.",
			stock:       stock(75),
			featured:    true,
			ageDays:     10,
		},
		{
			title:           "Comprehensive Oil Change Service",
			category:        kernel.Service,
			subcategory:     "Routine Maintenance",
			price:           4800,
			description:     "Up to 5L of premium synthetic oil, filter replacement and a multi-point inspection.",
			serviceDuration: "Approx. 1 hour",
			featured:        true,
			ageDays:         12,
		},
		{
			title:       "Michelin Pilot Sport 5 Tire (225/45R17)",
			category:    kernel.Product,
			subcategory: "Performance Tires",
			price:       21500,
			description: "Exceptional grip, longevity and driving precision. Size 225/45 R17 94Y XL.",
			stock:       stock(24),
			ageDays:     5,
		},
		{
			title:           "Full Brake System Check & Pad Replacement (Front)",
			category:        kernel.Service,
			subcategory:     "Brake Services",
			price:           9500,
			description:     "Inspection of discs, calipers and fluid plus front ceramic pads, labor included.",
			serviceDuration: "Approx. 1.5 - 2 hours",
			featured:        true,
			ageDays:         8,
		},
		{
			title:       "Varta Silver Dynamic Car Battery (74Ah)",
			category:    kernel.Product,
			subcategory: "Automotive Batteries",
			price:       11500,
			description: "74Ah, 750A CCA AGM battery with a 3-year warranty.",
			stock:       stock(8),
			ageDays:     15,
		},
		{
			title:       "Bosch Aerotwin Wiper Blades (Pair)",
			category:    kernel.Product,
			subcategory: "Wipers & Vision",
			price:       3800,
			description: "Set of two flat wiper blades with streak-free performance.",
			stock:       stock(40),
			ageDays:     3,
		},
	}

	for _, f := range fixtures {
		price, err := kernel.NewMoney(f.price)
		if err != nil {
			return err
		}
		item, err := catalog.NewItem(
			kernel.NewUUID(),
			f.title,
			f.category,
			f.subcategory,
			price,
			f.description,
			[]string{"https://placehold.co/600x400.png"},
			f.stock,
			f.serviceDuration,
			f.featured,
			now.AddDate(0, 0, -f.ageDays),
		)
		if err != nil {
			return err
		}
		if err := repos.Catalog.Add(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// seedOrders covers every lifecycle status. It returns the order and
// customer IDs keyed by buyer name so the other seeders can cross-link.
func seedOrders(ctx context.Context, repos *Repositories, now time.Time) (map[string]kernel.UUID, map[string]kernel.UUID, error) {
	type fixture struct {
		buyerName   string
		productName string
		category    kernel.ItemCategory
		price       int64
		location    string
		status      order.Status
		paymentType order.PaymentType
		planMonths  int
		age         time.Duration
	}

	fixtures := []fixture{
		{
			buyerName:   "Amina Z.",
			productName: "Comprehensive Oil Change Service",
			category:    kernel.Service,
			price:       3500,
			location:    "Algiers",
			status:      order.Pending,
			paymentType: order.FullPayment,
			age:         24 * time.Hour,
		},
		{
			buyerName:   "Karim B.",
			productName: "Brake Pads (Set of 4)",
			category:    kernel.Product,
			price:       8200,
			location:    "Oran",
			status:      order.Confirmed,
			paymentType: order.InstallmentPlan,
			planMonths:  6,
			age:         48 * time.Hour,
		},
		{
			buyerName:   "Fatima L.",
			productName: "Full Car Detailing",
			category:    kernel.Service,
			price:       12000,
			location:    "Constantine",
			status:      order.InProcess,
			paymentType: order.FullPayment,
			age:         3 * time.Hour,
		},
		{
			buyerName:   "Mehdi S.",
			productName: "Tire Rotation & Balancing",
			category:    kernel.Service,
			price:       2500,
			location:    "Algiers",
			status:      order.Delivered,
			paymentType: order.FullPayment,
			age:         5 * time.Hour,
		},
		{
			buyerName:   "Sara K.",
			productName: "Spark Plugs (NGK)",
			category:    kernel.Product,
			price:       4500,
			location:    "Algiers",
			status:      order.PickedUp,
			paymentType: order.InstallmentPlan,
			planMonths:  3,
			age:         4 * 24 * time.Hour,
		},
		{
			buyerName:   "Youssef M.",
			productName: "Air Filter",
			category:    kernel.Product,
			price:       1800,
			location:    "Oran",
			status:      order.Cancelled,
			paymentType: order.FullPayment,
			age:         30 * time.Minute,
		},
	}

	orderIDs := make(map[string]kernel.UUID, len(fixtures))
	customerIDs := make(map[string]kernel.UUID, len(fixtures))

	for _, f := range fixtures {
		price, err := kernel.NewMoney(f.price)
		if err != nil {
			return nil, nil, err
		}

		var installment *order.InstallmentDetails
		if f.paymentType == order.InstallmentPlan {
			monthly, err := kernel.NewMoney(f.price / int64(f.planMonths))
			if err != nil {
				return nil, nil, err
			}
			nextDue := now.AddDate(0, 1, 0)
			details, err := order.NewInstallmentDetails(f.planMonths, monthly, 1, &nextDue)
			if err != nil {
				return nil, nil, err
			}
			installment = &details
		}

		var pickupTimestamp *time.Time
		if f.status.IsCompleted() {
			picked := now.Add(-f.age / 2)
			pickupTimestamp = &picked
		}

		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		aggregate, err := order.RestoreOrder(
			orderID,
			&customerID,
			f.buyerName,
			f.productName,
			f.category,
			"AutoServe Central Hub - Algiers",
			f.location,
			price,
			f.paymentType,
			installment,
			kernel.GenerateVerificationCode(),
			"",
			f.status,
			pickupTimestamp,
			now.Add(-f.age),
		)
		if err != nil {
			return nil, nil, err
		}
		if err := repos.Orders.Add(ctx, aggregate); err != nil {
			return nil, nil, err
		}

		orderIDs[f.buyerName] = orderID
		customerIDs[f.buyerName] = customerID
	}
	return orderIDs, customerIDs, nil
}

func seedCustomers(ctx context.Context, repos *Repositories, now time.Time,
	orderIDs, customerIDs map[string]kernel.UUID) error {
	type fixture struct {
		name        string
		phone       string
		email       string
		totalSpent  int64
		orderCount  int
		lastOrder   time.Duration
		joinedDays  int
		reviewOrder string
		rating      int
		reviewText  string
	}

	fixtures := []fixture{
		{
			name:        "Amina Z.",
			phone:       "+213 661 000 111",
			email:       "amina.z@example.dz",
			totalSpent:  8500,
			orderCount:  2,
			lastOrder:   24 * time.Hour,
			joinedDays:  30,
			reviewOrder: "Amina Z.",
			rating:      5,
			reviewText:  "Great service, very quick!",
		},
		{
			name:        "Karim B.",
			phone:       "+213 772 222 333",
			email:       "karim.b@example.dz",
			totalSpent:  8200,
			orderCount:  1,
			lastOrder:   48 * time.Hour,
			joinedDays:  25,
			reviewOrder: "Karim B.",
			rating:      4,
			reviewText:  "Good quality parts, but delivery was a bit late.",
		},
		{
			name:       "Fatima L.",
			phone:      "+213 550 444 555",
			email:      "fatima.l@example.dz",
			totalSpent: 12000,
			orderCount: 1,
			lastOrder:  3 * time.Hour,
			joinedDays: 10,
		},
		{
			name:        "Mehdi S.",
			phone:       "+213 790 111 222",
			email:       "mehdi.s@example.dz",
			totalSpent:  2500,
			orderCount:  1,
			lastOrder:   5 * time.Hour,
			joinedDays:  60,
			reviewOrder: "Mehdi S.",
			rating:      5,
			reviewText:  "Wheel alignment was perfect!",
		},
		{
			name:       "Sara K.",
			phone:      "+213 541 888 999",
			email:      "sara.k@example.dz",
			totalSpent: 4500,
			orderCount: 1,
			lastOrder:  4 * 24 * time.Hour,
			joinedDays: 15,
		},
	}

	for _, f := range fixtures {
		var reviews []customer.Review
		if f.reviewOrder != "" {
			review, err := customer.NewReview(
				orderIDs[f.reviewOrder], nil, f.rating, f.reviewText, now.Add(-f.lastOrder))
			if err != nil {
				return err
			}
			reviews = append(reviews, review)
		}

		totalSpent, err := kernel.NewMoney(f.totalSpent)
		if err != nil {
			return err
		}
		lastOrderDate := now.Add(-f.lastOrder)

		id, ok := customerIDs[f.name]
		if !ok {
			id = kernel.NewUUID()
		}
		c, err := customer.NewCustomer(
			id,
			f.name,
			f.phone,
			f.email,
			totalSpent,
			f.orderCount,
			&lastOrderDate,
			reviews,
			now.AddDate(0, 0, -f.joinedDays),
		)
		if err != nil {
			return err
		}
		if err := repos.Customers.Put(c); err != nil {
			return err
		}
	}
	return nil
}

func seedNotifications(ctx context.Context, repos *Repositories, now time.Time,
	orderIDs map[string]kernel.UUID) error {
	pendingID := orderIDs["Amina Z."]
	deliveredID := orderIDs["Mehdi S."]

	type fixture struct {
		message   string
		notifType notification.Type
		relatedID *kernel.UUID
		read      bool
		age       time.Duration
	}

	fixtures := []fixture{
		{
			message:   "New order received from Amina Z. for Comprehensive Oil Change Service.",
			notifType: notification.NewOrder,
			relatedID: &pendingID,
			age:       5 * time.Minute,
		},
		{
			message:   "Low stock alert: Varta Silver Dynamic Car Battery (74Ah) has only 8 units left.",
			notifType: notification.LowStock,
			age:       time.Hour,
		},
		{
			message:   "Amina Z. left a 5-star review for Comprehensive Oil Change Service.",
			notifType: notification.NewReview,
			relatedID: &pendingID,
			read:      true,
			age:       3 * time.Hour,
		},
		{
			message:   "Order for Tire Rotation & Balancing marked as Delivered.",
			notifType: notification.GeneralUpdate,
			relatedID: &deliveredID,
			read:      true,
			age:       2 * time.Hour,
		},
	}

	for _, f := range fixtures {
		n, err := notification.New(f.message, f.notifType, f.relatedID, now.Add(-f.age))
		if err != nil {
			return err
		}
		n.Read = f.read
		if err := repos.Notifications.Add(ctx, &n); err != nil {
			return err
		}
	}
	return nil
}
