package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepanel/internal/core/domain/model/order"
)

func TestSeedPopulatesAllStores(t *testing.T) {
	repos := NewRepositories()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repos, time.Now().UTC()))

	profile, err := repos.Profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AutoServe Central Hub - Algiers", profile.Name())

	items, err := repos.Catalog.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 6)

	lowStock, err := repos.Catalog.GetAllLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, lowStock, 1)
	assert.Equal(t, "Varta Silver Dynamic Car Battery (74Ah)", lowStock[0].Title())

	orders, err := repos.Orders.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 6)

	seen := make(map[order.Status]int)
	for _, o := range orders {
		seen[o.Status()]++
	}
	for _, status := range []order.Status{
		order.Pending, order.Confirmed, order.InProcess,
		order.PickedUp, order.Delivered, order.Cancelled,
	} {
		assert.Equal(t, 1, seen[status], "status %s", status)
	}

	customers, err := repos.Customers.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 5)

	reviews, err := repos.Customers.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	notifications, err := repos.Notifications.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 4)

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	assert.Equal(t, 2, unread)
}

func TestSeededOrdersLinkToCustomers(t *testing.T) {
	repos := NewRepositories()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repos, time.Now().UTC()))

	orders, err := repos.Orders.GetAll(ctx)
	require.NoError(t, err)

	linked := 0
	for _, o := range orders {
		if o.CustomerID() == nil {
			continue
		}
		if _, err := repos.Customers.Get(ctx, *o.CustomerID()); err == nil {
			linked++
		}
	}
	// Youssef M. has no customer record; everyone else does.
	assert.Equal(t, 5, linked)
}
