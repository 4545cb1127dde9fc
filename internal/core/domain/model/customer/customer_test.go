package customer_test

import (
	"testing"
	"time"

	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	spent, err := kernel.NewMoney(24500)
	require.NoError(t, err)

	t.Run("creates a valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer(
			kernel.NewUUID(), "Amina Zerrouki", "+213 555 000 111",
			"amina@example.dz", spent, 3, nil, nil, time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, 3, c.OrderCount())
		assert.Empty(t, c.Reviews())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := customer.NewCustomer(
			kernel.NewUUID(), "", "", "", spent, 0, nil, nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative order count", func(t *testing.T) {
		_, err := customer.NewCustomer(
			kernel.NewUUID(), "Amina", "", "", spent, -1, nil, nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewReview(t *testing.T) {
	t.Run("accepts ratings 1 through 5", func(t *testing.T) {
		for rating := 1; rating <= 5; rating++ {
			review, err := customer.NewReview(kernel.NewUUID(), nil, rating, "good", time.Now())

			require.NoError(t, err)
			assert.Equal(t, rating, review.Rating)
		}
	})

	t.Run("rejects out-of-range ratings", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := customer.NewReview(kernel.NewUUID(), nil, rating, "", time.Now())
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}
