package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/app/repositories"
	"github.com/merchstore/merchstore/app/services"
	"github.com/merchstore/merchstore/pkg/apperr"
)

func TestPlaceOrderSnapshotsAddress(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com", "password123", true)
	product := seedProduct(t, db, "Wireless Headphones", "129.99", 10)

	svc := services.NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
	)

	order, err := svc.PlaceOrder(context.Background(), user.ID, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "12 Maple Street", order.ShippingStreet)
	assert.Equal(t, "Portland", order.ShippingCity)

	// Move the user; the placed order must keep the old address.
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("street_address", "99 New Road").Error)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, "12 Maple Street", stored.ShippingStreet)
}

func TestPlaceOrderShippingOverride(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com", "password123", true)
	product := seedProduct(t, db, "Wireless Headphones", "129.99", 10)

	svc := services.NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
	)

	order, err := svc.PlaceOrder(context.Background(), user.ID, services.OrderInput{
		Items:          []services.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingStreet: "7 Gift Lane",
		ShippingCity:   "Denver",
	})
	require.NoError(t, err)

	// Overridden fields win; the rest fall back to the stored address.
	assert.Equal(t, "7 Gift Lane", order.ShippingStreet)
	assert.Equal(t, "Denver", order.ShippingCity)
	assert.Equal(t, "OR", order.ShippingState)
	assert.Equal(t, "97201", order.ShippingPostalCode)
}

func TestPlaceOrderValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com", "password123", true)

	svc := services.NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
	)

	cases := []struct {
		name  string
		input services.OrderInput
	}{
		{"empty items", services.OrderInput{}},
		{"zero quantity", services.OrderInput{Items: []services.OrderItemInput{{ProductID: 1, Quantity: 0}}}},
		{"zero product id", services.OrderInput{Items: []services.OrderItemInput{{ProductID: 0, Quantity: 1}}}},
		{"duplicate product", services.OrderInput{Items: []services.OrderItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 1, Quantity: 2},
		}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(context.Background(), user.ID, c.input)
			require.Error(t, err)
			assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
		})
	}
}

func TestPlaceOrderInsufficientInventoryCode(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com", "password123", true)
	product := seedProduct(t, db, "Wireless Headphones", "129.99", 3)

	svc := services.NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
	)

	_, err := svc.PlaceOrder(context.Background(), user.ID, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: product.ID, Quantity: 4}},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInsufficientInventory, apperr.CodeOf(err))
}

func TestPlaceOrderUnknownProductCode(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com", "password123", true)

	svc := services.NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
	)

	_, err := svc.PlaceOrder(context.Background(), user.ID, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: 12345, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

// Two buyers race for the last unit: exactly one order may succeed and
// inventory must end at zero, never below.
func TestPlaceOrderLastUnitRace(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@example.com", "password123", true)
	bob := seedUser(t, db, "bob@example.com", "password123", true)
	product := seedProduct(t, db, "4K Action Camera", "249.00", 1)

	svc := services.NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
	)

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, userID := range []uint{alice.ID, bob.ID} {
		wg.Add(1)
		go func(slot int, uid uint) {
			defer wg.Done()
			_, results[slot] = svc.PlaceOrder(context.Background(), uid, services.OrderInput{
				Items: []services.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
			})
		}(i, userID)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case apperr.CodeOf(err) == apperr.CodeInsufficientInventory:
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one order wins the last unit")
	assert.Equal(t, 1, conflicted)

	var after models.Product
	require.NoError(t, db.First(&after, product.ID).Error)
	assert.Equal(t, 0, after.Inventory)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)
}

func TestListOrdersEmptyIsNotNil(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com", "password123", true)

	svc := services.NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewUserRepository(db),
	)

	orders, err := svc.ListOrders(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
