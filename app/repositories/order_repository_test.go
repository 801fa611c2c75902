package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/app/repositories"
)

func TestCreateOrderDecrementsInventoryAndTotals(t *testing.T) {
	db := newTestDB(t)
	electronics, _ := seedCatalog(t, db)
	user := seedUser(t, db, "buyer@example.com")
	repo := repositories.NewOrderRepository(db)

	var headphones, speaker models.Product
	require.NoError(t, db.Where("title = ?", "Wireless Headphones").First(&headphones).Error)
	require.NoError(t, db.Where("title = ?", "Bluetooth Speaker").First(&speaker).Error)
	assert.Equal(t, electronics.ID, headphones.CategoryID)

	order := models.Order{UserID: user.ID}
	err := repo.CreateOrder(context.Background(), &order, []repositories.OrderLine{
		{ProductID: headphones.ID, Quantity: 2},
		{ProductID: speaker.ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// 2 * 129.99 + 59.99 = 319.97
	assert.True(t, order.TotalAmount.Equal(price("319.97")),
		"total %s", order.TotalAmount)

	// One struct per lookup: reusing a loaded model adds its primary key to
	// the next query's conditions.
	var headphonesAfter models.Product
	require.NoError(t, db.First(&headphonesAfter, headphones.ID).Error)
	assert.Equal(t, 38, headphonesAfter.Inventory)

	var speakerAfter models.Product
	require.NoError(t, db.First(&speakerAfter, speaker.ID).Error)
	assert.Equal(t, 64, speakerAfter.Inventory)
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	user := seedUser(t, db, "buyer@example.com")
	repo := repositories.NewOrderRepository(db)

	var headphones models.Product
	require.NoError(t, db.Where("title = ?", "Wireless Headphones").First(&headphones).Error)

	order := models.Order{UserID: user.ID}
	require.NoError(t, repo.CreateOrder(context.Background(), &order, []repositories.OrderLine{
		{ProductID: headphones.ID, Quantity: 1},
	}))

	// Reprice the product after the order was placed.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", headphones.ID).
		Update("price", price("999.99")).Error)

	reloaded, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.True(t, reloaded.Items[0].PriceAtPurchase.Equal(price("129.99")),
		"snapshot price %s", reloaded.Items[0].PriceAtPurchase)
	assert.True(t, reloaded.TotalAmount.Equal(price("129.99")))
}

func TestCreateOrderInsufficientInventoryRollsBack(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	user := seedUser(t, db, "buyer@example.com")
	repo := repositories.NewOrderRepository(db)

	var headphones, headband models.Product
	require.NoError(t, db.Where("title = ?", "Wireless Headphones").First(&headphones).Error)
	require.NoError(t, db.Where("title = ?", "Headband").First(&headband).Error)

	// First line is satisfiable, second is not; nothing may stick.
	order := models.Order{UserID: user.ID}
	err := repo.CreateOrder(context.Background(), &order, []repositories.OrderLine{
		{ProductID: headphones.ID, Quantity: 1},
		{ProductID: headband.ID, Quantity: 10_000},
	})
	require.ErrorIs(t, err, repositories.ErrInsufficientInventory)

	var after models.Product
	require.NoError(t, db.First(&after, headphones.ID).Error)
	assert.Equal(t, 40, after.Inventory, "first line decrement must be rolled back")

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(0), orderCount)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	user := seedUser(t, db, "buyer@example.com")
	repo := repositories.NewOrderRepository(db)

	order := models.Order{UserID: user.ID}
	err := repo.CreateOrder(context.Background(), &order, []repositories.OrderLine{
		{ProductID: 99999, Quantity: 1},
	})
	require.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestListByUserNewestFirstAndScoped(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	repo := repositories.NewOrderRepository(db)

	var headphones models.Product
	require.NoError(t, db.Where("title = ?", "Wireless Headphones").First(&headphones).Error)

	var first, second, other models.Order
	first = models.Order{UserID: alice.ID}
	require.NoError(t, repo.CreateOrder(context.Background(), &first, []repositories.OrderLine{{ProductID: headphones.ID, Quantity: 1}}))
	second = models.Order{UserID: alice.ID}
	require.NoError(t, repo.CreateOrder(context.Background(), &second, []repositories.OrderLine{{ProductID: headphones.ID, Quantity: 2}}))
	other = models.Order{UserID: bob.ID}
	require.NoError(t, repo.CreateOrder(context.Background(), &other, []repositories.OrderLine{{ProductID: headphones.ID, Quantity: 1}}))

	orders, err := repo.ListByUser(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID, "newest order first")
	assert.Equal(t, first.ID, orders[1].ID)

	for _, o := range orders {
		assert.Equal(t, alice.ID, o.UserID)
		require.NotEmpty(t, o.Items)
		require.NotNil(t, o.Items[0].Product)
		assert.Equal(t, "Wireless Headphones", o.Items[0].Product.Title)
	}
}
