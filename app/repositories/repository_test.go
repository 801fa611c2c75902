package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/merchstore/merchstore/app/models"
)

var dbSeq atomic.Int64

// newTestDB opens a fresh in-memory database with the full schema. Each test
// gets its own named shared-cache database so parallel tests never collide.
// MaxOpenConns is pinned to 1 so concurrent transactions serialise at the
// pool instead of hitting SQLITE_BUSY.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// seedCatalog inserts two categories and a small product set used across the
// repository tests.
func seedCatalog(t *testing.T, db *gorm.DB) (electronics, apparel models.Category) {
	t.Helper()

	electronics = models.Category{Name: "Electronics", Slug: "electronics"}
	apparel = models.Category{Name: "Apparel", Slug: "apparel"}
	require.NoError(t, db.Create(&electronics).Error)
	require.NoError(t, db.Create(&apparel).Error)

	products := []models.Product{
		{Title: "Wireless Headphones", Price: price("129.99"), Inventory: 40, CategoryID: electronics.ID},
		{Title: "Bluetooth Speaker", Price: price("59.99"), Inventory: 65, CategoryID: electronics.ID},
		{Title: "USB-C Charging Cable", Price: price("12.50"), Inventory: 200, CategoryID: electronics.ID},
		{Title: "Headband", Price: price("9.99"), Inventory: 30, CategoryID: apparel.ID},
		{Title: "Classic Cotton T-Shirt", Price: price("19.99"), Inventory: 120, CategoryID: apparel.ID},
	}
	require.NoError(t, db.Create(&products).Error)
	return electronics, apparel
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:         email,
		Password:      "x",
		FirstName:     "Test",
		LastName:      "User",
		StreetAddress: "12 Maple Street",
		City:          "Portland",
		State:         "OR",
		PostalCode:    "97201",
		Country:       "USA",
		IsActive:      true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
