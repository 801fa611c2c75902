package services_test

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
	"github.com/merchstore/merchstore/pkg/auth"
)

var dbSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svctestdb%d?mode=memory&cache=shared", dbSeq.Add(1))
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

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Email:         email,
		Password:      hash,
		FirstName:     "Test",
		LastName:      "User",
		StreetAddress: "12 Maple Street",
		City:          "Portland",
		State:         "OR",
		PostalCode:    "97201",
		Country:       "USA",
		IsActive:      active,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, title, priceStr string, inventory int) models.Product {
	t.Helper()

	category := models.Category{Name: "Electronics " + title, Slug: "electronics-" + title}
	require.NoError(t, db.Where("name = ?", category.Name).FirstOrCreate(&category).Error)

	product := models.Product{
		Title:      title,
		Price:      price(priceStr),
		Inventory:  inventory,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
