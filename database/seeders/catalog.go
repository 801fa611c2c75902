package seeders

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/app/repositories"
	"github.com/merchstore/merchstore/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
	Register("catalog", SeedCatalog)
}

// SeedUsers inserts demo customer accounts. Idempotent: existing emails are
// left untouched.
func SeedUsers(db *gorm.DB) error {
	users := []models.User{
		{
			Email:         "alice@example.com",
			FirstName:     "Alice",
			LastName:      "Nguyen",
			Phone:         "555-0101",
			StreetAddress: "12 Maple Street",
			City:          "Portland",
			State:         "OR",
			PostalCode:    "97201",
			Country:       "USA",
			IsActive:      true,
		},
		{
			Email:         "bob@example.com",
			FirstName:     "Bob",
			LastName:      "Marsh",
			Phone:         "555-0102",
			StreetAddress: "88 Harbor Ave",
			City:          "Seattle",
			State:         "WA",
			PostalCode:    "98101",
			Country:       "USA",
			IsActive:      true,
		},
		{
			Email:     "inactive@example.com",
			FirstName: "Ivy",
			LastName:  "Stone",
			IsActive:  false,
		},
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	for i := range users {
		users[i].Password = hash
		if err := db.Where("email = ?", users[i].Email).
			FirstOrCreate(&users[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog inserts the demo categories and products. Idempotent: lookups
// are by unique name/title, so re-running never duplicates rows.
func SeedCatalog(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Apparel", Slug: "apparel"},
		{Name: "Home & Kitchen", Slug: "home-kitchen"},
		{Name: "Books", Slug: "books"},
		{Name: "Sports & Outdoors", Slug: "sports-outdoors"},
	}

	// Categories go through the repository so the cached list is
	// invalidated when seeding introduces a new one.
	ctx := context.Background()
	repo := repositories.NewCategoryRepository(db)

	byName := make(map[string]uint, len(categories))
	for i := range categories {
		existing, err := repo.FindByName(ctx, categories[i].Name)
		switch {
		case err == nil:
			categories[i] = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := repo.Create(ctx, &categories[i]); err != nil {
				return err
			}
		default:
			return err
		}
		byName[categories[i].Name] = categories[i].ID
	}

	type seedProduct struct {
		title       string
		description string
		price       string
		inventory   int
		category    string
	}

	products := []seedProduct{
		{"Wireless Headphones", "Over-ear noise cancelling headphones with 30-hour battery.", "129.99", 40, "Electronics"},
		{"Bluetooth Speaker", "Portable speaker, waterproof, 12-hour playtime.", "59.99", 65, "Electronics"},
		{"USB-C Charging Cable", "Braided 2m cable, fast charge.", "12.50", 200, "Electronics"},
		{"4K Action Camera", "Compact action camera with image stabilisation.", "249.00", 15, "Electronics"},
		{"Classic Cotton T-Shirt", "Soft crew-neck tee in midnight navy.", "19.99", 120, "Apparel"},
		{"Thermal Running Jacket", "Lightweight windproof shell for cold mornings.", "84.50", 35, "Apparel"},
		{"Cast Iron Skillet", "Pre-seasoned 10-inch skillet.", "34.95", 50, "Home & Kitchen"},
		{"French Press", "8-cup borosilicate glass coffee press.", "27.99", 45, "Home & Kitchen"},
		{"The Go Programming Handbook", "A practical guide to writing production services.", "42.00", 80, "Books"},
		{"Trail Water Bottle", "Insulated 750ml stainless bottle.", "24.99", 150, "Sports & Outdoors"},
		{"Camping Headlamp", "Rechargeable 400-lumen headlamp.", "31.75", 70, "Sports & Outdoors"},
	}

	for _, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return err
		}

		product := models.Product{
			Title:       p.title,
			Description: p.description,
			Price:       price,
			Inventory:   p.inventory,
			CategoryID:  byName[p.category],
		}
		if err := db.Where("title = ?", p.title).
			FirstOrCreate(&product).Error; err != nil {
			return err
		}
	}
	return nil
}
