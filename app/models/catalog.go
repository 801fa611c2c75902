package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category is read-mostly reference data for grouping products.
type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;size:100;not null" json:"slug"`
}

// Product is a catalogue entry. Price is fixed-point decimal; float64 money
// drifts under arithmetic and is banned from this schema.
type Product struct {
	gorm.Model
	Title       string          `gorm:"size:200;not null;index" json:"title"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Inventory   int             `gorm:"not null;default:0;check:inventory >= 0" json:"inventory"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
