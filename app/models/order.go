package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is a placed order. The shipping fields are a snapshot of the
// destination at creation time: editing the user's address later must not
// rewrite where a historical order shipped.
type Order struct {
	gorm.Model
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Status      string          `gorm:"size:50;not null;default:PENDING;index" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	ShippingStreet     string `gorm:"size:255" json:"shipping_street,omitempty"`
	ShippingCity       string `gorm:"size:100" json:"shipping_city,omitempty"`
	ShippingState      string `gorm:"size:100" json:"shipping_state,omitempty"`
	ShippingPostalCode string `gorm:"size:20" json:"shipping_postal_code,omitempty"`
	ShippingCountry    string `gorm:"size:100" json:"shipping_country,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem is one line of an order. PriceAtPurchase is a snapshot of the
// product price when the order was placed; later price changes must not
// alter historical order totals.
type OrderItem struct {
	gorm.Model
	OrderID         uint            `gorm:"not null;index" json:"order_id"`
	ProductID       uint            `gorm:"not null;index" json:"product_id"`
	Quantity        int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_purchase"`
	Product         *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
