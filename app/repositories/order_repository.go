package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/pkg/metrics"
)

// Sentinel errors for order creation. The service layer maps these onto the
// API error taxonomy.
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// OrderLine is one requested (product, quantity) pair before pricing.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder atomically reserves inventory and persists the order with its
// items. On return the order's ID, TotalAmount, Status and Items are set.
//
// Each product row is locked with SELECT ... FOR UPDATE before its inventory
// is checked, and the decrement itself is guarded (inventory >= quantity) so
// stock can never go negative even on drivers where the lock clause is a
// no-op. Any failure rolls back the whole transaction: no partial orders, no
// partial decrements.
//
// Lines are processed in ascending product-id order so that two concurrent
// orders touching the same products always lock rows in the same sequence.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order, lines []OrderLine) error {
	defer metrics.ObserveDBQuery("transaction", time.Now())

	sorted := make([]OrderLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(sorted))

		for _, line := range sorted {
			var product models.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, line.ProductID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", line.ProductID, ErrProductNotFound)
			}
			if err != nil {
				return err
			}

			if product.Inventory < line.Quantity {
				return fmt.Errorf("product %q: %w", product.Title, ErrInsufficientInventory)
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND inventory >= ?", line.ProductID, line.Quantity).
				UpdateColumn("inventory", gorm.Expr("inventory - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %q: %w", product.Title, ErrInsufficientInventory)
			}

			items = append(items, models.OrderItem{
				ProductID:       product.ID,
				Quantity:        line.Quantity,
				PriceAtPurchase: product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		order.Status = models.OrderStatusPending
		order.TotalAmount = total
		order.Items = items
		return tx.Create(order).Error
	})
}

// FindByID loads an order with its items, each item's product and that
// product's category.
func (r *OrderRepository) FindByID(ctx context.Context, id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product.Category").
		First(&order, id).Error
	return order, err
}

// ListByUser returns all orders belonging to userID, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product.Category").
		Where("user_id = ?", userID).
		Order("orders.created_at DESC, orders.id DESC").
		Find(&orders).Error
	return orders, err
}
