package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/app/repositories"
	"github.com/merchstore/merchstore/pkg/apperr"
	"github.com/merchstore/merchstore/pkg/collection"
	"github.com/merchstore/merchstore/pkg/logger"
	"github.com/merchstore/merchstore/pkg/metrics"
)

// OrderItemInput is one requested line of a new order. Item-level rules are
// enforced by validateOrderInput because tag validation does not descend
// into slices.
type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderInput is the create-order request body. The shipping fields are
// optional; any left empty falls back to the caller's stored address.
type OrderInput struct {
	Items []OrderItemInput `json:"items" validate:"required"`

	ShippingStreet     string `json:"shipping_street,omitempty"`
	ShippingCity       string `json:"shipping_city,omitempty"`
	ShippingState      string `json:"shipping_state,omitempty"`
	ShippingPostalCode string `json:"shipping_postal_code,omitempty"`
	ShippingCountry    string `json:"shipping_country,omitempty"`
}

// OrderService creates and lists orders.
type OrderService struct {
	orders *repositories.OrderRepository
	users  *repositories.UserRepository
}

func NewOrderService(orders *repositories.OrderRepository, users *repositories.UserRepository) *OrderService {
	return &OrderService{orders: orders, users: users}
}

// PlaceOrder creates an order for userID. Pricing and the shipping address
// are snapshotted inside the same transaction that reserves inventory, so a
// returned order is immune to later product or profile edits.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, input OrderInput) (models.Order, error) {
	if fields := validateOrderInput(input); len(fields) > 0 {
		return models.Order{}, apperr.Validation(fields)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, apperr.New(apperr.CodeUnauthorized, "Unknown user")
		}
		return models.Order{}, apperr.Wrap(apperr.CodeDatabase, "Could not load user", err)
	}

	lines := collection.Map(input.Items, func(item OrderItemInput) repositories.OrderLine {
		return repositories.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity}
	})

	order := models.Order{
		UserID:             user.ID,
		ShippingStreet:     fallback(input.ShippingStreet, user.StreetAddress),
		ShippingCity:       fallback(input.ShippingCity, user.City),
		ShippingState:      fallback(input.ShippingState, user.State),
		ShippingPostalCode: fallback(input.ShippingPostalCode, user.PostalCode),
		ShippingCountry:    fallback(input.ShippingCountry, user.Country),
	}

	if err := s.orders.CreateOrder(ctx, &order, lines); err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductNotFound):
			return models.Order{}, apperr.Wrap(apperr.CodeNotFound, "Product not found", err)
		case errors.Is(err, repositories.ErrInsufficientInventory):
			metrics.InventoryConflicts.Inc()
			return models.Order{}, apperr.Wrap(apperr.CodeInsufficientInventory, "Insufficient inventory for one or more items", err)
		default:
			logger.WithCtx(ctx).Error("order creation failed", "user_id", userID, "error", err)
			return models.Order{}, apperr.Wrap(apperr.CodeDatabase, "Could not create order", err)
		}
	}

	metrics.OrdersCreated.Inc()

	// Reload so the response carries each item's product and category.
	created, err := s.orders.FindByID(ctx, order.ID)
	if err != nil {
		// The order exists; return what we have rather than failing the call.
		logger.WithCtx(ctx).Warn("order reload failed", "order_id", order.ID, "error", err)
		return order, nil
	}
	return created, nil
}

// ListOrders returns every order belonging to userID, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "Could not load orders", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// validateOrderInput checks structural validity of the request: at least one
// item, positive ids and quantities, and no duplicate product lines.
func validateOrderInput(input OrderInput) map[string]string {
	fields := map[string]string{}

	if len(input.Items) == 0 {
		fields["items"] = "The items field is required."
		return fields
	}

	seen := make(map[uint]bool, len(input.Items))
	for i, item := range input.Items {
		if item.ProductID < 1 {
			fields[itemField(i, "product_id")] = "The product_id field must be at least 1."
		}
		if item.Quantity < 1 {
			fields[itemField(i, "quantity")] = "The quantity field must be at least 1."
		}
		if item.ProductID >= 1 && seen[item.ProductID] {
			fields[itemField(i, "product_id")] = "The product_id field must not repeat within an order."
		}
		seen[item.ProductID] = true
	}
	return fields
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

func itemField(i int, name string) string {
	return "items." + strconv.Itoa(i) + "." + name
}
