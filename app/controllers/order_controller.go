package controllers

import (
	"net/http"

	"github.com/merchstore/merchstore/app/services"
	"github.com/merchstore/merchstore/pkg/auth"
	"github.com/merchstore/merchstore/pkg/bind"
	"github.com/merchstore/merchstore/pkg/response"
)

// OrderController serves order endpoints. Every handler requires an
// authenticated identity in the request context.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Create handles POST /api/v1/orders.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var input services.OrderInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.ValidationError(w, map[string]string{"body": err.Error()})
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.PlaceOrder(r.Context(), identity.UserID, input)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Created(w, order)
}

// List handles GET /api/v1/orders.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	orders, err := c.orders.ListOrders(r.Context(), identity.UserID)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}
