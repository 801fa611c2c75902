package controllers

import (
	"net/http"
	"strconv"

	"github.com/merchstore/merchstore/app/services"
	"github.com/merchstore/merchstore/pkg/response"
)

// ProductController serves catalogue endpoints.
type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// List handles GET /api/v1/products.
//
// Query parameters: search (case-insensitive title substring), category
// (exact name), page, page_size. Non-numeric page values are treated as
// absent rather than rejected; page_size out of range is a 422.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, err := strconv.Atoi(q.Get("page_size"))
	if err != nil && q.Get("page_size") != "" {
		response.ValidationError(w, map[string]string{"page_size": "The page_size field must be an integer."})
		return
	}

	result, err := c.products.List(r.Context(), services.ProductListQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Categories handles GET /api/v1/categories.
func (c *ProductController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.products.Categories(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
