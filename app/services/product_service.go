package services

import (
	"context"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/app/repositories"
	"github.com/merchstore/merchstore/pkg/apperr"
	"github.com/merchstore/merchstore/pkg/pagination"
)

// ProductPage is one page of catalogue results plus the paging metadata
// clients need to iterate.
type ProductPage struct {
	Products   []models.Product `json:"products"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ProductListQuery is the raw, unvalidated query input from the controller.
type ProductListQuery struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

// ProductService serves catalogue reads.
type ProductService struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func NewProductService(products *repositories.ProductRepository, categories *repositories.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// List returns one page of products matching the query. An unknown category
// name is not an error; it simply matches nothing.
func (s *ProductService) List(ctx context.Context, q ProductListQuery) (ProductPage, error) {
	window, err := pagination.Normalize(q.Page, q.PageSize)
	if err != nil {
		return ProductPage{}, apperr.Validation(map[string]string{"page_size": err.Error()})
	}

	products, total, err := s.products.List(ctx, repositories.ProductFilter{
		Search:   q.Search,
		Category: q.Category,
		Window:   window,
	})
	if err != nil {
		return ProductPage{}, apperr.Wrap(apperr.CodeDatabase, "Could not load products", err)
	}

	if products == nil {
		products = []models.Product{}
	}

	return ProductPage{
		Products:   products,
		Total:      total,
		Page:       window.Page,
		PageSize:   window.PageSize,
		TotalPages: pagination.TotalPages(total, window.PageSize),
	}, nil
}

// Categories returns every category for catalogue filtering.
func (s *ProductService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "Could not load categories", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
