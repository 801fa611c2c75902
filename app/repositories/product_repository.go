package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/pkg/metrics"
	"github.com/merchstore/merchstore/pkg/pagination"
)

// ProductFilter describes one catalogue read. Search and Category are
// independent and AND-composed; empty means "no filter".
type ProductFilter struct {
	Search   string
	Category string
	Window   pagination.Params
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns one page of matching products (Category preloaded) plus the
// total matching count before pagination.
//
// Ordering is fixed at products.id ASC. Page boundaries are computed by
// offset, so a non-deterministic order would make page 2 repeat or skip rows
// that appeared on page 1.
func (r *ProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	// Build the filtered query fresh for each finisher; GORM statements are
	// not safely reusable across Count and Find.
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Product{})

		if filter.Search != "" {
			q = q.Where("LOWER(products.title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
		}
		if filter.Category != "" {
			q = q.Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.name = ?", filter.Category)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := base().
		Preload("Category").
		Order("products.id ASC").
		Offset(filter.Window.Offset()).
		Limit(filter.Window.Limit()).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, id).Error
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.WithContext(ctx).Create(product).Error
}
