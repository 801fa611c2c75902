package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/pkg/cache"
	"github.com/merchstore/merchstore/pkg/metrics"
)

const (
	categoryListCacheKey = "categories:all"
	categoryListCacheTTL = 5 * time.Minute
)

// CategoryRepository handles database operations for Category. The full
// category list changes rarely, so it is served from Redis when available.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// All returns every category ordered by name, preferring the cached copy.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if cache.Get(categoryListCacheKey, &categories) {
		return categories, nil
	}

	defer metrics.ObserveDBQuery("select", time.Now())

	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	// Best effort; a failed cache write never fails the read.
	_ = cache.Set(categoryListCacheKey, categories, categoryListCacheTTL)
	return categories, nil
}

// FindByName looks up a category by exact name.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (models.Category, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var category models.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	return category, err
}

// Create persists a new category and invalidates the cached list.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return err
	}
	_ = cache.Del(categoryListCacheKey)
	return nil
}
