package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/merchstore/merchstore/app/models"
	"github.com/merchstore/merchstore/pkg/metrics"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.WithContext(ctx).Create(user).Error
}
