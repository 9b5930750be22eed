package repository

import (
	"context"

	"gorm.io/gorm"

	"hawkerhero/internal/model"
)

const colUsername Column = "u.username"

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error)
	ListWithFavorites(ctx context.Context) ([]model.Option, error)
	ListWithRecommendations(ctx context.Context) ([]model.Option, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", email, username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListWithFavorites returns the users that own at least one favorite.
func (r *userRepository) ListWithFavorites(ctx context.Context) ([]model.Option, error) {
	return r.listJoined(ctx, "favorites")
}

// ListWithRecommendations returns the users that authored a recommendation.
func (r *userRepository) ListWithRecommendations(ctx context.Context) ([]model.Option, error) {
	return r.listJoined(ctx, "recommendations")
}

func (r *userRepository) listJoined(ctx context.Context, table string) ([]model.Option, error) {
	var opts []model.Option
	err := r.db.WithContext(ctx).
		Table("users u").
		Select("DISTINCT u.id AS id, u.username AS name").
		Joins("JOIN "+table+" t ON t.user_id = u.id").
		Order("u.username ASC").
		Scan(&opts).Error
	if err != nil {
		return nil, err
	}
	return opts, nil
}
