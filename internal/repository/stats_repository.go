package repository

import (
	"context"

	"gorm.io/gorm"

	"hawkerhero/internal/model"
)

// StatsRepository answers the counting queries behind the dashboards.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountCenters(ctx context.Context) (int64, error)
	CountStalls(ctx context.Context) (int64, error)
	CountReviews(ctx context.Context) (int64, error)
	CountReviewsByUser(ctx context.Context, userID uint) (int64, error)
	CountFavoritesByUser(ctx context.Context, userID uint) (int64, error)
	CountRecommendationsByUser(ctx context.Context, userID uint) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) count(ctx context.Context, value interface{}, userID *uint) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(value)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.User{}, nil)
}

func (r *statsRepository) CountCenters(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.HawkerCenter{}, nil)
}

func (r *statsRepository) CountStalls(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.Stall{}, nil)
}

func (r *statsRepository) CountReviews(ctx context.Context) (int64, error) {
	return r.count(ctx, &model.Review{}, nil)
}

func (r *statsRepository) CountReviewsByUser(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, &model.Review{}, &userID)
}

func (r *statsRepository) CountFavoritesByUser(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, &model.Favorite{}, &userID)
}

func (r *statsRepository) CountRecommendationsByUser(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, &model.Recommendation{}, &userID)
}
