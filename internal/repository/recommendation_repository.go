package repository

import (
	"context"

	"gorm.io/gorm"

	"hawkerhero/internal/model"
)

const (
	colRecTip   Column = "r.tip"
	colRecStall Column = "r.stall_id"
	colRecUser  Column = "r.user_id"
)

const recommendationRowSelect = "r.*, u.username AS username, s.name AS stall_name, " +
	"fi.name AS food_name, hc.name AS center_name"

const recommendationOrder = "r.created_at DESC, r.id DESC"

// RecommendationFilter narrows a recommendation listing.
type RecommendationFilter struct {
	Search  string
	StallID *uint
	UserID  *uint
}

// RecommendationRepository defines recommendation persistence operations.
type RecommendationRepository interface {
	List(ctx context.Context, f RecommendationFilter, page Page) (*Result[model.RecommendationRow], error)
	RecentByUser(ctx context.Context, userID uint, limit int) ([]model.RecommendationRow, error)
	FindByID(ctx context.Context, id uint) (*model.Recommendation, error)
	Create(ctx context.Context, rec *model.Recommendation) error
	Update(ctx context.Context, rec *model.Recommendation) error
	Delete(ctx context.Context, id uint) error
}

type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository.
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) from(preds []Predicate) func() *gorm.DB {
	return func() *gorm.DB {
		q := r.db.Table("recommendations r").
			Joins("JOIN users u ON u.id = r.user_id").
			Joins("JOIN stalls s ON s.id = r.stall_id").
			Joins("LEFT JOIN food_items fi ON fi.id = r.food_id").
			Joins("LEFT JOIN hawker_centers hc ON hc.id = s.center_id")
		return applyAll(q, preds)
	}
}

func (r *recommendationRepository) List(ctx context.Context, f RecommendationFilter, page Page) (*Result[model.RecommendationRow], error) {
	preds := []Predicate{Contains(f.Search, colRecTip, colStallName, colUsername)}
	if f.StallID != nil {
		preds = append(preds, Equals(colRecStall, *f.StallID))
	}
	if f.UserID != nil {
		preds = append(preds, Equals(colRecUser, *f.UserID))
	}
	return paginate[model.RecommendationRow](ctx, r.from(preds), recommendationRowSelect, recommendationOrder, page)
}

func (r *recommendationRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]model.RecommendationRow, error) {
	var rows []model.RecommendationRow
	err := r.from([]Predicate{Equals(colRecUser, userID)})().WithContext(ctx).
		Select(recommendationRowSelect).
		Order(recommendationOrder).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recommendationRepository) FindByID(ctx context.Context, id uint) (*model.Recommendation, error) {
	var rec model.Recommendation
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) Create(ctx context.Context, rec *model.Recommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) Update(ctx context.Context, rec *model.Recommendation) error {
	return r.db.WithContext(ctx).
		Model(rec).
		Select("stall_id", "food_id", "tip").
		Updates(rec).Error
}

func (r *recommendationRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &model.Recommendation{}, id)
}
