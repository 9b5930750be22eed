package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hawkerhero/internal/model"
)

const (
	colReviewRating  Column = "rv.rating"
	colReviewComment Column = "rv.comment"
	colReviewUser    Column = "rv.user_id"
	colReviewStall   Column = "rv.stall_id"
	colFoodStallOf   Column = "f.stall_id"
	colFoodPriceOf   Column = "f.price"
)

var reviewSorts = map[string]string{
	"recent":  "rv.created_at DESC, rv.id DESC",
	"oldest":  "rv.created_at ASC, rv.id ASC",
	"highest": "rv.rating DESC, rv.created_at DESC",
	"lowest":  "rv.rating ASC, rv.created_at DESC",
}

const reviewRowSelect = "rv.*, u.username AS username, s.name AS stall_name, " +
	"s.location AS location, s.image_url AS stall_image, hc.name AS center_name"

// ReviewFilter narrows a review listing. Price bounds match stalls that sell
// at least one food item inside the range.
type ReviewFilter struct {
	Rating    *int
	StallName string
	StallID   *uint
	UserID    *uint
	Search    string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	Sort      string
}

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	List(ctx context.Context, f ReviewFilter, page Page) (*Result[model.ReviewRow], error)
	AverageRating(ctx context.Context, f ReviewFilter) (float64, error)
	RecentByUser(ctx context.Context, userID uint, limit int) ([]model.ReviewRow, error)
	FindByID(ctx context.Context, id uint) (*model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) predicates(f ReviewFilter) []Predicate {
	preds := []Predicate{Contains(f.Search, colStallName, colReviewComment, colUsername)}
	if f.Rating != nil {
		preds = append(preds, Equals(colReviewRating, *f.Rating))
	}
	if f.StallName != "" {
		preds = append(preds, Equals(colStallName, f.StallName))
	}
	if f.StallID != nil {
		preds = append(preds, Equals(colReviewStall, *f.StallID))
	}
	if f.UserID != nil {
		preds = append(preds, Equals(colReviewUser, *f.UserID))
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		var bounds []Predicate
		if f.MinPrice != nil {
			bounds = append(bounds, AtLeast(colFoodPriceOf, *f.MinPrice))
		}
		if f.MaxPrice != nil {
			bounds = append(bounds, AtMost(colFoodPriceOf, *f.MaxPrice))
		}
		preds = append(preds, Exists(func() *gorm.DB {
			sub := r.db.Table("food_items f").Select("1").Where(string(colFoodStallOf) + " = s.id")
			return applyAll(sub, bounds)
		}))
	}
	return preds
}

func (r *reviewRepository) from(preds []Predicate) func() *gorm.DB {
	return func() *gorm.DB {
		q := r.db.Table("reviews rv").
			Joins("JOIN users u ON u.id = rv.user_id").
			Joins("JOIN stalls s ON s.id = rv.stall_id").
			Joins("LEFT JOIN hawker_centers hc ON hc.id = s.center_id")
		return applyAll(q, preds)
	}
}

func (r *reviewRepository) List(ctx context.Context, f ReviewFilter, page Page) (*Result[model.ReviewRow], error) {
	return paginate[model.ReviewRow](ctx, r.from(r.predicates(f)),
		reviewRowSelect, orderBy(reviewSorts, f.Sort, "recent"), page)
}

// AverageRating is the mean rating over every review matching f, 0 when none.
func (r *reviewRepository) AverageRating(ctx context.Context, f ReviewFilter) (float64, error) {
	var avg float64
	err := r.from(r.predicates(f))().WithContext(ctx).
		Select("COALESCE(AVG(rv.rating), 0)").
		Row().Scan(&avg)
	return avg, err
}

func (r *reviewRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]model.ReviewRow, error) {
	var rows []model.ReviewRow
	err := r.from([]Predicate{Equals(colReviewUser, userID)})().WithContext(ctx).
		Select(reviewRowSelect).
		Order(reviewSorts["recent"]).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).
		Model(review).
		Select("stall_id", "rating", "comment", "updated_at").
		Updates(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &model.Review{}, id)
}
