package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hawkerhero/internal/model"
)

const (
	colFavoriteID    Column = "f.id"
	colFavoriteUser  Column = "f.user_id"
	colFavoriteNotes Column = "f.notes"
	colFavFoodName   Column = "fd.name"
)

const favoriteRowSelect = "f.id AS id, f.user_id AS user_id, u.username AS username, " +
	"f.stall_id AS stall_id, s.name AS stall_name, s.location AS location, hc.name AS center_name, " +
	"f.food_id AS food_id, fd.name AS food_name, f.notes AS notes, " +
	"f.created_at AS created_at, f.updated_at AS updated_at"

const favoriteOrder = "f.created_at DESC, f.id DESC"

// FavoriteFilter narrows a favorite listing. A nil UserID lists every user.
type FavoriteFilter struct {
	UserID *uint
	Search string
}

// FavoriteRepository defines favorite persistence operations.
type FavoriteRepository interface {
	List(ctx context.Context, f FavoriteFilter, page Page) (*Result[model.FavoriteRow], error)
	RecentByUser(ctx context.Context, userID uint, limit int) ([]model.FavoriteRow, error)
	FindByID(ctx context.Context, id uint) (*model.Favorite, error)
	FindRowByID(ctx context.Context, id uint) (*model.FavoriteRow, error)
	FindExisting(ctx context.Context, userID uint, stallID, foodID *uint) (*model.Favorite, error)
	CreateIfAbsent(ctx context.Context, fav *model.Favorite) (bool, error)
	UpdateNotes(ctx context.Context, id uint, notes *string, at time.Time) error
	Delete(ctx context.Context, id uint) error
	Popular(ctx context.Context, excludeUserID uint, limit int) ([]model.PopularItem, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) from(preds []Predicate) func() *gorm.DB {
	return func() *gorm.DB {
		q := r.db.Table("favorites f").
			Joins("JOIN users u ON u.id = f.user_id").
			Joins("LEFT JOIN stalls s ON s.id = f.stall_id").
			Joins("LEFT JOIN hawker_centers hc ON hc.id = s.center_id").
			Joins("LEFT JOIN food_items fd ON fd.id = f.food_id")
		return applyAll(q, preds)
	}
}

func (r *favoriteRepository) List(ctx context.Context, f FavoriteFilter, page Page) (*Result[model.FavoriteRow], error) {
	preds := []Predicate{Contains(f.Search, colStallName, colFavFoodName, colUsername, colFavoriteNotes)}
	if f.UserID != nil {
		preds = append(preds, Equals(colFavoriteUser, *f.UserID))
	}
	return paginate[model.FavoriteRow](ctx, r.from(preds), favoriteRowSelect, favoriteOrder, page)
}

func (r *favoriteRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]model.FavoriteRow, error) {
	var rows []model.FavoriteRow
	err := r.from([]Predicate{Equals(colFavoriteUser, userID)})().WithContext(ctx).
		Select(favoriteRowSelect).
		Order(favoriteOrder).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *favoriteRepository) FindByID(ctx context.Context, id uint) (*model.Favorite, error) {
	var fav model.Favorite
	if err := r.db.WithContext(ctx).First(&fav, id).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepository) FindRowByID(ctx context.Context, id uint) (*model.FavoriteRow, error) {
	var row model.FavoriteRow
	err := r.from([]Predicate{Equals(colFavoriteID, id)})().WithContext(ctx).
		Select(favoriteRowSelect).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindExisting returns the favorite of userID that targets the same stall or
// the same food item, if any.
func (r *favoriteRepository) FindExisting(ctx context.Context, userID uint, stallID, foodID *uint) (*model.Favorite, error) {
	if stallID == nil && foodID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	switch {
	case stallID != nil && foodID != nil:
		q = q.Where("(stall_id = ? OR food_id = ?)", *stallID, *foodID)
	case stallID != nil:
		q = q.Where("stall_id = ?", *stallID)
	default:
		q = q.Where("food_id = ?", *foodID)
	}
	var fav model.Favorite
	if err := q.First(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

// CreateIfAbsent inserts fav unless a unique index already holds the same
// target for the user. It reports whether a row was created.
func (r *favoriteRepository) CreateIfAbsent(ctx context.Context, fav *model.Favorite) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fav)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *favoriteRepository) UpdateNotes(ctx context.Context, id uint, notes *string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"notes": notes, "updated_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &model.Favorite{}, id)
}

// Popular aggregates what other users favorited, most favorited first.
// Owner details never leave this query.
func (r *favoriteRepository) Popular(ctx context.Context, excludeUserID uint, limit int) ([]model.PopularItem, error) {
	var items []model.PopularItem
	err := r.db.WithContext(ctx).
		Table("favorites f").
		Select("f.stall_id AS stall_id, s.name AS stall_name, f.food_id AS food_id, fd.name AS food_name, COUNT(*) AS count").
		Joins("LEFT JOIN stalls s ON s.id = f.stall_id").
		Joins("LEFT JOIN food_items fd ON fd.id = f.food_id").
		Where("f.user_id <> ?", excludeUserID).
		Group("f.stall_id, s.name, f.food_id, fd.name").
		Order("count DESC, stall_name ASC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
