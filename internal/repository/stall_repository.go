package repository

import (
	"context"

	"gorm.io/gorm"

	"hawkerhero/internal/model"
)

const (
	colStallName     Column = "s.name"
	colStallLocation Column = "s.location"
	colStallCuisine  Column = "s.cuisine"
	colStallCenter   Column = "s.center_id"
)

var stallSorts = map[string]string{
	"recent": "s.created_at DESC, s.id DESC",
	"oldest": "s.created_at ASC, s.id ASC",
	"name":   "s.name ASC, s.id ASC",
}

// StallFilter narrows a stall listing. Zero values are ignored.
type StallFilter struct {
	Search   string
	Cuisine  string
	Location string
	CenterID *uint
	Sort     string
}

// StallRepository defines stall persistence operations.
type StallRepository interface {
	List(ctx context.Context, f StallFilter, page Page) (*Result[model.StallRow], error)
	FindByID(ctx context.Context, id uint) (*model.Stall, error)
	FindByName(ctx context.Context, name string) (*model.Stall, error)
	FindByCenter(ctx context.Context, centerID uint) ([]model.Stall, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CountByCenter(ctx context.Context, centerID uint) (int64, error)
	Create(ctx context.Context, stall *model.Stall) error
	Update(ctx context.Context, stall *model.Stall) error
	Delete(ctx context.Context, id uint) error
	Cuisines(ctx context.Context) ([]string, error)
	Options(ctx context.Context) ([]model.Option, error)
}

type stallRepository struct {
	db *gorm.DB
}

// NewStallRepository creates a new stall repository.
func NewStallRepository(db *gorm.DB) StallRepository {
	return &stallRepository{db: db}
}

func (r *stallRepository) List(ctx context.Context, f StallFilter, page Page) (*Result[model.StallRow], error) {
	preds := []Predicate{
		Contains(f.Search, colStallName),
		Contains(f.Location, colStallLocation),
	}
	if f.Cuisine != "" {
		preds = append(preds, Equals(colStallCuisine, f.Cuisine))
	}
	if f.CenterID != nil {
		preds = append(preds, Equals(colStallCenter, *f.CenterID))
	}
	from := func() *gorm.DB {
		q := r.db.Table("stalls s").
			Joins("LEFT JOIN hawker_centers hc ON hc.id = s.center_id")
		return applyAll(q, preds)
	}
	return paginate[model.StallRow](ctx, from,
		"s.*, hc.name AS center_name",
		orderBy(stallSorts, f.Sort, "recent"), page)
}

func (r *stallRepository) FindByID(ctx context.Context, id uint) (*model.Stall, error) {
	var stall model.Stall
	if err := r.db.WithContext(ctx).First(&stall, id).Error; err != nil {
		return nil, err
	}
	return &stall, nil
}

func (r *stallRepository) FindByName(ctx context.Context, name string) (*model.Stall, error) {
	var stall model.Stall
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&stall).Error; err != nil {
		return nil, err
	}
	return &stall, nil
}

func (r *stallRepository) FindByCenter(ctx context.Context, centerID uint) ([]model.Stall, error) {
	var stalls []model.Stall
	if err := r.db.WithContext(ctx).
		Where("center_id = ?", centerID).
		Order("name ASC").
		Find(&stalls).Error; err != nil {
		return nil, err
	}
	return stalls, nil
}

func (r *stallRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Stall{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *stallRepository) CountByCenter(ctx context.Context, centerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Stall{}).Where("center_id = ?", centerID).Count(&n).Error
	return n, err
}

func (r *stallRepository) Create(ctx context.Context, stall *model.Stall) error {
	return r.db.WithContext(ctx).Create(stall).Error
}

func (r *stallRepository) Update(ctx context.Context, stall *model.Stall) error {
	return r.db.WithContext(ctx).Save(stall).Error
}

// Delete removes the stall; a missing row reports gorm.ErrRecordNotFound.
func (r *stallRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &model.Stall{}, id)
}

func (r *stallRepository) Cuisines(ctx context.Context) ([]string, error) {
	var cuisines []string
	err := r.db.WithContext(ctx).Model(&model.Stall{}).
		Distinct().
		Order("cuisine ASC").
		Pluck("cuisine", &cuisines).Error
	if err != nil {
		return nil, err
	}
	return cuisines, nil
}

// Options lists stalls for dropdowns, grouped by hawker center name.
func (r *stallRepository) Options(ctx context.Context) ([]model.Option, error) {
	var opts []model.Option
	err := r.db.WithContext(ctx).
		Table("stalls s").
		Select("s.id AS id, s.name AS name, COALESCE(hc.name, '') AS `group`").
		Joins("LEFT JOIN hawker_centers hc ON hc.id = s.center_id").
		Order("s.name ASC").
		Scan(&opts).Error
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func deleteByID(db *gorm.DB, value interface{}, id uint) error {
	res := db.Delete(value, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
