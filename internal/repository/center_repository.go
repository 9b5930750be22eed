package repository

import (
	"context"

	"gorm.io/gorm"

	"hawkerhero/internal/model"
)

const (
	colCenterName       Column = "hc.name"
	colCenterAddress    Column = "hc.address"
	colCenterFacilities Column = "hc.facilities"
)

var centerSorts = map[string]string{
	"name":   "hc.name ASC, hc.id ASC",
	"recent": "hc.created_at DESC, hc.id DESC",
	"stalls": "stall_count DESC, hc.name ASC",
}

// CenterFilter narrows a hawker center listing.
type CenterFilter struct {
	Search     string
	Facilities string
	Sort       string
}

// HawkerCenterRepository defines hawker center persistence operations.
type HawkerCenterRepository interface {
	List(ctx context.Context, f CenterFilter, page Page) (*Result[model.CenterRow], error)
	FindByID(ctx context.Context, id uint) (*model.HawkerCenter, error)
	FindByName(ctx context.Context, name string) (*model.HawkerCenter, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, center *model.HawkerCenter) error
	Update(ctx context.Context, center *model.HawkerCenter) error
	Delete(ctx context.Context, id uint) error
	Options(ctx context.Context) ([]model.Option, error)
}

type hawkerCenterRepository struct {
	db *gorm.DB
}

// NewHawkerCenterRepository creates a new hawker center repository.
func NewHawkerCenterRepository(db *gorm.DB) HawkerCenterRepository {
	return &hawkerCenterRepository{db: db}
}

func (r *hawkerCenterRepository) List(ctx context.Context, f CenterFilter, page Page) (*Result[model.CenterRow], error) {
	preds := []Predicate{
		Contains(f.Search, colCenterName, colCenterAddress),
		Contains(f.Facilities, colCenterFacilities),
	}
	from := func() *gorm.DB {
		return applyAll(r.db.Table("hawker_centers hc"), preds)
	}
	return paginate[model.CenterRow](ctx, from,
		"hc.*, (SELECT COUNT(*) FROM stalls s WHERE s.center_id = hc.id) AS stall_count",
		orderBy(centerSorts, f.Sort, "name"), page)
}

func (r *hawkerCenterRepository) FindByID(ctx context.Context, id uint) (*model.HawkerCenter, error) {
	var center model.HawkerCenter
	if err := r.db.WithContext(ctx).First(&center, id).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *hawkerCenterRepository) FindByName(ctx context.Context, name string) (*model.HawkerCenter, error) {
	var center model.HawkerCenter
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&center).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *hawkerCenterRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.HawkerCenter{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *hawkerCenterRepository) Create(ctx context.Context, center *model.HawkerCenter) error {
	return r.db.WithContext(ctx).Create(center).Error
}

func (r *hawkerCenterRepository) Update(ctx context.Context, center *model.HawkerCenter) error {
	return r.db.WithContext(ctx).Save(center).Error
}

func (r *hawkerCenterRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &model.HawkerCenter{}, id)
}

func (r *hawkerCenterRepository) Options(ctx context.Context) ([]model.Option, error) {
	var opts []model.Option
	err := r.db.WithContext(ctx).
		Table("hawker_centers").
		Select("id, name").
		Order("name ASC").
		Scan(&opts).Error
	if err != nil {
		return nil, err
	}
	return opts, nil
}
