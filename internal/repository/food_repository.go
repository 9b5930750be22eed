package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hawkerhero/internal/model"
)

const (
	colFoodName  Column = "fi.name"
	colFoodPrice Column = "fi.price"
	colFoodStall Column = "fi.stall_id"
)

var foodSorts = map[string]string{
	"recent":     "fi.created_at DESC, fi.id DESC",
	"name":       "fi.name ASC, fi.id ASC",
	"price_asc":  "fi.price ASC, fi.id ASC",
	"price_desc": "fi.price DESC, fi.id DESC",
}

// FoodItemFilter narrows a food item listing. Price bounds are inclusive.
type FoodItemFilter struct {
	Name     string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	StallID  *uint
	Sort     string
}

// FoodItemRepository defines food item persistence operations.
type FoodItemRepository interface {
	List(ctx context.Context, f FoodItemFilter, page Page) (*Result[model.FoodItemRow], error)
	FindByID(ctx context.Context, id uint) (*model.FoodItem, error)
	FindByStall(ctx context.Context, stallID uint) ([]model.FoodItem, error)
	FindByStallAndName(ctx context.Context, stallID uint, name string) (*model.FoodItem, error)
	Create(ctx context.Context, item *model.FoodItem) error
	Update(ctx context.Context, item *model.FoodItem) error
	Delete(ctx context.Context, id uint) error
	Options(ctx context.Context) ([]model.Option, error)
}

type foodItemRepository struct {
	db *gorm.DB
}

// NewFoodItemRepository creates a new food item repository.
func NewFoodItemRepository(db *gorm.DB) FoodItemRepository {
	return &foodItemRepository{db: db}
}

func (r *foodItemRepository) List(ctx context.Context, f FoodItemFilter, page Page) (*Result[model.FoodItemRow], error) {
	preds := []Predicate{Contains(f.Name, colFoodName)}
	if f.MinPrice != nil {
		preds = append(preds, AtLeast(colFoodPrice, *f.MinPrice))
	}
	if f.MaxPrice != nil {
		preds = append(preds, AtMost(colFoodPrice, *f.MaxPrice))
	}
	if f.StallID != nil {
		preds = append(preds, Equals(colFoodStall, *f.StallID))
	}
	from := func() *gorm.DB {
		q := r.db.Table("food_items fi").
			Joins("JOIN stalls s ON s.id = fi.stall_id")
		return applyAll(q, preds)
	}
	return paginate[model.FoodItemRow](ctx, from,
		"fi.*, s.name AS stall_name",
		orderBy(foodSorts, f.Sort, "recent"), page)
}

func (r *foodItemRepository) FindByID(ctx context.Context, id uint) (*model.FoodItem, error) {
	var item model.FoodItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodItemRepository) FindByStall(ctx context.Context, stallID uint) ([]model.FoodItem, error) {
	var items []model.FoodItem
	if err := r.db.WithContext(ctx).
		Where("stall_id = ?", stallID).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *foodItemRepository) FindByStallAndName(ctx context.Context, stallID uint, name string) (*model.FoodItem, error) {
	var item model.FoodItem
	if err := r.db.WithContext(ctx).
		Where("stall_id = ? AND name = ?", stallID, name).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodItemRepository) Create(ctx context.Context, item *model.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodItemRepository) Update(ctx context.Context, item *model.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *foodItemRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &model.FoodItem{}, id)
}

// Options lists food items for dropdowns, grouped by stall name.
func (r *foodItemRepository) Options(ctx context.Context) ([]model.Option, error) {
	var opts []model.Option
	err := r.db.WithContext(ctx).
		Table("food_items fi").
		Select("fi.id AS id, fi.name AS name, s.name AS `group`").
		Joins("JOIN stalls s ON s.id = fi.stall_id").
		Order("fi.name ASC").
		Scan(&opts).Error
	if err != nil {
		return nil, err
	}
	return opts, nil
}
