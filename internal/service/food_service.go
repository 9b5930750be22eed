package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"hawkerhero/internal/auth"
	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

// FoodItemInput is the admin food item form.
type FoodItemInput struct {
	Name        string           `form:"name" validate:"required,max=255"`
	Price       *decimal.Decimal `form:"price" validate:"required"`
	Description string           `form:"description"`
	StallID     uint             `form:"stall_id" validate:"required"`
	ImageURL    string           `form:"-"`
}

var foodMessages = Messages{
	"required": "Name, price and stall are required.",
}

// FoodItemListing is one page of food items plus the stall filter options.
type FoodItemListing struct {
	*repository.Result[model.FoodItemRow]
	Stalls []model.Option
}

// FoodItemService handles food item browsing and admin management.
type FoodItemService interface {
	List(ctx context.Context, f repository.FoodItemFilter, page repository.Page) (*FoodItemListing, error)
	Get(ctx context.Context, id uint) (*model.FoodItem, error)
	Create(ctx context.Context, actor *model.Identity, in FoodItemInput) (*model.FoodItem, error)
	Update(ctx context.Context, actor *model.Identity, id uint, in FoodItemInput) (*model.FoodItem, error)
	Delete(ctx context.Context, actor *model.Identity, id uint) error
	Options(ctx context.Context) ([]model.Option, error)
}

type foodItemService struct {
	foods  repository.FoodItemRepository
	stalls repository.StallRepository
	cache  StallCache
}

// NewFoodItemService creates a new food item service.
func NewFoodItemService(foods repository.FoodItemRepository, stalls repository.StallRepository, cache StallCache) FoodItemService {
	return &foodItemService{
		foods:  foods,
		stalls: stalls,
		cache:  cache,
	}
}

func (s *foodItemService) List(ctx context.Context, f repository.FoodItemFilter, page repository.Page) (*FoodItemListing, error) {
	res, err := s.foods.List(ctx, f, page)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	stalls, err := s.stalls.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("stall options: %w", err)
	}
	return &FoodItemListing{Result: res, Stalls: stalls}, nil
}

func (s *foodItemService) Get(ctx context.Context, id uint) (*model.FoodItem, error) {
	item, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("get food item", err)
	}
	return item, nil
}

func (s *foodItemService) Create(ctx context.Context, actor *model.Identity, in FoodItemInput) (*model.FoodItem, error) {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	item := &model.FoodItem{
		Name:        in.Name,
		Price:       in.Price.Round(2),
		Description: in.Description,
		StallID:     in.StallID,
		ImageURL:    in.ImageURL,
	}
	if err := s.foods.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create food item: %w", err)
	}
	s.invalidate(ctx, item.StallID)
	return item, nil
}

func (s *foodItemService) Update(ctx context.Context, actor *model.Identity, id uint, in FoodItemInput) (*model.FoodItem, error) {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	item, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("find food item", err)
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	previousStall := item.StallID
	item.Name = in.Name
	item.Price = in.Price.Round(2)
	item.Description = in.Description
	item.StallID = in.StallID
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}
	if err := s.foods.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update food item: %w", err)
	}
	s.invalidate(ctx, previousStall, item.StallID)
	return item, nil
}

func (s *foodItemService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return err
	}
	item, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return notFound("find food item", err)
	}
	if err := s.foods.Delete(ctx, id); err != nil {
		return notFound("delete food item", err)
	}
	s.invalidate(ctx, item.StallID)
	return nil
}

func (s *foodItemService) Options(ctx context.Context) ([]model.Option, error) {
	opts, err := s.foods.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("food item options: %w", err)
	}
	return opts, nil
}

func (s *foodItemService) check(ctx context.Context, in *FoodItemInput) error {
	in.Name = trimmed(in.Name)
	in.Description = trimmed(in.Description)
	if err := checkInput(in, foodMessages); err != nil {
		return err
	}
	if in.Price.IsNegative() {
		return errors.NewValidationError("price", "Price must be a non-negative number.")
	}
	ok, err := s.stalls.Exists(ctx, in.StallID)
	if err != nil {
		return fmt.Errorf("check stall: %w", err)
	}
	if !ok {
		return errors.NewValidationError("stall_id", "Please select a valid stall.")
	}
	return nil
}

func (s *foodItemService) invalidate(ctx context.Context, stallIDs ...uint) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, stallIDs...)
	}
}
