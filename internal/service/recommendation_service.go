package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"hawkerhero/internal/auth"
	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

// RecommendationInput is the admin recommendation form. FoodID, when set,
// must belong to the stall.
type RecommendationInput struct {
	StallID uint   `form:"stall_id" validate:"required"`
	FoodID  *uint  `form:"food_id"`
	Tip     string `form:"tip" validate:"required"`
}

var recommendationMessages = Messages{
	"required": "Stall and tip are required.",
}

// RecommendationListing is one page of recommendations plus filter options.
type RecommendationListing struct {
	*repository.Result[model.RecommendationRow]
	Stalls []model.Option
	Foods  []model.Option
	Users  []model.Option
}

// RecommendationService handles admin tips.
type RecommendationService interface {
	List(ctx context.Context, f repository.RecommendationFilter, page repository.Page) (*RecommendationListing, error)
	Get(ctx context.Context, id uint) (*model.Recommendation, error)
	Create(ctx context.Context, actor *model.Identity, in RecommendationInput) (*model.Recommendation, error)
	Update(ctx context.Context, actor *model.Identity, id uint, in RecommendationInput) (*model.Recommendation, error)
	Delete(ctx context.Context, actor *model.Identity, id uint) error
}

type recommendationService struct {
	recs   repository.RecommendationRepository
	stalls repository.StallRepository
	foods  repository.FoodItemRepository
	users  repository.UserRepository
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(recs repository.RecommendationRepository, stalls repository.StallRepository, foods repository.FoodItemRepository, users repository.UserRepository) RecommendationService {
	return &recommendationService{
		recs:   recs,
		stalls: stalls,
		foods:  foods,
		users:  users,
	}
}

func (s *recommendationService) List(ctx context.Context, f repository.RecommendationFilter, page repository.Page) (*RecommendationListing, error) {
	out := &RecommendationListing{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Result, err = s.recs.List(gctx, f, page)
		return err
	})
	g.Go(func() (err error) {
		out.Stalls, err = s.stalls.Options(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Foods, err = s.foods.Options(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Users, err = s.users.ListWithRecommendations(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return out, nil
}

func (s *recommendationService) Get(ctx context.Context, id uint) (*model.Recommendation, error) {
	rec, err := s.recs.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("get recommendation", err)
	}
	return rec, nil
}

func (s *recommendationService) Create(ctx context.Context, actor *model.Identity, in RecommendationInput) (*model.Recommendation, error) {
	actor, err := auth.RequireAdmin(actor)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	rec := &model.Recommendation{
		UserID:  actor.ID,
		StallID: in.StallID,
		FoodID:  in.FoodID,
		Tip:     in.Tip,
	}
	if err := s.recs.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) Update(ctx context.Context, actor *model.Identity, id uint, in RecommendationInput) (*model.Recommendation, error) {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	rec.StallID = in.StallID
	rec.FoodID = in.FoodID
	rec.Tip = in.Tip
	if err := s.recs.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("update recommendation: %w", err)
	}
	return rec, nil
}

func (s *recommendationService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return err
	}
	if err := s.recs.Delete(ctx, id); err != nil {
		return notFound("delete recommendation", err)
	}
	return nil
}

func (s *recommendationService) check(ctx context.Context, in *RecommendationInput) error {
	in.Tip = trimmed(in.Tip)
	if err := checkInput(in, recommendationMessages); err != nil {
		return err
	}
	ok, err := s.stalls.Exists(ctx, in.StallID)
	if err != nil {
		return fmt.Errorf("check stall: %w", err)
	}
	if !ok {
		return errors.NewValidationError("stall_id", "Please select a valid stall.")
	}
	if in.FoodID == nil {
		return nil
	}
	food, err := s.foods.FindByID(ctx, *in.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewValidationError("food_id", "Please select a valid food item.")
		}
		return fmt.Errorf("check food item: %w", err)
	}
	if food.StallID != in.StallID {
		return errors.NewValidationError("food_id", "The selected food item is not sold at this stall.")
	}
	return nil
}
