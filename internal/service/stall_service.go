package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"hawkerhero/internal/auth"
	"hawkerhero/internal/cache"
	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

const stallCacheTTL = 5 * time.Minute

// StallInput is the admin stall form. An empty ImageURL keeps the current image.
type StallInput struct {
	Name     string `form:"name" validate:"required,max=255"`
	Location string `form:"location" validate:"required,max=255"`
	Cuisine  string `form:"cuisine" validate:"required,max=100"`
	CenterID *uint  `form:"center_id"`
	ImageURL string `form:"-"`
}

var stallMessages = Messages{
	"required": "All fields (name, location, cuisine) are required.",
}

// StallListing is one page of stalls plus the cuisine filter options.
type StallListing struct {
	*repository.Result[model.StallRow]
	Cuisines []string
}

// StallDetail is a stall with its center and menu.
type StallDetail struct {
	Stall     model.Stall         `json:"stall"`
	Center    *model.HawkerCenter `json:"center,omitempty"`
	FoodItems []model.FoodItem    `json:"food_items"`
}

// StallService handles stall browsing and admin management.
type StallService interface {
	List(ctx context.Context, f repository.StallFilter, page repository.Page) (*StallListing, error)
	Get(ctx context.Context, id uint) (*StallDetail, error)
	Find(ctx context.Context, id uint) (*model.Stall, error)
	Create(ctx context.Context, actor *model.Identity, in StallInput) (*model.Stall, error)
	Update(ctx context.Context, actor *model.Identity, id uint, in StallInput) (*model.Stall, error)
	Delete(ctx context.Context, actor *model.Identity, id uint) error
	Options(ctx context.Context) ([]model.Option, error)
	Invalidate(ctx context.Context, ids ...uint)
}

type stallService struct {
	stalls  repository.StallRepository
	centers repository.HawkerCenterRepository
	foods   repository.FoodItemRepository
	cache   *cache.Client
}

// NewStallService creates a new stall service.
func NewStallService(stalls repository.StallRepository, centers repository.HawkerCenterRepository, foods repository.FoodItemRepository, cache *cache.Client) StallService {
	return &stallService{
		stalls:  stalls,
		centers: centers,
		foods:   foods,
		cache:   cache,
	}
}

func (s *stallService) cacheKey(id uint) string {
	return fmt.Sprintf("stall:%d", id)
}

func (s *stallService) List(ctx context.Context, f repository.StallFilter, page repository.Page) (*StallListing, error) {
	var (
		res      *repository.Result[model.StallRow]
		cuisines []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res, err = s.stalls.List(gctx, f, page)
		return err
	})
	g.Go(func() (err error) {
		cuisines, err = s.stalls.Cuisines(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list stalls: %w", err)
	}
	return &StallListing{Result: res, Cuisines: cuisines}, nil
}

// Get returns the stall with its center and food items, cached in Redis.
func (s *stallService) Get(ctx context.Context, id uint) (*StallDetail, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached StallDetail
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stall, err := s.stalls.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("get stall", err)
	}
	detail := &StallDetail{Stall: *stall}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail.FoodItems, err = s.foods.FindByStall(gctx, id)
		return err
	})
	if stall.CenterID != nil {
		g.Go(func() error {
			center, err := s.centers.FindByID(gctx, *stall.CenterID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// dangling reference, show the stall without a center
				return nil
			}
			detail.Center = center
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get stall detail: %w", err)
	}
	if detail.FoodItems == nil {
		detail.FoodItems = []model.FoodItem{}
	}

	if payload, err := json.Marshal(detail); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, stallCacheTTL)
	}
	return detail, nil
}

func (s *stallService) Find(ctx context.Context, id uint) (*model.Stall, error) {
	stall, err := s.stalls.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("find stall", err)
	}
	return stall, nil
}

func (s *stallService) Create(ctx context.Context, actor *model.Identity, in StallInput) (*model.Stall, error) {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	stall := &model.Stall{
		Name:     in.Name,
		Location: in.Location,
		Cuisine:  in.Cuisine,
		CenterID: in.CenterID,
		ImageURL: in.ImageURL,
	}
	if err := s.stalls.Create(ctx, stall); err != nil {
		return nil, fmt.Errorf("create stall: %w", err)
	}
	return stall, nil
}

func (s *stallService) Update(ctx context.Context, actor *model.Identity, id uint, in StallInput) (*model.Stall, error) {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	stall, err := s.stalls.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("find stall", err)
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	stall.Name = in.Name
	stall.Location = in.Location
	stall.Cuisine = in.Cuisine
	stall.CenterID = in.CenterID
	if in.ImageURL != "" {
		stall.ImageURL = in.ImageURL
	}
	if err := s.stalls.Update(ctx, stall); err != nil {
		return nil, fmt.Errorf("update stall: %w", err)
	}
	s.Invalidate(ctx, id)
	return stall, nil
}

func (s *stallService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return err
	}
	if err := s.stalls.Delete(ctx, id); err != nil {
		return notFound("delete stall", err)
	}
	s.Invalidate(ctx, id)
	return nil
}

func (s *stallService) Options(ctx context.Context) ([]model.Option, error) {
	opts, err := s.stalls.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("stall options: %w", err)
	}
	return opts, nil
}

// Invalidate drops cached stall details.
func (s *stallService) Invalidate(ctx context.Context, ids ...uint) {
	for _, id := range ids {
		_ = s.cache.Delete(ctx, s.cacheKey(id))
	}
}

func (s *stallService) check(ctx context.Context, in *StallInput) error {
	in.Name = trimmed(in.Name)
	in.Location = trimmed(in.Location)
	in.Cuisine = trimmed(in.Cuisine)
	if err := checkInput(in, stallMessages); err != nil {
		return err
	}
	if in.CenterID == nil {
		return nil
	}
	ok, err := s.centers.Exists(ctx, *in.CenterID)
	if err != nil {
		return fmt.Errorf("check center: %w", err)
	}
	if !ok {
		return errors.NewValidationError("center_id", "Please select a valid hawker center.")
	}
	return nil
}
