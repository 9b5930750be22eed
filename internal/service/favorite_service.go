package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"hawkerhero/internal/auth"
	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

// FavoritePageSize is the fixed page size of favorite listings.
const FavoritePageSize = 9

const popularLimit = 20

// FavoriteQuery holds the listing parameters. View and UserID are honored
// for admins only.
type FavoriteQuery struct {
	Search string
	View   string
	UserID *uint
}

// FavoriteInput bookmarks a stall, a food item or both.
type FavoriteInput struct {
	StallID *uint
	FoodID  *uint
	Notes   string
}

// FavoriteListing is one page of favorites plus the admin user filter.
type FavoriteListing struct {
	*repository.Result[model.FavoriteRow]
	Users   []model.Option
	ViewAll bool
	UserID  *uint
}

// FavoriteOptions fills the add favorite form.
type FavoriteOptions struct {
	Stalls []model.Option
	Foods  []model.Option
}

// FavoriteService handles user bookmarks.
type FavoriteService interface {
	List(ctx context.Context, actor *model.Identity, q FavoriteQuery, page repository.Page) (*FavoriteListing, error)
	Get(ctx context.Context, actor *model.Identity, id uint) (*model.FavoriteRow, error)
	Add(ctx context.Context, actor *model.Identity, in FavoriteInput) (bool, error)
	UpdateNotes(ctx context.Context, actor *model.Identity, id uint, notes string) error
	Delete(ctx context.Context, actor *model.Identity, id uint) error
	Popular(ctx context.Context, actor *model.Identity) ([]model.PopularItem, error)
	FormOptions(ctx context.Context) (*FavoriteOptions, error)
}

type favoriteService struct {
	favorites repository.FavoriteRepository
	stalls    repository.StallRepository
	foods     repository.FoodItemRepository
	users     repository.UserRepository
	now       func() time.Time
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favorites repository.FavoriteRepository, stalls repository.StallRepository, foods repository.FoodItemRepository, users repository.UserRepository) FavoriteService {
	return &favoriteService{
		favorites: favorites,
		stalls:    stalls,
		foods:     foods,
		users:     users,
		now:       time.Now,
	}
}

// List shows the actor's own favorites. Admins may list another user's
// favorites or everyone's with view=all.
func (s *favoriteService) List(ctx context.Context, actor *model.Identity, q FavoriteQuery, page repository.Page) (*FavoriteListing, error) {
	actor, err := auth.RequireAuthenticated(actor)
	if err != nil {
		return nil, err
	}

	out := &FavoriteListing{}
	filter := repository.FavoriteFilter{Search: trimmed(q.Search)}
	switch {
	case !actor.IsAdmin():
		filter.UserID = &actor.ID
	case q.UserID != nil:
		filter.UserID = q.UserID
	case q.View == "all":
		out.ViewAll = true
	default:
		filter.UserID = &actor.ID
	}
	out.UserID = filter.UserID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Result, err = s.favorites.List(gctx, filter, page)
		return err
	})
	if actor.IsAdmin() {
		g.Go(func() (err error) {
			out.Users, err = s.users.ListWithFavorites(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return out, nil
}

func (s *favoriteService) Get(ctx context.Context, actor *model.Identity, id uint) (*model.FavoriteRow, error) {
	if _, err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	row, err := s.favorites.FindRowByID(ctx, id)
	if err != nil {
		return nil, notFound("get favorite", err)
	}
	if err := auth.RequireOwnerOrAdmin(actor, row.UserID); err != nil {
		return nil, err
	}
	return row, nil
}

// Add bookmarks a stall and/or food item. Adding something already in the
// actor's favorites succeeds without a new row; the result reports whether
// one was created.
func (s *favoriteService) Add(ctx context.Context, actor *model.Identity, in FavoriteInput) (bool, error) {
	actor, err := auth.RequireAuthenticated(actor)
	if err != nil {
		return false, err
	}
	if in.StallID == nil && in.FoodID == nil {
		return false, errors.NewValidationError("stall_id", "Please select a stall or a food item.")
	}
	if err := s.checkTargets(ctx, in); err != nil {
		return false, err
	}

	existing, err := s.favorites.FindExisting(ctx, actor.ID, in.StallID, in.FoodID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	fav := &model.Favorite{
		UserID:  actor.ID,
		StallID: in.StallID,
		FoodID:  in.FoodID,
		Notes:   optionalText(in.Notes),
	}
	created, err := s.favorites.CreateIfAbsent(ctx, fav)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return false, errors.NewValidationError("stall_id", "Please select a valid stall or food item.")
		}
		return false, fmt.Errorf("create favorite: %w", err)
	}
	return created, nil
}

func (s *favoriteService) UpdateNotes(ctx context.Context, actor *model.Identity, id uint, notes string) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.favorites.UpdateNotes(ctx, id, optionalText(notes), s.now()); err != nil {
		return notFound("update favorite", err)
	}
	return nil
}

func (s *favoriteService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.favorites.Delete(ctx, id); err != nil {
		return notFound("delete favorite", err)
	}
	return nil
}

// Popular aggregates what other users favorited without naming them.
func (s *favoriteService) Popular(ctx context.Context, actor *model.Identity) ([]model.PopularItem, error) {
	actor, err := auth.RequireAuthenticated(actor)
	if err != nil {
		return nil, err
	}
	items, err := s.favorites.Popular(ctx, actor.ID, popularLimit)
	if err != nil {
		return nil, fmt.Errorf("popular favorites: %w", err)
	}
	return items, nil
}

func (s *favoriteService) FormOptions(ctx context.Context) (*FavoriteOptions, error) {
	out := &FavoriteOptions{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Stalls, err = s.stalls.Options(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Foods, err = s.foods.Options(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("favorite options: %w", err)
	}
	return out, nil
}

func (s *favoriteService) checkTargets(ctx context.Context, in FavoriteInput) error {
	if in.StallID != nil {
		ok, err := s.stalls.Exists(ctx, *in.StallID)
		if err != nil {
			return fmt.Errorf("check stall: %w", err)
		}
		if !ok {
			return errors.NewValidationError("stall_id", "Please select a valid stall.")
		}
	}
	if in.FoodID != nil {
		if _, err := s.foods.FindByID(ctx, *in.FoodID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewValidationError("food_id", "Please select a valid food item.")
			}
			return fmt.Errorf("check food item: %w", err)
		}
	}
	return nil
}
