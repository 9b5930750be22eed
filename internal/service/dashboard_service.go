package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"hawkerhero/internal/auth"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

const (
	recentLimit   = 3
	activityLimit = 5
)

// Activity kinds shown in the dashboard feed.
const (
	ActivityReview         = "review"
	ActivityFavorite       = "favorite"
	ActivityRecommendation = "recommendation"
)

// Activity is one entry of the dashboard feed.
type Activity struct {
	Kind   string
	Title  string
	Detail string
	Link   string
	At     time.Time
}

// UserStats is the personal dashboard of a logged in user.
type UserStats struct {
	Reviews         int64
	Favorites       int64
	Recommendations int64

	RecentReviews         []model.ReviewRow
	RecentFavorites       []model.FavoriteRow
	RecentRecommendations []model.RecommendationRow
	Activity              []Activity
}

// AdminStats is the catalog overview on the admin page.
type AdminStats struct {
	Users   int64
	Centers int64
	Stalls  int64
	Reviews int64
}

// DashboardService aggregates per-user and site-wide counters.
type DashboardService interface {
	UserStats(ctx context.Context, actor *model.Identity) (*UserStats, error)
	AdminStats(ctx context.Context, actor *model.Identity) (*AdminStats, error)
}

type dashboardService struct {
	stats     repository.StatsRepository
	reviews   repository.ReviewRepository
	favorites repository.FavoriteRepository
	recs      repository.RecommendationRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(stats repository.StatsRepository, reviews repository.ReviewRepository, favorites repository.FavoriteRepository, recs repository.RecommendationRepository) DashboardService {
	return &dashboardService{
		stats:     stats,
		reviews:   reviews,
		favorites: favorites,
		recs:      recs,
	}
}

func (s *dashboardService) UserStats(ctx context.Context, actor *model.Identity) (*UserStats, error) {
	actor, err := auth.RequireAuthenticated(actor)
	if err != nil {
		return nil, err
	}
	uid := actor.ID
	out := &UserStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Reviews, err = s.stats.CountReviewsByUser(gctx, uid)
		return err
	})
	g.Go(func() (err error) {
		out.Favorites, err = s.stats.CountFavoritesByUser(gctx, uid)
		return err
	})
	g.Go(func() (err error) {
		out.Recommendations, err = s.stats.CountRecommendationsByUser(gctx, uid)
		return err
	})
	g.Go(func() (err error) {
		out.RecentReviews, err = s.reviews.RecentByUser(gctx, uid, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		out.RecentFavorites, err = s.favorites.RecentByUser(gctx, uid, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		out.RecentRecommendations, err = s.recs.RecentByUser(gctx, uid, recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	out.Activity = mergeActivity(out.RecentReviews, out.RecentFavorites, out.RecentRecommendations)
	return out, nil
}

func (s *dashboardService) AdminStats(ctx context.Context, actor *model.Identity) (*AdminStats, error) {
	if _, err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	out := &AdminStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Users, err = s.stats.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Centers, err = s.stats.CountCenters(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Stalls, err = s.stats.CountStalls(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Reviews, err = s.stats.CountReviews(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	return out, nil
}

// mergeActivity interleaves the recent items newest first.
func mergeActivity(reviews []model.ReviewRow, favorites []model.FavoriteRow, recs []model.RecommendationRow) []Activity {
	feed := make([]Activity, 0, len(reviews)+len(favorites)+len(recs))
	for _, r := range reviews {
		feed = append(feed, Activity{
			Kind:   ActivityReview,
			Title:  r.StallName,
			Detail: fmt.Sprintf("Rated %d/5", r.Rating),
			Link:   fmt.Sprintf("/stalls/%d", r.StallID),
			At:     r.CreatedAt,
		})
	}
	for _, f := range favorites {
		feed = append(feed, Activity{
			Kind:   ActivityFavorite,
			Title:  f.DisplayName(),
			Detail: "Added to favorites",
			Link:   fmt.Sprintf("/favorites/edit/%d", f.ID),
			At:     f.CreatedAt,
		})
	}
	for _, r := range recs {
		feed = append(feed, Activity{
			Kind:   ActivityRecommendation,
			Title:  r.StallName,
			Detail: r.Tip,
			Link:   "/recommendations",
			At:     r.CreatedAt,
		})
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].At.After(feed[j].At)
	})
	if len(feed) > activityLimit {
		feed = feed[:activityLimit]
	}
	return feed
}
