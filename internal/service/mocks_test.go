package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error) {
	args := m.Called(ctx, email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListWithFavorites(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

func (m *MockUserRepository) ListWithRecommendations(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

// MockStallRepository is a mock implementation of StallRepository.
type MockStallRepository struct {
	mock.Mock
}

func (m *MockStallRepository) List(ctx context.Context, f repository.StallFilter, page repository.Page) (*repository.Result[model.StallRow], error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Result[model.StallRow]), args.Error(1)
}

func (m *MockStallRepository) FindByID(ctx context.Context, id uint) (*model.Stall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stall), args.Error(1)
}

func (m *MockStallRepository) FindByName(ctx context.Context, name string) (*model.Stall, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stall), args.Error(1)
}

func (m *MockStallRepository) FindByCenter(ctx context.Context, centerID uint) ([]model.Stall, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Stall), args.Error(1)
}

func (m *MockStallRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStallRepository) CountByCenter(ctx context.Context, centerID uint) (int64, error) {
	args := m.Called(ctx, centerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStallRepository) Create(ctx context.Context, stall *model.Stall) error {
	args := m.Called(ctx, stall)
	return args.Error(0)
}

func (m *MockStallRepository) Update(ctx context.Context, stall *model.Stall) error {
	args := m.Called(ctx, stall)
	return args.Error(0)
}

func (m *MockStallRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStallRepository) Cuisines(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStallRepository) Options(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

// MockHawkerCenterRepository is a mock implementation of HawkerCenterRepository.
type MockHawkerCenterRepository struct {
	mock.Mock
}

func (m *MockHawkerCenterRepository) List(ctx context.Context, f repository.CenterFilter, page repository.Page) (*repository.Result[model.CenterRow], error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Result[model.CenterRow]), args.Error(1)
}

func (m *MockHawkerCenterRepository) FindByID(ctx context.Context, id uint) (*model.HawkerCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HawkerCenter), args.Error(1)
}

func (m *MockHawkerCenterRepository) FindByName(ctx context.Context, name string) (*model.HawkerCenter, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HawkerCenter), args.Error(1)
}

func (m *MockHawkerCenterRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockHawkerCenterRepository) Create(ctx context.Context, center *model.HawkerCenter) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockHawkerCenterRepository) Update(ctx context.Context, center *model.HawkerCenter) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockHawkerCenterRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHawkerCenterRepository) Options(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

// MockFoodItemRepository is a mock implementation of FoodItemRepository.
type MockFoodItemRepository struct {
	mock.Mock
}

func (m *MockFoodItemRepository) List(ctx context.Context, f repository.FoodItemFilter, page repository.Page) (*repository.Result[model.FoodItemRow], error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Result[model.FoodItemRow]), args.Error(1)
}

func (m *MockFoodItemRepository) FindByID(ctx context.Context, id uint) (*model.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) FindByStall(ctx context.Context, stallID uint) ([]model.FoodItem, error) {
	args := m.Called(ctx, stallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) FindByStallAndName(ctx context.Context, stallID uint, name string) (*model.FoodItem, error) {
	args := m.Called(ctx, stallID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) Create(ctx context.Context, item *model.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodItemRepository) Update(ctx context.Context, item *model.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodItemRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFoodItemRepository) Options(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) List(ctx context.Context, f repository.ReviewFilter, page repository.Page) (*repository.Result[model.ReviewRow], error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Result[model.ReviewRow]), args.Error(1)
}

func (m *MockReviewRepository) AverageRating(ctx context.Context, f repository.ReviewFilter) (float64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]model.ReviewRow, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewRow), args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByReviews(ctx context.Context, reviewIDs []uint) ([]model.CommentRow, error) {
	args := m.Called(ctx, reviewIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CommentRow), args.Error(1)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFavoriteRepository is a mock implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) List(ctx context.Context, f repository.FavoriteFilter, page repository.Page) (*repository.Result[model.FavoriteRow], error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Result[model.FavoriteRow]), args.Error(1)
}

func (m *MockFavoriteRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]model.FavoriteRow, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FavoriteRow), args.Error(1)
}

func (m *MockFavoriteRepository) FindByID(ctx context.Context, id uint) (*model.Favorite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) FindRowByID(ctx context.Context, id uint) (*model.FavoriteRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FavoriteRow), args.Error(1)
}

func (m *MockFavoriteRepository) FindExisting(ctx context.Context, userID uint, stallID, foodID *uint) (*model.Favorite, error) {
	args := m.Called(ctx, userID, stallID, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) CreateIfAbsent(ctx context.Context, fav *model.Favorite) (bool, error) {
	args := m.Called(ctx, fav)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) UpdateNotes(ctx context.Context, id uint, notes *string, at time.Time) error {
	args := m.Called(ctx, id, notes, at)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Popular(ctx context.Context, excludeUserID uint, limit int) ([]model.PopularItem, error) {
	args := m.Called(ctx, excludeUserID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PopularItem), args.Error(1)
}

// MockRecommendationRepository is a mock implementation of RecommendationRepository.
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) List(ctx context.Context, f repository.RecommendationFilter, page repository.Page) (*repository.Result[model.RecommendationRow], error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Result[model.RecommendationRow]), args.Error(1)
}

func (m *MockRecommendationRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]model.RecommendationRow, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecommendationRow), args.Error(1)
}

func (m *MockRecommendationRepository) FindByID(ctx context.Context, id uint) (*model.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *model.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) Update(ctx context.Context, rec *model.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountCenters(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountStalls(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountReviews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountReviewsByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountFavoritesByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountRecommendationsByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// fixture identities shared by the service tests
var (
	alice = &model.Identity{ID: 1, Username: "alice", Role: model.RoleUser}
	bob   = &model.Identity{ID: 2, Username: "bob", Role: model.RoleUser}
	admin = &model.Identity{ID: 9, Username: "admin", Role: model.RoleAdmin}
)

func uintPtr(v uint) *uint { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
