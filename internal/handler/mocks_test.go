package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
	"hawkerhero/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*model.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Identity), args.Error(1)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockLoginRecorder records login outcomes.
type MockLoginRecorder struct {
	mock.Mock
}

func (m *MockLoginRecorder) LoginAttempt(outcome string) {
	m.Called(outcome)
}

// MockReviewService is a mock implementation of service.ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List(ctx context.Context, f repository.ReviewFilter, page repository.Page) (*service.ReviewListing, error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewListing), args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id uint) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) GetForEdit(ctx context.Context, actor *model.Identity, id uint) (*model.Review, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, actor *model.Identity, in service.ReviewInput) (*model.Review, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, actor *model.Identity, id uint, patch service.ReviewPatch) (*model.Review, error) {
	args := m.Called(ctx, actor, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockReviewService) AddComment(ctx context.Context, actor *model.Identity, reviewID uint, in service.CommentInput) (*model.Comment, error) {
	args := m.Called(ctx, actor, reviewID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockReviewService) GetCommentForEdit(ctx context.Context, actor *model.Identity, id uint) (*model.Comment, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockReviewService) UpdateComment(ctx context.Context, actor *model.Identity, id uint, in service.CommentInput) (*model.Comment, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockReviewService) DeleteComment(ctx context.Context, actor *model.Identity, id uint) (*model.Comment, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

// MockStallService is a mock implementation of service.StallService.
type MockStallService struct {
	mock.Mock
}

func (m *MockStallService) List(ctx context.Context, f repository.StallFilter, page repository.Page) (*service.StallListing, error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StallListing), args.Error(1)
}

func (m *MockStallService) Get(ctx context.Context, id uint) (*service.StallDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StallDetail), args.Error(1)
}

func (m *MockStallService) Find(ctx context.Context, id uint) (*model.Stall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stall), args.Error(1)
}

func (m *MockStallService) Create(ctx context.Context, actor *model.Identity, in service.StallInput) (*model.Stall, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stall), args.Error(1)
}

func (m *MockStallService) Update(ctx context.Context, actor *model.Identity, id uint, in service.StallInput) (*model.Stall, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stall), args.Error(1)
}

func (m *MockStallService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockStallService) Options(ctx context.Context) ([]model.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

func (m *MockStallService) Invalidate(ctx context.Context, ids ...uint) {
	m.Called(ctx, ids)
}

// MockFavoriteService is a mock implementation of service.FavoriteService.
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) List(ctx context.Context, actor *model.Identity, q service.FavoriteQuery, page repository.Page) (*service.FavoriteListing, error) {
	args := m.Called(ctx, actor, q, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FavoriteListing), args.Error(1)
}

func (m *MockFavoriteService) Get(ctx context.Context, actor *model.Identity, id uint) (*model.FavoriteRow, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FavoriteRow), args.Error(1)
}

func (m *MockFavoriteService) Add(ctx context.Context, actor *model.Identity, in service.FavoriteInput) (bool, error) {
	args := m.Called(ctx, actor, in)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) UpdateNotes(ctx context.Context, actor *model.Identity, id uint, notes string) error {
	args := m.Called(ctx, actor, id, notes)
	return args.Error(0)
}

func (m *MockFavoriteService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockFavoriteService) Popular(ctx context.Context, actor *model.Identity) ([]model.PopularItem, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PopularItem), args.Error(1)
}

func (m *MockFavoriteService) FormOptions(ctx context.Context) (*service.FavoriteOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FavoriteOptions), args.Error(1)
}
