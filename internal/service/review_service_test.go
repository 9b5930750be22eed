package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

type reviewFixture struct {
	reviews  *MockReviewRepository
	comments *MockCommentRepository
	stalls   *MockStallRepository
	service  ReviewService
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		reviews:  new(MockReviewRepository),
		comments: new(MockCommentRepository),
		stalls:   new(MockStallRepository),
	}
	f.service = NewReviewService(f.reviews, f.comments, f.stalls)
	return f
}

func TestReviewService_CreateRatingBounds(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{"zero", 0, true},
		{"one", 1, false},
		{"five", 5, false},
		{"six", 6, true},
		{"negative", -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReviewFixture()
			f.stalls.On("Exists", mock.Anything, uint(3)).Return(true, nil).Maybe()
			f.reviews.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil).Maybe()

			review, err := f.service.Create(context.Background(), alice, ReviewInput{StallID: 3, Rating: tt.rating, Comment: "Great food"})

			if tt.wantErr {
				ve, ok := errors.IsValidation(err)
				require.True(t, ok, "expected validation error, got %v", err)
				assert.Equal(t, "Rating must be between 1 and 5.", ve.Message)
				f.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, alice.ID, review.UserID)
			assert.Equal(t, tt.rating, review.Rating)
		})
	}
}

func TestReviewService_CreateRequiresLogin(t *testing.T) {
	f := newReviewFixture()
	_, err := f.service.Create(context.Background(), nil, ReviewInput{StallID: 3, Rating: 4, Comment: "Great food"})
	assert.ErrorIs(t, err, errors.ErrNotAuthenticated)
}

func TestReviewService_UpdateOwnership(t *testing.T) {
	tests := []struct {
		name    string
		actor   *model.Identity
		wantErr error
	}{
		{"owner", alice, nil},
		{"admin", admin, nil},
		{"other user", bob, errors.ErrNotAuthorized},
		{"anonymous", nil, errors.ErrNotAuthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReviewFixture()
			stored := &model.Review{ID: 5, UserID: alice.ID, StallID: 3, Rating: 4, Comment: "Great food"}
			f.reviews.On("FindByID", mock.Anything, uint(5)).Return(stored, nil).Maybe()
			f.stalls.On("Exists", mock.Anything, uint(3)).Return(true, nil).Maybe()
			f.reviews.On("Update", mock.Anything, stored).Return(nil).Maybe()

			review, err := f.service.Update(context.Background(), tt.actor, 5, ReviewPatch{Comment: strPtr("Even better")})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "Great food", stored.Comment)
				f.reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Even better", review.Comment)
			assert.Equal(t, 4, review.Rating, "unpatched fields keep their value")
		})
	}
}

func TestReviewService_UpdateOutOfRangeLeavesReview(t *testing.T) {
	f := newReviewFixture()
	stored := &model.Review{ID: 5, UserID: alice.ID, StallID: 3, Rating: 4, Comment: "Great food"}
	f.reviews.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)

	_, err := f.service.Update(context.Background(), alice, 5, ReviewPatch{Rating: intPtr(9)})

	_, ok := errors.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, 4, stored.Rating)
	f.reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReviewService_DeleteMissing(t *testing.T) {
	f := newReviewFixture()
	f.reviews.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	err := f.service.Delete(context.Background(), admin, 5)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestReviewService_ListGroupsComments(t *testing.T) {
	f := newReviewFixture()
	filter := repository.ReviewFilter{Sort: "highest"}
	page := repository.Page{Number: 1, Size: 10}
	rows := []model.ReviewRow{
		{Review: model.Review{ID: 1, Rating: 5}},
		{Review: model.Review{ID: 2, Rating: 3}},
	}
	f.reviews.On("List", mock.Anything, filter, page).Return(repository.NewResult(rows, 2, page), nil)
	f.reviews.On("AverageRating", mock.Anything, filter).Return(4.0, nil)
	f.stalls.On("Options", mock.Anything).Return([]model.Option{{ID: 3, Name: "Satay"}}, nil)
	f.comments.On("ListByReviews", mock.Anything, []uint{1, 2}).Return([]model.CommentRow{
		{Comment: model.Comment{ID: 7, ReviewID: 1, Comment: "Agreed"}},
		{Comment: model.Comment{ID: 8, ReviewID: 1, Comment: "Me too"}},
	}, nil)

	listing, err := f.service.List(context.Background(), filter, page)

	require.NoError(t, err)
	assert.Equal(t, 4.0, listing.Average)
	assert.Len(t, listing.Comments[1], 2)
	assert.Empty(t, listing.Comments[2])
	assert.Len(t, listing.Stalls, 1)
}

func TestReviewService_AddComment(t *testing.T) {
	t.Run("review must exist", func(t *testing.T) {
		f := newReviewFixture()
		f.reviews.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.service.AddComment(context.Background(), bob, 5, CommentInput{Comment: "Nice"})
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("empty comment", func(t *testing.T) {
		f := newReviewFixture()
		_, err := f.service.AddComment(context.Background(), bob, 5, CommentInput{Comment: "   "})

		ve, ok := errors.IsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "Comment cannot be empty.", ve.Message)
	})

	t.Run("any user may comment", func(t *testing.T) {
		f := newReviewFixture()
		f.reviews.On("FindByID", mock.Anything, uint(5)).Return(&model.Review{ID: 5, UserID: alice.ID}, nil)
		f.comments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		comment, err := f.service.AddComment(context.Background(), bob, 5, CommentInput{Comment: "Nice"})
		require.NoError(t, err)
		assert.Equal(t, bob.ID, comment.UserID)
		assert.Equal(t, uint(5), comment.ReviewID)
	})
}

func TestReviewService_CommentOwnership(t *testing.T) {
	f := newReviewFixture()
	stored := &model.Comment{ID: 7, ReviewID: 5, UserID: bob.ID, Comment: "Nice"}
	f.comments.On("FindByID", mock.Anything, uint(7)).Return(stored, nil)
	f.comments.On("Delete", mock.Anything, uint(7)).Return(nil)

	_, err := f.service.UpdateComment(context.Background(), alice, 7, CommentInput{Comment: "Hijacked"})
	assert.ErrorIs(t, err, errors.ErrNotAuthorized)
	assert.Equal(t, "Nice", stored.Comment)

	deleted, err := f.service.DeleteComment(context.Background(), admin, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(5), deleted.ReviewID)
}
