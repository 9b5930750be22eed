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

// ReviewInput is a complete review. Rating is bounded to 1..5.
type ReviewInput struct {
	StallID uint   `form:"stall_id" validate:"required"`
	Rating  int    `form:"rating" validate:"required,min=1,max=5"`
	Comment string `form:"comment" validate:"required"`
}

// ReviewPatch carries the fields an edit form submitted. Nil fields keep the
// stored value.
type ReviewPatch struct {
	StallID *uint
	Rating  *int
	Comment *string
}

var reviewMessages = Messages{
	"required":         "Stall, rating and comment are required.",
	"rating":           "Rating must be between 1 and 5.",
	"comment.required": "Comment cannot be empty.",
}

var commentMessages = Messages{
	"required": "Comment cannot be empty.",
}

// CommentInput is a reply to a review.
type CommentInput struct {
	Comment string `form:"comment" validate:"required"`
}

// ReviewListing is one page of reviews with the average rating over every
// matching review and the comments of the listed reviews.
type ReviewListing struct {
	*repository.Result[model.ReviewRow]
	Average  float64
	Comments map[uint][]model.CommentRow
	Stalls   []model.Option
}

// ReviewService handles reviews and their comments.
type ReviewService interface {
	List(ctx context.Context, f repository.ReviewFilter, page repository.Page) (*ReviewListing, error)
	Get(ctx context.Context, id uint) (*model.Review, error)
	GetForEdit(ctx context.Context, actor *model.Identity, id uint) (*model.Review, error)
	Create(ctx context.Context, actor *model.Identity, in ReviewInput) (*model.Review, error)
	Update(ctx context.Context, actor *model.Identity, id uint, patch ReviewPatch) (*model.Review, error)
	Delete(ctx context.Context, actor *model.Identity, id uint) error

	AddComment(ctx context.Context, actor *model.Identity, reviewID uint, in CommentInput) (*model.Comment, error)
	GetCommentForEdit(ctx context.Context, actor *model.Identity, id uint) (*model.Comment, error)
	UpdateComment(ctx context.Context, actor *model.Identity, id uint, in CommentInput) (*model.Comment, error)
	DeleteComment(ctx context.Context, actor *model.Identity, id uint) (*model.Comment, error)
}

type reviewService struct {
	reviews  repository.ReviewRepository
	comments repository.CommentRepository
	stalls   repository.StallRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository, comments repository.CommentRepository, stalls repository.StallRepository) ReviewService {
	return &reviewService{
		reviews:  reviews,
		comments: comments,
		stalls:   stalls,
	}
}

func (s *reviewService) List(ctx context.Context, f repository.ReviewFilter, page repository.Page) (*ReviewListing, error) {
	out := &ReviewListing{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Result, err = s.reviews.List(gctx, f, page)
		return err
	})
	g.Go(func() (err error) {
		out.Average, err = s.reviews.AverageRating(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		out.Stalls, err = s.stalls.Options(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	ids := make([]uint, 0, len(out.Rows))
	for _, row := range out.Rows {
		ids = append(ids, row.ID)
	}
	comments, err := s.comments.ListByReviews(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	out.Comments = make(map[uint][]model.CommentRow, len(ids))
	for _, c := range comments {
		out.Comments[c.ReviewID] = append(out.Comments[c.ReviewID], c)
	}
	return out, nil
}

func (s *reviewService) Get(ctx context.Context, id uint) (*model.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("get review", err)
	}
	return review, nil
}

// GetForEdit loads a review the actor may change.
func (s *reviewService) GetForEdit(ctx context.Context, actor *model.Identity, id uint) (*model.Review, error) {
	if _, err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwnerOrAdmin(actor, review.UserID); err != nil {
		return nil, err
	}
	return review, nil
}

// Create stores a review by any logged in user.
func (s *reviewService) Create(ctx context.Context, actor *model.Identity, in ReviewInput) (*model.Review, error) {
	actor, err := auth.RequireAuthenticated(actor)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	review := &model.Review{
		UserID:  actor.ID,
		StallID: in.StallID,
		Rating:  in.Rating,
		Comment: in.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// Update applies patch over the stored review and validates the result.
func (s *reviewService) Update(ctx context.Context, actor *model.Identity, id uint, patch ReviewPatch) (*model.Review, error) {
	review, err := s.GetForEdit(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	in := ReviewInput{StallID: review.StallID, Rating: review.Rating, Comment: review.Comment}
	if patch.StallID != nil {
		in.StallID = *patch.StallID
	}
	if patch.Rating != nil {
		in.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		in.Comment = *patch.Comment
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	review.StallID = in.StallID
	review.Rating = in.Rating
	review.Comment = in.Comment
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, actor *model.Identity, id uint) error {
	if _, err := s.GetForEdit(ctx, actor, id); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return notFound("delete review", err)
	}
	return nil
}

// AddComment replies to an existing review.
func (s *reviewService) AddComment(ctx context.Context, actor *model.Identity, reviewID uint, in CommentInput) (*model.Comment, error) {
	actor, err := auth.RequireAuthenticated(actor)
	if err != nil {
		return nil, err
	}
	in.Comment = trimmed(in.Comment)
	if err := checkInput(in, commentMessages); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, reviewID); err != nil {
		return nil, err
	}
	comment := &model.Comment{
		ReviewID: reviewID,
		UserID:   actor.ID,
		Comment:  in.Comment,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		// the review was deleted in between
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, errors.ErrNotFound
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *reviewService) GetCommentForEdit(ctx context.Context, actor *model.Identity, id uint) (*model.Comment, error) {
	if _, err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("get comment", err)
	}
	if err := auth.RequireOwnerOrAdmin(actor, comment.UserID); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *reviewService) UpdateComment(ctx context.Context, actor *model.Identity, id uint, in CommentInput) (*model.Comment, error) {
	comment, err := s.GetCommentForEdit(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	in.Comment = trimmed(in.Comment)
	if err := checkInput(in, commentMessages); err != nil {
		return nil, err
	}
	comment.Comment = in.Comment
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment and returns it so callers can redirect
// back to its review.
func (s *reviewService) DeleteComment(ctx context.Context, actor *model.Identity, id uint) (*model.Comment, error) {
	comment, err := s.GetCommentForEdit(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return nil, notFound("delete comment", err)
	}
	return comment, nil
}

func (s *reviewService) check(ctx context.Context, in *ReviewInput) error {
	in.Comment = trimmed(in.Comment)
	if err := checkInput(in, reviewMessages); err != nil {
		return err
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
