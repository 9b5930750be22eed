package repository

import (
	"context"

	"gorm.io/gorm"

	"hawkerhero/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	ListByReviews(ctx context.Context, reviewIDs []uint) ([]model.CommentRow, error)
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByReviews returns the comments of the given reviews, oldest first.
func (r *commentRepository) ListByReviews(ctx context.Context, reviewIDs []uint) ([]model.CommentRow, error) {
	if len(reviewIDs) == 0 {
		return []model.CommentRow{}, nil
	}
	var rows []model.CommentRow
	err := r.db.WithContext(ctx).
		Table("comments c").
		Select("c.*, u.username AS username").
		Joins("JOIN users u ON u.id = c.user_id").
		Where("c.review_id IN ?", reviewIDs).
		Order("c.created_at ASC, c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).
		Model(comment).
		Select("comment", "updated_at").
		Updates(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &model.Comment{}, id)
}
