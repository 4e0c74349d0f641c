package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain/comment"
	"github.com/kforum/moderation/pkg/domain/post"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Create(ctx context.Context, entity *comment.Comment) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *commentRepository) ListPublished(ctx context.Context, postID uuid.UUID) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, post.StatusPublished).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
