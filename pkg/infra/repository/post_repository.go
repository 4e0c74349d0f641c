package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/domain/post"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) post.Repository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Create(ctx context.Context, entity *post.Post) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *postRepository) Get(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var entity post.Post
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("post", id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *postRepository) ListPublished(ctx context.Context, query post.ListQuery) ([]post.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&post.Post{}).Where("status = ?", post.StatusPublished)
	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []post.Post
	err := q.Order("created_at desc").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListHeld combines the three held conditions with OR so no held row is
// invisible to the review queue, whichever status field a writer set.
func (r *postRepository) ListHeld(ctx context.Context, offset, limit int) ([]post.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&post.Post{}).
		Where("moderation_is_unsafe = ? OR status IN ? OR moderation_status = ?",
			true,
			[]post.Status{post.StatusPendingReview, post.StatusRejected},
			post.LegacyFlagged,
		)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []post.Post
	err := q.Order("created_at asc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&post.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *postRepository) IncrementCommentCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&post.Post{}).
		Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
}

func (r *postRepository) Resolve(ctx context.Context, id uuid.UUID, status post.Status) (*post.Post, error) {
	// Both status representations go out in one UPDATE; they are never
	// allowed to diverge.
	res := r.db.WithContext(ctx).Model(&post.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            status,
			"moderation_status": post.Mirror(status),
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("post", id)
	}
	return r.Get(ctx, id)
}
