package post

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Create(ctx context.Context, post *Post) error
	Get(ctx context.Context, id uuid.UUID) (*Post, error)
	ListPublished(ctx context.Context, query ListQuery) ([]Post, int64, error)
	// ListHeld returns every row discoverable by the review queue: rows with
	// an unsafe verdict, rows in PENDING_REVIEW or REJECTED, and rows whose
	// legacy mirror says flagged, combined with OR.
	ListHeld(ctx context.Context, offset, limit int) ([]Post, int64, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	IncrementCommentCount(ctx context.Context, id uuid.UUID) error
	// Resolve writes the administrator's final state, keeping both status
	// representations consistent in one update.
	Resolve(ctx context.Context, id uuid.UUID, status Status) (*Post, error)
}

type ListQuery struct {
	Category string
	Offset   int
	Limit    int
}
