package comment

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Create(ctx context.Context, comment *Comment) error
	ListPublished(ctx context.Context, postID uuid.UUID) ([]Comment, error)
}
