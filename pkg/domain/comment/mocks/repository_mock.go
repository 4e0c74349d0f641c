package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain/comment"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, entity *comment.Comment) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *Repository) ListPublished(ctx context.Context, postID uuid.UUID) ([]comment.Comment, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]comment.Comment)
	return comments, args.Error(1)
}
