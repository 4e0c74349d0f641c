package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain/post"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, entity *post.Post) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *Repository) Get(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	args := m.Called(ctx, id)
	entity, ok := args.Get(0).(*post.Post)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *post.Post, got %T", args.Get(0))
	}
	return entity, args.Error(1)
}

func (m *Repository) ListPublished(ctx context.Context, query post.ListQuery) ([]post.Post, int64, error) {
	args := m.Called(ctx, query)
	posts, _ := args.Get(0).([]post.Post)
	total, _ := args.Get(1).(int64)
	return posts, total, args.Error(2)
}

func (m *Repository) ListHeld(ctx context.Context, offset, limit int) ([]post.Post, int64, error) {
	args := m.Called(ctx, offset, limit)
	posts, _ := args.Get(0).([]post.Post)
	total, _ := args.Get(1).(int64)
	return posts, total, args.Error(2)
}

func (m *Repository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Repository) IncrementCommentCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Repository) Resolve(ctx context.Context, id uuid.UUID, status post.Status) (*post.Post, error) {
	args := m.Called(ctx, id, status)
	entity, ok := args.Get(0).(*post.Post)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *post.Post, got %T", args.Get(0))
	}
	return entity, args.Error(1)
}
