package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	appPost "github.com/kforum/moderation/pkg/app/post"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/stretchr/testify/mock"
)

type Finder struct {
	mock.Mock
}

func (m *Finder) Get(ctx context.Context, id uuid.UUID, viewerID string, isAdmin bool) (*domainPost.Post, error) {
	args := m.Called(ctx, id, viewerID, isAdmin)
	entity, ok := args.Get(0).(*domainPost.Post)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *post.Post, got %T", args.Get(0))
	}
	return entity, args.Error(1)
}

func (m *Finder) ListPublished(ctx context.Context, query domainPost.ListQuery) (*appPost.Page, error) {
	args := m.Called(ctx, query)
	page, ok := args.Get(0).(*appPost.Page)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *post.Page, got %T", args.Get(0))
	}
	return page, args.Error(1)
}

func (m *Finder) ListHeld(ctx context.Context, offset, limit int) (*appPost.Page, error) {
	args := m.Called(ctx, offset, limit)
	page, ok := args.Get(0).(*appPost.Page)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *post.Page, got %T", args.Get(0))
	}
	return page, args.Error(1)
}
