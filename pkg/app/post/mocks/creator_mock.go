package mocks

import (
	"context"
	"fmt"

	appPost "github.com/kforum/moderation/pkg/app/post"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/stretchr/testify/mock"
)

type Creator struct {
	mock.Mock
}

func (m *Creator) Create(ctx context.Context, input appPost.CreateInput) (*domainPost.Post, error) {
	args := m.Called(ctx, input)
	entity, ok := args.Get(0).(*domainPost.Post)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *post.Post, got %T", args.Get(0))
	}
	return entity, args.Error(1)
}
