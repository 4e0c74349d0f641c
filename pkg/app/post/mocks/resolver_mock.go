package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/stretchr/testify/mock"
)

type Resolver struct {
	mock.Mock
}

func (m *Resolver) Resolve(ctx context.Context, id uuid.UUID, approve bool) (*domainPost.Post, error) {
	args := m.Called(ctx, id, approve)
	entity, ok := args.Get(0).(*domainPost.Post)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *post.Post, got %T", args.Get(0))
	}
	return entity, args.Error(1)
}
