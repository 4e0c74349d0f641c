package mocks

import (
	"context"
	"fmt"

	appComment "github.com/kforum/moderation/pkg/app/comment"
	domainComment "github.com/kforum/moderation/pkg/domain/comment"
	"github.com/stretchr/testify/mock"
)

type Creator struct {
	mock.Mock
}

func (m *Creator) Create(ctx context.Context, input appComment.CreateInput) (*domainComment.Comment, error) {
	args := m.Called(ctx, input)
	entity, ok := args.Get(0).(*domainComment.Comment)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *comment.Comment, got %T", args.Get(0))
	}
	return entity, args.Error(1)
}
