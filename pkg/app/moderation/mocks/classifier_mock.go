package mocks

import (
	"context"
	"fmt"

	"github.com/kforum/moderation/pkg/app/moderation"
	"github.com/stretchr/testify/mock"
)

type Classifier struct {
	mock.Mock
}

func (m *Classifier) Classify(ctx context.Context, text string) (*moderation.ClassifierResult, error) {
	args := m.Called(ctx, text)
	result, ok := args.Get(0).(*moderation.ClassifierResult)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *moderation.ClassifierResult, got %T", args.Get(0))
	}
	return result, args.Error(1)
}
