package mocks

import (
	"context"

	domain "github.com/kforum/moderation/pkg/domain/moderation"
	"github.com/stretchr/testify/mock"
)

type Evaluator struct {
	mock.Mock
}

func (m *Evaluator) Evaluate(ctx context.Context, text string) domain.Verdict {
	args := m.Called(ctx, text)
	verdict, _ := args.Get(0).(domain.Verdict)
	return verdict
}
