package mocks

import (
	"context"
	"fmt"

	"github.com/kforum/moderation/pkg/domain/report"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) File(ctx context.Context, r *report.Report) (*report.Outcome, error) {
	args := m.Called(ctx, r)
	outcome, ok := args.Get(0).(*report.Outcome)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *report.Outcome, got %T", args.Get(0))
	}
	return outcome, args.Error(1)
}
