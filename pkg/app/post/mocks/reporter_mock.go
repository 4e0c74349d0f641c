package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain/report"
	"github.com/stretchr/testify/mock"
)

type Reporter struct {
	mock.Mock
}

func (m *Reporter) Report(ctx context.Context, postID uuid.UUID, reporterID, reason string) (*report.Outcome, error) {
	args := m.Called(ctx, postID, reporterID, reason)
	outcome, ok := args.Get(0).(*report.Outcome)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *report.Outcome, got %T", args.Get(0))
	}
	return outcome, args.Error(1)
}
