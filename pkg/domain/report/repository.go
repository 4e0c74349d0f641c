package report

import (
	"context"

	"github.com/kforum/moderation/pkg/domain/post"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter

type Repository interface {
	// File records the report and performs the threshold transition in a
	// single transaction: insert (duplicate -> domain.ErrDuplicateReport),
	// atomic counter increment, and the PUBLISHED -> PENDING_REVIEW flip
	// when the counter reaches the threshold. Concurrent reports on the
	// same post must not double-transition or miss the transition.
	File(ctx context.Context, r *Report) (*Outcome, error)
}

type Outcome struct {
	ReportCount  int
	Status       post.Status
	Transitioned bool
}
