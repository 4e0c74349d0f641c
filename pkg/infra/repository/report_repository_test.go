package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/domain/report"
	"github.com/kforum/moderation/pkg/infra/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_TransitionsAtThreshold(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewReportRepository(db)
	entity := seedPost(t, db, post.StatusPublished)
	ctx := context.Background()

	for i := 1; i < post.ReportThreshold; i++ {
		outcome, err := repo.File(ctx, &report.Report{
			PostID:     entity.ID,
			ReporterID: fmt.Sprintf("user-%d", i),
			Reason:     "spam",
		})
		require.NoError(t, err)
		assert.Equal(t, i, outcome.ReportCount)
		assert.False(t, outcome.Transitioned)
		assert.Equal(t, post.StatusPublished, outcome.Status)
	}

	outcome, err := repo.File(ctx, &report.Report{
		PostID:     entity.ID,
		ReporterID: fmt.Sprintf("user-%d", post.ReportThreshold),
	})
	require.NoError(t, err)
	assert.Equal(t, post.ReportThreshold, outcome.ReportCount)
	assert.True(t, outcome.Transitioned)
	assert.Equal(t, post.StatusPendingReview, outcome.Status)

	var persisted post.Post
	require.NoError(t, db.First(&persisted, "id = ?", entity.ID).Error)
	assert.Equal(t, post.StatusPendingReview, persisted.Status)
	assert.Equal(t, post.LegacyFlagged, persisted.LegacyStatus)
}

func TestReportRepository_NoSecondTransition(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewReportRepository(db)
	entity := seedPost(t, db, post.StatusPublished)
	ctx := context.Background()

	for i := 1; i <= post.ReportThreshold; i++ {
		_, err := repo.File(ctx, &report.Report{
			PostID:     entity.ID,
			ReporterID: fmt.Sprintf("user-%d", i),
		})
		require.NoError(t, err)
	}

	outcome, err := repo.File(ctx, &report.Report{
		PostID:     entity.ID,
		ReporterID: "late-reporter",
	})
	require.NoError(t, err)
	assert.Equal(t, post.ReportThreshold+1, outcome.ReportCount)
	assert.False(t, outcome.Transitioned)
	assert.Equal(t, post.StatusPendingReview, outcome.Status)
}

func TestReportRepository_DuplicateReporterRejected(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewReportRepository(db)
	entity := seedPost(t, db, post.StatusPublished)
	ctx := context.Background()

	_, err := repo.File(ctx, &report.Report{PostID: entity.ID, ReporterID: "user-1"})
	require.NoError(t, err)

	_, err = repo.File(ctx, &report.Report{PostID: entity.ID, ReporterID: "user-1", Reason: "again"})
	assert.True(t, errors.Is(err, domain.ErrDuplicateReport))

	// The rejected duplicate must not bump the counter.
	var persisted post.Post
	require.NoError(t, db.First(&persisted, "id = ?", entity.ID).Error)
	assert.Equal(t, 1, persisted.ReportCount)
}

func TestReportRepository_SameReporterDifferentPosts(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewReportRepository(db)
	first := seedPost(t, db, post.StatusPublished)
	second := seedPost(t, db, post.StatusPublished)
	ctx := context.Background()

	_, err := repo.File(ctx, &report.Report{PostID: first.ID, ReporterID: "user-1"})
	require.NoError(t, err)
	_, err = repo.File(ctx, &report.Report{PostID: second.ID, ReporterID: "user-1"})
	require.NoError(t, err)
}

func TestReportRepository_HeldPostNeverTransitions(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewReportRepository(db)
	entity := seedPost(t, db, post.StatusPendingReview)
	ctx := context.Background()

	for i := 1; i <= post.ReportThreshold+2; i++ {
		outcome, err := repo.File(ctx, &report.Report{
			PostID:     entity.ID,
			ReporterID: fmt.Sprintf("user-%d", i),
		})
		require.NoError(t, err)
		assert.False(t, outcome.Transitioned)
		assert.Equal(t, post.StatusPendingReview, outcome.Status)
	}
}

func TestReportRepository_UnknownPost(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewReportRepository(db)

	_, err := repo.File(context.Background(), &report.Report{
		PostID:     uuid.New(),
		ReporterID: "user-1",
	})
	assert.True(t, domain.IsNotFoundError(err))
}
