package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/cache"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/domain/report"
	"github.com/kforum/moderation/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Reporter --dir=. --output=./mocks --filename=reporter_mock.go --case=underscore --with-expecter

type Reporter interface {
	Report(ctx context.Context, postID uuid.UUID, reporterID, reason string) (*report.Outcome, error)
}

type reporter struct {
	logger *logrus.Logger
	repo   report.Repository
	cache  *cache.Cache
}

func NewReporter(logger *logrus.Logger, repo report.Repository, cacheInstance *cache.Cache) Reporter {
	return &reporter{
		logger: logger,
		repo:   repo,
		cache:  cacheInstance,
	}
}

func (r *reporter) Report(ctx context.Context, postID uuid.UUID, reporterID, reason string) (*report.Outcome, error) {
	if reporterID == "" {
		return nil, &domain.ValidationError{Field: "reporter", Reason: "required"}
	}

	outcome, err := r.repo.File(ctx, &report.Report{
		PostID:     postID,
		ReporterID: reporterID,
		Reason:     reason,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateReport) {
			prometheus.ReportsFiledTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	result := "accepted"
	if outcome.Transitioned {
		result = "transitioned"
		if cacheErr := r.cache.InvalidateListings(ctx); cacheErr != nil {
			r.logger.WithError(cacheErr).Warn("failed to invalidate post listings cache")
		}
		r.logger.WithFields(logrus.Fields{
			"post_id":      postID,
			"report_count": outcome.ReportCount,
		}).Info("post held for review after report threshold")
	}
	prometheus.ReportsFiledTotal.WithLabelValues(result).Inc()

	return outcome, nil
}
