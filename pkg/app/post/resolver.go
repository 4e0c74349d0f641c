package post

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/cache"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/infra/audit"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Resolver --dir=. --output=./mocks --filename=resolver_mock.go --case=underscore --with-expecter

// Resolver is the administrative resolution path: a reviewer decides the
// final state of a held post. Both status representations are written in
// one update by the repository.
type Resolver interface {
	Resolve(ctx context.Context, id uuid.UUID, approve bool) (*domainPost.Post, error)
}

type resolver struct {
	logger  *logrus.Logger
	repo    domainPost.Repository
	cache   *cache.Cache
	auditor audit.Exporter
}

func NewResolver(
	logger *logrus.Logger,
	repo domainPost.Repository,
	cacheInstance *cache.Cache,
	auditor audit.Exporter,
) Resolver {
	return &resolver{
		logger:  logger,
		repo:    repo,
		cache:   cacheInstance,
		auditor: auditor,
	}
}

func (r *resolver) Resolve(ctx context.Context, id uuid.UUID, approve bool) (*domainPost.Post, error) {
	status := domainPost.StatusRejected
	if approve {
		status = domainPost.StatusPublished
	}

	entity, err := r.repo.Resolve(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if err := r.cache.InvalidateListings(ctx); err != nil {
		r.logger.WithError(err).Warn("failed to invalidate post listings cache")
	}

	event := audit.Event{
		EntityType: "post",
		EntityID:   entity.ID.String(),
		Status:     string(entity.Status),
		Source:     string(entity.Moderation.Source),
		IsUnsafe:   entity.Moderation.IsUnsafe,
		Confidence: entity.Moderation.Confidence,
		Reason:     "administrative resolution",
		OccurredAt: time.Now(),
	}
	if err := r.auditor.Publish(ctx, event); err != nil {
		r.logger.WithError(err).Warn("failed to publish audit event")
	}

	r.logger.WithFields(logrus.Fields{
		"post_id": id,
		"status":  status,
	}).Info("post resolved by administrator")

	return entity, nil
}
