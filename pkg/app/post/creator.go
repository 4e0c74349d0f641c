package post

import (
	"context"
	"strings"
	"time"

	"github.com/kforum/moderation/pkg/app/moderation"
	"github.com/kforum/moderation/pkg/cache"
	"github.com/kforum/moderation/pkg/domain"
	moderationDomain "github.com/kforum/moderation/pkg/domain/moderation"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/infra/audit"
	"github.com/kforum/moderation/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=creator_mock.go --case=underscore --with-expecter

type Creator interface {
	Create(ctx context.Context, input CreateInput) (*domainPost.Post, error)
}

type CreateInput struct {
	Title       string
	Content     string
	AuthorID    string
	Category    string
	Tags        []string
	IsAnonymous bool
}

type creator struct {
	logger    *logrus.Logger
	repo      domainPost.Repository
	evaluator moderation.Evaluator
	cache     *cache.Cache
	auditor   audit.Exporter
}

func NewCreator(
	logger *logrus.Logger,
	repo domainPost.Repository,
	evaluator moderation.Evaluator,
	cacheInstance *cache.Cache,
	auditor audit.Exporter,
) Creator {
	return &creator{
		logger:    logger,
		repo:      repo,
		evaluator: evaluator,
		cache:     cacheInstance,
		auditor:   auditor,
	}
}

func (c *creator) Create(ctx context.Context, input CreateInput) (*domainPost.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, &domain.ValidationError{Field: "content", Reason: "required"}
	}
	if input.AuthorID == "" {
		return nil, &domain.ValidationError{Field: "author", Reason: "required"}
	}

	// Title and body are analyzed as one text; original casing is stored.
	verdict := c.evaluator.Evaluate(ctx, input.Title+"\n\n"+input.Content)

	entity := &domainPost.Post{
		Title:       input.Title,
		Content:     input.Content,
		AuthorID:    input.AuthorID,
		Category:    input.Category,
		Tags:        moderationDomain.StringList(input.Tags),
		IsAnonymous: input.IsAnonymous,
	}
	entity.ApplyVerdict(verdict)

	if err := c.repo.Create(ctx, entity); err != nil {
		c.logger.WithError(err).Error("failed to persist post")
		return nil, err
	}

	prometheus.PostsCreatedTotal.WithLabelValues("post", string(entity.Status)).Inc()
	c.publishAudit(ctx, entity)

	// Held and rejected posts change the review queue, published posts change
	// the public pages; either way the cached listings are stale now.
	if err := c.cache.InvalidateListings(ctx); err != nil {
		c.logger.WithError(err).Warn("failed to invalidate post listings cache")
	}

	c.logger.WithFields(logrus.Fields{
		"post_id": entity.ID,
		"status":  entity.Status,
		"source":  entity.Moderation.Source,
	}).Info("post created")

	return entity, nil
}

func (c *creator) publishAudit(ctx context.Context, entity *domainPost.Post) {
	event := audit.Event{
		EntityType: "post",
		EntityID:   entity.ID.String(),
		Status:     string(entity.Status),
		Source:     string(entity.Moderation.Source),
		IsUnsafe:   entity.Moderation.IsUnsafe,
		Confidence: entity.Moderation.Confidence,
		Reason:     entity.Moderation.Reason,
		OccurredAt: time.Now(),
	}
	if err := c.auditor.Publish(ctx, event); err != nil {
		c.logger.WithError(err).Warn("failed to publish audit event")
	}
}
