package comment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/app/moderation"
	"github.com/kforum/moderation/pkg/cache"
	"github.com/kforum/moderation/pkg/domain"
	domainComment "github.com/kforum/moderation/pkg/domain/comment"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/infra/audit"
	"github.com/kforum/moderation/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=creator_mock.go --case=underscore --with-expecter

type Creator interface {
	Create(ctx context.Context, input CreateInput) (*domainComment.Comment, error)
}

type CreateInput struct {
	PostID      uuid.UUID
	Content     string
	AuthorID    string
	IsAnonymous bool
	ParentID    *uuid.UUID
}

type creator struct {
	logger    *logrus.Logger
	repo      domainComment.Repository
	postRepo  domainPost.Repository
	evaluator moderation.Evaluator
	cache     *cache.Cache
	auditor   audit.Exporter
}

func NewCreator(
	logger *logrus.Logger,
	repo domainComment.Repository,
	postRepo domainPost.Repository,
	evaluator moderation.Evaluator,
	cacheInstance *cache.Cache,
	auditor audit.Exporter,
) Creator {
	return &creator{
		logger:    logger,
		repo:      repo,
		postRepo:  postRepo,
		evaluator: evaluator,
		cache:     cacheInstance,
		auditor:   auditor,
	}
}

func (c *creator) Create(ctx context.Context, input CreateInput) (*domainComment.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, &domain.ValidationError{Field: "content", Reason: "required"}
	}
	if input.AuthorID == "" {
		return nil, &domain.ValidationError{Field: "author", Reason: "required"}
	}

	parent, err := c.postRepo.Get(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if !parent.Visible() {
		return nil, domain.ErrPostNotVisible
	}

	verdict := c.evaluator.Evaluate(ctx, input.Content)

	entity := &domainComment.Comment{
		PostID:      input.PostID,
		Content:     input.Content,
		AuthorID:    input.AuthorID,
		IsAnonymous: input.IsAnonymous,
		ParentID:    input.ParentID,
	}
	entity.ApplyVerdict(verdict)

	if err := c.repo.Create(ctx, entity); err != nil {
		c.logger.WithError(err).Error("failed to persist comment")
		return nil, err
	}

	if err := c.postRepo.IncrementCommentCount(ctx, input.PostID); err != nil {
		c.logger.WithError(err).Warn("failed to increment comment count")
	}

	// Cached post pages carry the parent's comment count.
	if err := c.cache.InvalidateListings(ctx); err != nil {
		c.logger.WithError(err).Warn("failed to invalidate post listings cache")
	}

	prometheus.PostsCreatedTotal.WithLabelValues("comment", string(entity.Status)).Inc()

	event := audit.Event{
		EntityType: "comment",
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

	return entity, nil
}
