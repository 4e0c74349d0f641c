package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/cache"
	"github.com/kforum/moderation/pkg/domain"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=finder_mock.go --case=underscore --with-expecter

type Finder interface {
	// Get returns the post when it is visible to the viewer: published posts
	// are public, held ones only reach their author or an administrator.
	Get(ctx context.Context, id uuid.UUID, viewerID string, isAdmin bool) (*domainPost.Post, error)
	ListPublished(ctx context.Context, query domainPost.ListQuery) (*Page, error)
	ListHeld(ctx context.Context, offset, limit int) (*Page, error)
}

type Page struct {
	Posts []domainPost.Post `json:"posts"`
	Total int64             `json:"total"`
}

type finder struct {
	logger *logrus.Logger
	repo   domainPost.Repository
	cache  *cache.Cache
}

func NewFinder(logger *logrus.Logger, repo domainPost.Repository, cacheInstance *cache.Cache) Finder {
	return &finder{
		logger: logger,
		repo:   repo,
		cache:  cacheInstance,
	}
}

func (f *finder) Get(ctx context.Context, id uuid.UUID, viewerID string, isAdmin bool) (*domainPost.Post, error) {
	entity, err := f.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.Visible() && !isAdmin && (viewerID == "" || viewerID != entity.AuthorID) {
		return nil, domain.ErrPostNotVisible
	}
	if entity.Visible() {
		if err := f.repo.IncrementViewCount(ctx, id); err != nil {
			f.logger.WithError(err).Warn("failed to increment view count")
		}
	}
	return entity, nil
}

func (f *finder) ListPublished(ctx context.Context, query domainPost.ListQuery) (*Page, error) {
	key := fmt.Sprintf(cache.PublishedPostsKeyPattern, query.Category, query.Offset, query.Limit)

	var page Page
	if found, err := f.cache.GetJSON(ctx, key, &page); err == nil && found {
		return &page, nil
	} else if err != nil {
		f.logger.WithError(err).Warn("post listing cache read failed")
	}

	posts, total, err := f.repo.ListPublished(ctx, query)
	if err != nil {
		return nil, err
	}
	page = Page{Posts: posts, Total: total}

	if err := f.cache.SetJSON(ctx, key, page); err != nil {
		f.logger.WithError(err).Warn("post listing cache write failed")
	}
	return &page, nil
}

func (f *finder) ListHeld(ctx context.Context, offset, limit int) (*Page, error) {
	key := fmt.Sprintf(cache.ReviewQueueKeyPattern, offset, limit)

	var page Page
	if found, err := f.cache.GetJSON(ctx, key, &page); err == nil && found {
		return &page, nil
	} else if err != nil {
		f.logger.WithError(err).Warn("review queue cache read failed")
	}

	posts, total, err := f.repo.ListHeld(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	page = Page{Posts: posts, Total: total}

	if err := f.cache.SetJSON(ctx, key, page); err != nil {
		f.logger.WithError(err).Warn("review queue cache write failed")
	}
	return &page, nil
}
