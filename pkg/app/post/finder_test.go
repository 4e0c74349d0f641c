package post_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/cache"
	"github.com/kforum/moderation/pkg/domain"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	postMocks "github.com/kforum/moderation/pkg/domain/post/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinder_GetPublishedPostIsPublic(t *testing.T) {
	repo := new(postMocks.Repository)
	finder := appPost.NewFinder(logrus.New(), repo, newTestCache())
	id := uuid.New()

	repo.On("Get", context.Background(), id).
		Return(&domainPost.Post{ID: id, Status: domainPost.StatusPublished}, nil)
	repo.On("IncrementViewCount", context.Background(), id).Return(nil)

	entity, err := finder.Get(context.Background(), id, "", false)

	require.NoError(t, err)
	assert.Equal(t, id, entity.ID)
	repo.AssertExpectations(t)
}

func TestFinder_HeldPostHiddenFromStrangers(t *testing.T) {
	repo := new(postMocks.Repository)
	finder := appPost.NewFinder(logrus.New(), repo, newTestCache())
	id := uuid.New()

	repo.On("Get", context.Background(), id).
		Return(&domainPost.Post{ID: id, AuthorID: "author-1", Status: domainPost.StatusPendingReview}, nil)

	_, err := finder.Get(context.Background(), id, "someone-else", false)
	assert.ErrorIs(t, err, domain.ErrPostNotVisible)

	_, err = finder.Get(context.Background(), id, "", false)
	assert.ErrorIs(t, err, domain.ErrPostNotVisible)

	// Held posts do not accumulate views.
	repo.AssertNotCalled(t, "IncrementViewCount")
}

func TestFinder_HeldPostVisibleToAuthorAndAdmin(t *testing.T) {
	repo := new(postMocks.Repository)
	finder := appPost.NewFinder(logrus.New(), repo, newTestCache())
	id := uuid.New()

	repo.On("Get", context.Background(), id).
		Return(&domainPost.Post{ID: id, AuthorID: "author-1", Status: domainPost.StatusPendingReview}, nil)

	entity, err := finder.Get(context.Background(), id, "author-1", false)
	require.NoError(t, err)
	assert.Equal(t, id, entity.ID)

	entity, err = finder.Get(context.Background(), id, "moderator", true)
	require.NoError(t, err)
	assert.Equal(t, id, entity.ID)
}

func TestFinder_ListPublishedFallsThroughOnCacheMiss(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	cacheInstance := cache.NewCache(client)
	repo := new(postMocks.Repository)
	finder := appPost.NewFinder(logrus.New(), repo, cacheInstance)

	query := domainPost.ListQuery{Category: "campus", Offset: 0, Limit: 10}
	key := fmt.Sprintf(cache.PublishedPostsKeyPattern, "campus", 0, 10)
	redisMock.ExpectGet(key).RedisNil()

	repo.On("ListPublished", context.Background(), query).
		Return([]domainPost.Post{{Title: "from the database"}}, int64(1), nil)

	page, err := finder.ListPublished(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Posts, 1)
	repo.AssertExpectations(t)
}

func TestFinder_ListPublishedServesCachedPage(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	cacheInstance := cache.NewCache(client)
	repo := new(postMocks.Repository)
	finder := appPost.NewFinder(logrus.New(), repo, cacheInstance)

	cached, err := json.Marshal(appPost.Page{
		Posts: []domainPost.Post{{Title: "from the cache"}},
		Total: 1,
	})
	require.NoError(t, err)

	key := fmt.Sprintf(cache.PublishedPostsKeyPattern, "", 0, 10)
	redisMock.ExpectGet(key).SetVal(string(cached))

	page, err := finder.ListPublished(context.Background(), domainPost.ListQuery{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, "from the cache", page.Posts[0].Title)
	repo.AssertNotCalled(t, "ListPublished")
}

func TestFinder_ListHeldQueriesRepository(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	cacheInstance := cache.NewCache(client)
	repo := new(postMocks.Repository)
	finder := appPost.NewFinder(logrus.New(), repo, cacheInstance)

	key := fmt.Sprintf(cache.ReviewQueueKeyPattern, 0, 10)
	redisMock.ExpectGet(key).RedisNil()

	repo.On("ListHeld", context.Background(), 0, 10).
		Return([]domainPost.Post{{Status: domainPost.StatusPendingReview}}, int64(1), nil)

	page, err := finder.ListHeld(context.Background(), 0, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	repo.AssertExpectations(t)
}
