package post_test

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v8"
	moderationMocks "github.com/kforum/moderation/pkg/app/moderation/mocks"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/cache"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/domain/moderation"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	postMocks "github.com/kforum/moderation/pkg/domain/post/mocks"
	"github.com/kforum/moderation/pkg/infra/audit"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCache() *cache.Cache {
	client, _ := redismock.NewClientMock()
	return cache.NewCache(client)
}

func TestCreator_PublishesSafePost(t *testing.T) {
	repo := new(postMocks.Repository)
	evaluator := new(moderationMocks.Evaluator)
	creator := appPost.NewCreator(logrus.New(), repo, evaluator, newTestCache(), audit.NewNoopExporter())

	evaluator.On("Evaluate", mock.Anything, "Mess review\n\nthe food got better").
		Return(moderation.Verdict{
			IsUnsafe:   false,
			Confidence: 0.04,
			Source:     moderation.SourceExternalClassifier,
		})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	entity, err := creator.Create(context.Background(), appPost.CreateInput{
		Title:    "Mess review",
		Content:  "the food got better",
		AuthorID: "author-1",
		Category: "campus",
	})

	require.NoError(t, err)
	assert.Equal(t, domainPost.StatusPublished, entity.Status)
	assert.Equal(t, domainPost.LegacyApproved, entity.LegacyStatus)
	repo.AssertExpectations(t)
	evaluator.AssertExpectations(t)
}

func TestCreator_HoldsUnsafePost(t *testing.T) {
	repo := new(postMocks.Repository)
	evaluator := new(moderationMocks.Evaluator)
	creator := appPost.NewCreator(logrus.New(), repo, evaluator, newTestCache(), audit.NewNoopExporter())

	evaluator.On("Evaluate", mock.Anything, mock.Anything).
		Return(moderation.Verdict{
			IsUnsafe:   true,
			Confidence: 0.62,
			Source:     moderation.SourceExternalClassifier,
		})
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domainPost.Post) bool {
		return p.Status == domainPost.StatusPendingReview
	})).Return(nil)

	entity, err := creator.Create(context.Background(), appPost.CreateInput{
		Title:    "borderline",
		Content:  "borderline content",
		AuthorID: "author-1",
	})

	require.NoError(t, err)
	assert.Equal(t, domainPost.StatusPendingReview, entity.Status)
}

func TestCreator_RejectsHighConfidenceToxicity(t *testing.T) {
	repo := new(postMocks.Repository)
	evaluator := new(moderationMocks.Evaluator)
	creator := appPost.NewCreator(logrus.New(), repo, evaluator, newTestCache(), audit.NewNoopExporter())

	evaluator.On("Evaluate", mock.Anything, mock.Anything).
		Return(moderation.Verdict{
			IsUnsafe:   true,
			Confidence: 0.95,
			Source:     moderation.SourceExternalClassifier,
		})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	entity, err := creator.Create(context.Background(), appPost.CreateInput{
		Title:    "abusive",
		Content:  "abusive content",
		AuthorID: "author-1",
	})

	require.NoError(t, err)
	assert.Equal(t, domainPost.StatusRejected, entity.Status)
	assert.Equal(t, domainPost.LegacyFlagged, entity.LegacyStatus)
}

func TestCreator_InvalidatesListingsForHeldPost(t *testing.T) {
	repo := new(postMocks.Repository)
	evaluator := new(moderationMocks.Evaluator)
	client, redisMock := redismock.NewClientMock()
	creator := appPost.NewCreator(logrus.New(), repo, evaluator, cache.NewCache(client), audit.NewNoopExporter())

	evaluator.On("Evaluate", mock.Anything, mock.Anything).
		Return(moderation.Verdict{
			IsUnsafe:   true,
			Confidence: 0.62,
			Source:     moderation.SourceExternalClassifier,
		})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// A held post lands in the review queue, so its cached pages go stale too.
	redisMock.ExpectScan(0, "posts:published:*", 100).SetVal([]string{}, 0)
	redisMock.ExpectScan(0, "posts:review:*", 100).SetVal([]string{"posts:review:1:10"}, 0)
	redisMock.ExpectDel("posts:review:1:10").SetVal(1)

	entity, err := creator.Create(context.Background(), appPost.CreateInput{
		Title:    "borderline",
		Content:  "borderline content",
		AuthorID: "author-1",
	})

	require.NoError(t, err)
	assert.Equal(t, domainPost.StatusPendingReview, entity.Status)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCreator_ValidatesInput(t *testing.T) {
	repo := new(postMocks.Repository)
	evaluator := new(moderationMocks.Evaluator)
	creator := appPost.NewCreator(logrus.New(), repo, evaluator, newTestCache(), audit.NewNoopExporter())

	cases := []appPost.CreateInput{
		{Content: "no title", AuthorID: "a"},
		{Title: "no content", AuthorID: "a"},
		{Title: "no author", Content: "body"},
		{Title: "   ", Content: "blank title", AuthorID: "a"},
	}
	for _, input := range cases {
		_, err := creator.Create(context.Background(), input)
		assert.True(t, domain.IsValidationError(err))
	}
	evaluator.AssertNotCalled(t, "Evaluate")
	repo.AssertNotCalled(t, "Create")
}
