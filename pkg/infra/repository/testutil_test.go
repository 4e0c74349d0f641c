package repository_test

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain/moderation"
	"github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/infra/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, status post.Status) *post.Post {
	t.Helper()
	entity := &post.Post{
		Title:        "seed title",
		Content:      "seed content",
		AuthorID:     "author-1",
		Category:     "general",
		Status:       status,
		LegacyStatus: post.Mirror(status),
		Moderation: moderation.Verdict{
			IsUnsafe:   status != post.StatusPublished,
			Confidence: 0.1,
			Source:     moderation.SourceExternalClassifier,
		},
	}
	require.NoError(t, db.Create(entity).Error)
	return entity
}
