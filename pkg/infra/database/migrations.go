package database

import (
	"github.com/kforum/moderation/pkg/domain/comment"
	"github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/domain/report"
	"gorm.io/gorm"
)

// Migrate applies the schema and then reconciles rows written before the
// canonical status field existed: for those, the legacy mirror is the only
// truth, so the status is derived from it.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&post.Post{}, &comment.Comment{}, &report.Report{}); err != nil {
		return err
	}
	return backfillStatus(db)
}

func backfillStatus(db *gorm.DB) error {
	for _, table := range []string{"posts", "comments"} {
		err := db.Table(table).
			Where("(status IS NULL OR status = '') AND moderation_status = ?", post.LegacyApproved).
			Update("status", post.StatusPublished).Error
		if err != nil {
			return err
		}
		err = db.Table(table).
			Where("(status IS NULL OR status = '') AND moderation_status = ?", post.LegacyFlagged).
			Update("status", post.StatusPendingReview).Error
		if err != nil {
			return err
		}
	}
	return nil
}
