package repository

import (
	"context"
	"errors"

	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/domain/report"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{
		db: db,
	}
}

// File runs the whole report flow in one transaction: unique insert, atomic
// counter increment, and a conditional status flip guarded by the current
// state. The conditional UPDATE (status must still be PUBLISHED) means two
// racing reports cannot both transition, and a missed transition cannot
// happen because the increment and the compare see the same row version.
func (r *reportRepository) File(ctx context.Context, entity *report.Report) (*report.Outcome, error) {
	var outcome report.Outcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entity).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateReport
			}
			return err
		}

		res := tx.Model(&post.Post{}).
			Where("id = ?", entity.PostID).
			UpdateColumn("report_count", gorm.Expr("report_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NewNotFoundError("post", entity.PostID)
		}

		var current post.Post
		if err := tx.Select("status", "report_count").First(&current, "id = ?", entity.PostID).Error; err != nil {
			return err
		}
		outcome.ReportCount = current.ReportCount
		outcome.Status = current.Status

		if post.ShouldHoldOnReport(current.Status, current.ReportCount) {
			flip := tx.Model(&post.Post{}).
				Where("id = ? AND status = ?", entity.PostID, post.StatusPublished).
				Updates(map[string]interface{}{
					"status":            post.StatusPendingReview,
					"moderation_status": post.LegacyFlagged,
				})
			if flip.Error != nil {
				return flip.Error
			}
			if flip.RowsAffected == 1 {
				outcome.Transitioned = true
				outcome.Status = post.StatusPendingReview
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}
