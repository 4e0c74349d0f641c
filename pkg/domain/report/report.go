package report

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is one (post, reporting user) pair. Uniqueness over that pair is
// enforced by the persistence layer, so a second report from the same user
// is a constraint violation, not a second row.
type Report struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PostID     uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex:idx_reports_post_reporter"`
	ReporterID string    `json:"reporter_id" gorm:"uniqueIndex:idx_reports_post_reporter"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r Report) TableName() string {
	return "reports"
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		id, err := uuid.NewV6()
		if err != nil {
			return err
		}
		r.ID = id
	}
	r.CreatedAt = time.Now()
	return nil
}
