package post

import (
	"time"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain/moderation"
	"gorm.io/gorm"
)

type Post struct {
	ID          uuid.UUID             `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string                `json:"title"`
	Content     string                `json:"content"`
	AuthorID    string                `json:"author_id,omitempty" gorm:"index"`
	Category    string                `json:"category" gorm:"index"`
	Tags        moderation.StringList `json:"tags" gorm:"type:jsonb"`
	IsAnonymous bool                  `json:"is_anonymous"`
	Status      Status                `json:"status" gorm:"index"`
	// LegacyStatus mirrors Status for readers that predate it. It is derived,
	// never written on its own.
	LegacyStatus LegacyStatus       `json:"moderation_status" gorm:"column:moderation_status;index"`
	Moderation   moderation.Verdict `json:"moderation" gorm:"embedded;embeddedPrefix:moderation_"`
	ReportCount  int                `json:"report_count"`
	CommentCount int                `json:"comment_count"`
	ViewCount    int                `json:"view_count"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (p Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		id, err := uuid.NewV6()
		if err != nil {
			return err
		}
		p.ID = id
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

// Visible reports whether the post may be shown to readers other than its
// author or an administrator.
func (p *Post) Visible() bool {
	return p.Status == StatusPublished
}
