package comment

import (
	"time"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain/moderation"
	"github.com/kforum/moderation/pkg/domain/post"
	"gorm.io/gorm"
)

type Comment struct {
	ID           uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	PostID       uuid.UUID          `json:"post_id" gorm:"type:uuid;index"`
	Content      string             `json:"content"`
	AuthorID     string             `json:"author_id,omitempty" gorm:"index"`
	IsAnonymous  bool               `json:"is_anonymous"`
	ParentID     *uuid.UUID         `json:"parent_id,omitempty" gorm:"type:uuid"`
	Status       post.Status        `json:"status" gorm:"index"`
	LegacyStatus post.LegacyStatus  `json:"moderation_status" gorm:"column:moderation_status;index"`
	Moderation   moderation.Verdict `json:"moderation" gorm:"embedded;embeddedPrefix:moderation_"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (c Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		id, err := uuid.NewV6()
		if err != nil {
			return err
		}
		c.ID = id
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

// ApplyVerdict assigns both status representations from the initial verdict,
// under the same mapping posts use.
func (c *Comment) ApplyVerdict(v moderation.Verdict) {
	c.Moderation = v
	c.Status = post.StateForVerdict(v)
	c.LegacyStatus = post.Mirror(c.Status)
}
