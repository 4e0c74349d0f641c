package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/kforum/moderation/pkg/domain/comment"
	"github.com/kforum/moderation/pkg/domain/moderation"
	"github.com/kforum/moderation/pkg/domain/post"
)

// Post is the outward shape of a post. Anonymous posts carry no author.
type Post struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Content      string             `json:"content"`
	AuthorID     string             `json:"author_id,omitempty"`
	Category     string             `json:"category"`
	Tags         []string           `json:"tags"`
	IsAnonymous  bool               `json:"is_anonymous"`
	Status       post.Status        `json:"status"`
	LegacyStatus post.LegacyStatus  `json:"moderation_status"`
	Moderation   moderation.Verdict `json:"moderation"`
	ReportCount  int                `json:"report_count"`
	CommentCount int                `json:"comment_count"`
	ViewCount    int                `json:"view_count"`
	CreatedAt    time.Time          `json:"created_at"`
}

func FromPost(entity *post.Post) Post {
	out := Post{
		ID:           entity.ID,
		Title:        entity.Title,
		Content:      entity.Content,
		AuthorID:     entity.AuthorID,
		Category:     entity.Category,
		Tags:         entity.Tags,
		IsAnonymous:  entity.IsAnonymous,
		Status:       entity.Status,
		LegacyStatus: entity.LegacyStatus,
		Moderation:   entity.Moderation,
		ReportCount:  entity.ReportCount,
		CommentCount: entity.CommentCount,
		ViewCount:    entity.ViewCount,
		CreatedAt:    entity.CreatedAt,
	}
	if entity.IsAnonymous {
		out.AuthorID = ""
	}
	return out
}

func FromPosts(entities []post.Post) []Post {
	out := make([]Post, len(entities))
	for i := range entities {
		out[i] = FromPost(&entities[i])
	}
	return out
}

type PostPage struct {
	Posts      []Post `json:"posts"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	TotalPages int64  `json:"total_pages"`
}

type Comment struct {
	ID          uuid.UUID   `json:"id"`
	PostID      uuid.UUID   `json:"post_id"`
	Content     string      `json:"content"`
	AuthorID    string      `json:"author_id,omitempty"`
	IsAnonymous bool        `json:"is_anonymous"`
	ParentID    *uuid.UUID  `json:"parent_id,omitempty"`
	Status      post.Status `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

func FromComment(entity *comment.Comment) Comment {
	out := Comment{
		ID:          entity.ID,
		PostID:      entity.PostID,
		Content:     entity.Content,
		AuthorID:    entity.AuthorID,
		IsAnonymous: entity.IsAnonymous,
		ParentID:    entity.ParentID,
		Status:      entity.Status,
		CreatedAt:   entity.CreatedAt,
	}
	if entity.IsAnonymous {
		out.AuthorID = ""
	}
	return out
}

func FromComments(entities []comment.Comment) []Comment {
	out := make([]Comment, len(entities))
	for i := range entities {
		out[i] = FromComment(&entities[i])
	}
	return out
}
