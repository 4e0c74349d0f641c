package request

type CreatePostRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsAnonymous bool     `json:"is_anonymous"`
}

type CreateCommentRequest struct {
	Content     string  `json:"content"`
	IsAnonymous bool    `json:"is_anonymous"`
	ParentID    *string `json:"parent_id"`
}

type ReportPostRequest struct {
	Reason string `json:"reason"`
}

type ResolvePostRequest struct {
	Action string `json:"action"` // "approve" or "reject"
}
