package http

import "github.com/gofiber/fiber/v2"

const ErrInvalidJsonPayload = "invalid JSON payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Posts
	CreatePostHandler Handler
	GetPostHandler    Handler
	ListPostsHandler  Handler
	ReportPostHandler Handler

	// Comments
	CreateCommentHandler Handler
	ListCommentsHandler  Handler

	// Review queue
	ReviewQueueHandler Handler
	ResolvePostHandler Handler
}
