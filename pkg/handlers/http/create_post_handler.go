package http

import (
	"github.com/gofiber/fiber/v2"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/common"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/handlers/http/request"
	"github.com/kforum/moderation/pkg/handlers/http/response"
	"github.com/sirupsen/logrus"
)

type createPostHandler struct {
	logger  *logrus.Logger
	creator appPost.Creator
}

func NewCreatePostHandler(logger *logrus.Logger, creator appPost.Creator) Handler {
	return &createPostHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle accepts a submission, runs it through moderation and answers with
// the stored post, including the outcome the author was routed to.
func (s *createPostHandler) Handle(c *fiber.Ctx) error {
	var req request.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		s.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	authorID, _ := c.Locals(common.UserIDLocalKey).(string)

	entity, err := s.creator.Create(c.Context(), appPost.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    authorID,
		Category:    req.Category,
		Tags:        req.Tags,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		s.logger.WithError(err).Error("failed to create post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create post"})
	}

	return c.Status(fiber.StatusCreated).JSON(response.FromPost(entity))
}
