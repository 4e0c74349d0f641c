package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/common"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/handlers/http/response"
	"github.com/sirupsen/logrus"
)

type getPostHandler struct {
	logger *logrus.Logger
	finder appPost.Finder
}

func NewGetPostHandler(logger *logrus.Logger, finder appPost.Finder) Handler {
	return &getPostHandler{
		logger: logger,
		finder: finder,
	}
}

func (s *getPostHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post ID"})
	}

	viewerID, _ := c.Locals(common.UserIDLocalKey).(string)
	isAdmin, _ := c.Locals(common.IsAdminLocalKey).(bool)

	entity, err := s.finder.Get(c.Context(), id, viewerID, isAdmin)
	if err != nil {
		if domain.IsNotFoundError(err) || errors.Is(err, domain.ErrPostNotVisible) {
			// Held posts are indistinguishable from absent ones for
			// everyone but their author and administrators.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		}
		s.logger.WithError(err).Error("failed to fetch post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch post"})
	}

	return c.JSON(response.FromPost(entity))
}
