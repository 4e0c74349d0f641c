package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/handlers/http/request"
	"github.com/kforum/moderation/pkg/handlers/http/response"
	"github.com/sirupsen/logrus"
)

type resolvePostHandler struct {
	logger   *logrus.Logger
	resolver appPost.Resolver
}

func NewResolvePostHandler(logger *logrus.Logger, resolver appPost.Resolver) Handler {
	return &resolvePostHandler{
		logger:   logger,
		resolver: resolver,
	}
}

func (s *resolvePostHandler) Handle(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post ID"})
	}

	var req request.ResolvePostRequest
	if err := c.BodyParser(&req); err != nil {
		s.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	var approve bool
	switch req.Action {
	case "approve":
		approve = true
	case "reject":
		approve = false
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "action must be approve or reject"})
	}

	entity, err := s.resolver.Resolve(c.Context(), postID, approve)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		}
		s.logger.WithError(err).Error("failed to resolve post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to resolve post"})
	}

	return c.Status(fiber.StatusOK).JSON(response.FromPost(entity))
}
