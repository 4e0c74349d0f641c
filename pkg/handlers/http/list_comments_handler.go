package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	domainComment "github.com/kforum/moderation/pkg/domain/comment"
	"github.com/kforum/moderation/pkg/handlers/http/response"
	"github.com/sirupsen/logrus"
)

type listCommentsHandler struct {
	logger *logrus.Logger
	repo   domainComment.Repository
}

func NewListCommentsHandler(logger *logrus.Logger, repo domainComment.Repository) Handler {
	return &listCommentsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (s *listCommentsHandler) Handle(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post ID"})
	}

	comments, err := s.repo.ListPublished(c.Context(), postID)
	if err != nil {
		s.logger.WithError(err).Error("failed to list comments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list comments"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"comments": response.FromComments(comments)})
}
