package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appComment "github.com/kforum/moderation/pkg/app/comment"
	"github.com/kforum/moderation/pkg/common"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/handlers/http/request"
	"github.com/kforum/moderation/pkg/handlers/http/response"
	"github.com/sirupsen/logrus"
)

type createCommentHandler struct {
	logger  *logrus.Logger
	creator appComment.Creator
}

func NewCreateCommentHandler(logger *logrus.Logger, creator appComment.Creator) Handler {
	return &createCommentHandler{
		logger:  logger,
		creator: creator,
	}
}

func (s *createCommentHandler) Handle(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post ID"})
	}

	var req request.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		s.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		parsed, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid parent comment ID"})
		}
		parentID = &parsed
	}

	authorID, _ := c.Locals(common.UserIDLocalKey).(string)

	entity, err := s.creator.Create(c.Context(), appComment.CreateInput{
		PostID:      postID,
		Content:     req.Content,
		AuthorID:    authorID,
		IsAnonymous: req.IsAnonymous,
		ParentID:    parentID,
	})
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case domain.IsNotFoundError(err), errors.Is(err, domain.ErrPostNotVisible):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		}
		s.logger.WithError(err).Error("failed to create comment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create comment"})
	}

	return c.Status(fiber.StatusCreated).JSON(response.FromComment(entity))
}
