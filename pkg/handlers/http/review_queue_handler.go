package http

import (
	"github.com/gofiber/fiber/v2"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/common"
	"github.com/kforum/moderation/pkg/handlers/http/response"
	"github.com/sirupsen/logrus"
)

type reviewQueueHandler struct {
	logger *logrus.Logger
	finder appPost.Finder
}

func NewReviewQueueHandler(logger *logrus.Logger, finder appPost.Finder) Handler {
	return &reviewQueueHandler{
		logger: logger,
		finder: finder,
	}
}

func (s *reviewQueueHandler) Handle(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", common.DefaultPageSize)
	if limit < 1 || limit > common.MaxPageSize {
		limit = common.DefaultPageSize
	}

	result, err := s.finder.ListHeld(c.Context(), (page-1)*limit, limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list review queue")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list review queue"})
	}

	return c.JSON(response.PostPage{
		Posts:      response.FromPosts(result.Posts),
		Total:      result.Total,
		Page:       page,
		TotalPages: (result.Total + int64(limit) - 1) / int64(limit),
	})
}
