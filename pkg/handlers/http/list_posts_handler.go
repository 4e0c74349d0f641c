package http

import (
	"github.com/gofiber/fiber/v2"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/common"
	domainPost "github.com/kforum/moderation/pkg/domain/post"
	"github.com/kforum/moderation/pkg/handlers/http/response"
	"github.com/sirupsen/logrus"
)

type listPostsHandler struct {
	logger *logrus.Logger
	finder appPost.Finder
}

func NewListPostsHandler(logger *logrus.Logger, finder appPost.Finder) Handler {
	return &listPostsHandler{
		logger: logger,
		finder: finder,
	}
}

func (s *listPostsHandler) Handle(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", common.DefaultPageSize)
	if limit < 1 || limit > common.MaxPageSize {
		limit = common.DefaultPageSize
	}
	category := c.Query("category")
	if category == "all" {
		category = ""
	}

	result, err := s.finder.ListPublished(c.Context(), domainPost.ListQuery{
		Category: category,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to list posts")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list posts"})
	}

	return c.JSON(response.PostPage{
		Posts:      response.FromPosts(result.Posts),
		Total:      result.Total,
		Page:       page,
		TotalPages: (result.Total + int64(limit) - 1) / int64(limit),
	})
}
