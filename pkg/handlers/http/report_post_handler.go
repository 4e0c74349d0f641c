package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/common"
	"github.com/kforum/moderation/pkg/domain"
	"github.com/kforum/moderation/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type reportPostHandler struct {
	logger   *logrus.Logger
	reporter appPost.Reporter
}

func NewReportPostHandler(logger *logrus.Logger, reporter appPost.Reporter) Handler {
	return &reportPostHandler{
		logger:   logger,
		reporter: reporter,
	}
}

func (s *reportPostHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("post_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post ID"})
	}

	var req request.ReportPostRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
		}
	}

	reporterID, _ := c.Locals(common.UserIDLocalKey).(string)

	outcome, err := s.reporter.Report(c.Context(), id, reporterID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateReport):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "post already reported"})
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		case domain.IsValidationError(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		s.logger.WithError(err).Error("failed to file report")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to file report"})
	}

	return c.JSON(fiber.Map{
		"report_count": outcome.ReportCount,
		"status":       outcome.Status,
	})
}
