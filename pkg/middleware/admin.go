package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kforum/moderation/pkg/common"
	"github.com/sirupsen/logrus"
)

// adminMiddleware gates the review queue. It runs after the auth middleware
// and relies on the claims it stored.
type adminMiddleware struct {
	logger *logrus.Logger
}

func NewAdminMiddleware(logger *logrus.Logger) Middleware {
	return &adminMiddleware{
		logger: logger,
	}
}

func (m *adminMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		isAdmin, ok := ctx.Locals(common.IsAdminLocalKey).(bool)
		if !ok || !isAdmin {
			m.logger.WithField("user_id", ctx.Locals(common.UserIDLocalKey)).
				Debug("non-admin attempted review queue access")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Administrator access required"})
		}
		return ctx.Next()
	}
}
