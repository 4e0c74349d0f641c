package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kforum/moderation/pkg/common"
	"github.com/kforum/moderation/pkg/infra/jwt"
	"github.com/sirupsen/logrus"
)

// optionalAuthMiddleware decodes a bearer token when one is present but
// never rejects the request. Public reads use it so authors still see
// their own held posts.
type optionalAuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewOptionalAuthMiddleware(logger *logrus.Logger, jwtManager jwt.Manager) Middleware {
	return &optionalAuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *optionalAuthMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(authorizationHeader)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return ctx.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		claims, err := m.jwtManager.DecodeToken(tokenString)
		if err != nil || claims.UserID == "" {
			m.logger.WithError(err).Debug("ignoring invalid token on public route")
			return ctx.Next()
		}

		ctx.Locals(common.UserIDLocalKey, claims.UserID)
		ctx.Locals(common.IsAdminLocalKey, claims.IsAdmin)
		return ctx.Next()
	}
}
