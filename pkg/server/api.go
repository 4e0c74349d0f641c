package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/kforum/moderation/pkg/config"
	handlers "github.com/kforum/moderation/pkg/handlers/http"
	"github.com/kforum/moderation/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type (
	ApiServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ApiServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ApiServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *ApiServer) setupRoutes() {
	baseRouter := s.Router.Group("")
	s.addRoutes(baseRouter)
}

func (s *ApiServer) addRoutes(router fiber.Router) {
	auth := s.middlewareTransport.AuthMiddleware.Middleware()
	optionalAuth := s.middlewareTransport.OptionalAuthMiddleware.Middleware()
	admin := s.middlewareTransport.AdminMiddleware.Middleware()

	v1 := router.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.Get("", s.handlerTransport.ListPostsHandler.Handle)
			posts.Post("", auth, s.handlerTransport.CreatePostHandler.Handle)
			posts.Get("/:post_id", optionalAuth, s.handlerTransport.GetPostHandler.Handle)
			posts.Post("/:post_id/report", auth, s.handlerTransport.ReportPostHandler.Handle)

			comments := posts.Group("/:post_id/comments")
			{
				comments.Get("", s.handlerTransport.ListCommentsHandler.Handle)
				comments.Post("", auth, s.handlerTransport.CreateCommentHandler.Handle)
			}
		}

		review := v1.Group("/moderation", auth, admin)
		{
			review.Get("/queue", s.handlerTransport.ReviewQueueHandler.Handle)
			review.Post("/posts/:post_id/resolve", s.handlerTransport.ResolvePostHandler.Handle)
		}
	}
}

func (s *ApiServer) Shutdown() error {
	return s.Router.Shutdown()
}
