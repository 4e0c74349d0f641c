package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	appComment "github.com/kforum/moderation/pkg/app/comment"
	"github.com/kforum/moderation/pkg/app/moderation"
	appPost "github.com/kforum/moderation/pkg/app/post"
	"github.com/kforum/moderation/pkg/cache"
	"github.com/kforum/moderation/pkg/common"
	"github.com/kforum/moderation/pkg/config"
	handlers "github.com/kforum/moderation/pkg/handlers/http"
	"github.com/kforum/moderation/pkg/infra/audit"
	"github.com/kforum/moderation/pkg/infra/audit/kafka"
	"github.com/kforum/moderation/pkg/infra/database"
	"github.com/kforum/moderation/pkg/infra/jwt"
	infraLogger "github.com/kforum/moderation/pkg/infra/logger"
	"github.com/kforum/moderation/pkg/infra/providers/factory"
	"github.com/kforum/moderation/pkg/infra/repository"
	"github.com/kforum/moderation/pkg/middleware"
	"github.com/kforum/moderation/pkg/server"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheInstance := cache.NewCache(cache.NewClient(common.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}))
	defer cacheInstance.Close()

	auditor := buildAuditExporter(logger, cfg)

	// moderation pipeline
	terms := cfg.Moderation.Terms
	if len(terms) == 0 {
		terms = moderation.DefaultTerms
	}
	termFilter := moderation.NewTermFilter(terms)

	providerClient, err := factory.NewProviderLocator().Get(cfg.Classifier.Provider)
	if err != nil {
		logger.Fatalf("Failed to initialize classifier provider: %v", err)
	}
	classifier := moderation.NewClassifier(logger, providerClient, moderation.ClassifierConfig{
		Provider:    cfg.Classifier.Provider,
		ApiKey:      cfg.Classifier.ApiKey,
		Model:       cfg.Classifier.Model,
		Timeout:     time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second,
		MaxTokens:   cfg.Classifier.MaxTokens,
		Temperature: cfg.Classifier.Temperature,
	})
	evaluator := moderation.NewEvaluator(logger, termFilter, classifier)

	// repository
	postRepository := repository.NewPostRepository(db.DB)
	commentRepository := repository.NewCommentRepository(db.DB)
	reportRepository := repository.NewReportRepository(db.DB)

	// service
	postCreator := appPost.NewCreator(logger, postRepository, evaluator, cacheInstance, auditor)
	postFinder := appPost.NewFinder(logger, postRepository, cacheInstance)
	postReporter := appPost.NewReporter(logger, reportRepository, cacheInstance)
	postResolver := appPost.NewResolver(logger, postRepository, cacheInstance, auditor)
	commentCreator := appComment.NewCreator(logger, commentRepository, postRepository, evaluator, cacheInstance, auditor)

	jwtManager := jwt.NewJwtManager(&cfg.Server)

	middlewareTransport := middleware.Transport{
		AuthMiddleware:         middleware.NewAuthMiddleware(logger, jwtManager),
		OptionalAuthMiddleware: middleware.NewOptionalAuthMiddleware(logger, jwtManager),
		AdminMiddleware:        middleware.NewAdminMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		CreatePostHandler:    handlers.NewCreatePostHandler(logger, postCreator),
		GetPostHandler:       handlers.NewGetPostHandler(logger, postFinder),
		ListPostsHandler:     handlers.NewListPostsHandler(logger, postFinder),
		ReportPostHandler:    handlers.NewReportPostHandler(logger, postReporter),
		CreateCommentHandler: handlers.NewCreateCommentHandler(logger, commentCreator),
		ListCommentsHandler:  handlers.NewListCommentsHandler(logger, commentRepository),
		ReviewQueueHandler:   handlers.NewReviewQueueHandler(logger, postFinder),
		ResolvePostHandler:   handlers.NewResolvePostHandler(logger, postResolver),
	}

	apiServer := server.NewApiServer(server.ApiServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := apiServer.Run(); err != nil {
			logger.WithError(err).Fatal("api server stopped")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.WithField("signal", sig.String()).Info("shutting down")

	if err := apiServer.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down api server")
	}
	if err := auditor.Close(); err != nil {
		logger.WithError(err).Error("failed to close audit exporter")
	}
}

func buildAuditExporter(logger *logrus.Logger, cfg *config.Config) audit.Exporter {
	if !cfg.Audit.Enabled {
		return audit.NewNoopExporter()
	}
	exporter, err := kafka.NewKafkaExporter(kafka.Config{
		Host:  cfg.Audit.Host,
		Port:  cfg.Audit.Port,
		Topic: cfg.Audit.Topic,
	})
	if err != nil {
		logger.WithError(err).Warn("audit exporter unavailable, falling back to noop")
		return audit.NewNoopExporter()
	}
	return exporter
}
