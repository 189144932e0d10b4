package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ebegrace/zion-academy-api/api/swagger"
	"github.com/ebegrace/zion-academy-api/internal/handler"
	"github.com/ebegrace/zion-academy-api/internal/middleware"
	"github.com/ebegrace/zion-academy-api/internal/repository"
	"github.com/ebegrace/zion-academy-api/internal/service"
	"github.com/ebegrace/zion-academy-api/pkg/cache"
	"github.com/ebegrace/zion-academy-api/pkg/config"
	"github.com/ebegrace/zion-academy-api/pkg/database"
	"github.com/ebegrace/zion-academy-api/pkg/export"
	"github.com/ebegrace/zion-academy-api/pkg/logger"
	corsmiddleware "github.com/ebegrace/zion-academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ebegrace/zion-academy-api/pkg/middleware/requestid"
	"github.com/ebegrace/zion-academy-api/pkg/storage"
)

// @title Ebegrace Zion Academy API
// @version 1.0.0
// @description Notices, admissions and enrollment backend for the school website
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	mongo, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to mongodb", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongo.Close(ctx); err != nil {
			logr.Warn("mongodb disconnect failed", zap.Error(err))
		}
	}()

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongo.EnsureIndexes(indexCtx); err != nil {
		logr.Warn("failed to ensure indexes", zap.Error(err))
	}
	cancelIndex()

	var cacheRepo service.CacheRepository
	if cfg.FeedCache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, feed cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close() //nolint:errcheck
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	feedCache := service.NewCacheService(cacheRepo, cfg.FeedCache.TTL, logr, cfg.FeedCache.Enabled && cacheRepo != nil)

	uploadStore, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}
	exportStore, err := storage.NewLocalStorage(cfg.Exports.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}

	validate := validator.New()

	noticeRepo := repository.NewNoticeRepository(mongo.Database)
	applicationRepo := repository.NewApplicationRepository(mongo.Database)
	studentRepo := repository.NewStudentRepository(mongo.Database)
	userRepo := repository.NewUserRepository(mongo.Database)

	noticeSvc := service.NewNoticeService(noticeRepo, feedCache, logr)
	exportSvc := service.NewExportService(noticeSvc, export.NewNoticePDF(), exportStore, logr, cfg.School.Name)
	admissionSvc := service.NewAdmissionService(applicationRepo, studentRepo, service.NewLogNotifier(logr), validate, logr, service.EnrollmentConfig{
		StudentIDPrefix: cfg.School.StudentIDPrefix,
		DefaultRegion:   cfg.School.DefaultRegion,
	})
	studentSvc := service.NewStudentService(studentRepo)
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
	})
	metricsSvc := service.NewMetricsService()

	noticeHandler := handler.NewNoticeHandler(noticeSvc, exportSvc)
	admissionHandler := handler.NewAdmissionHandler(admissionSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	uploadHandler := handler.NewUploadHandler(uploadStore, cfg.Uploads.MaxFileSizeBytes, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	r.Static("/uploads", cfg.Uploads.Dir)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/notices", noticeHandler.Feed)
		api.GET("/notices/board", noticeHandler.Board)
		api.GET("/notices/ticker", noticeHandler.Ticker)

		api.POST("/applications", admissionHandler.Submit)

		protected := api.Group("", middleware.JWT(authSvc))
		{
			protected.POST("/notices", noticeHandler.Create)
			protected.GET("/notices/manage", noticeHandler.Manage)
			protected.DELETE("/notices/:id", noticeHandler.Delete)
			protected.POST("/notices/export", noticeHandler.Export)

			protected.GET("/applications", admissionHandler.List)
			protected.POST("/applications/:id/accept", admissionHandler.Accept)

			protected.GET("/students", studentHandler.List)
			protected.POST("/upload", uploadHandler.Upload)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
