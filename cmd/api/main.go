package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mohan0265/mydurhamlaw-api/api/swagger"
	"github.com/mohan0265/mydurhamlaw-api/internal/curriculum"
	"github.com/mohan0265/mydurhamlaw-api/internal/handler"
	"github.com/mohan0265/mydurhamlaw-api/internal/middleware"
	"github.com/mohan0265/mydurhamlaw-api/internal/models"
	"github.com/mohan0265/mydurhamlaw-api/internal/repository"
	"github.com/mohan0265/mydurhamlaw-api/internal/service"
	"github.com/mohan0265/mydurhamlaw-api/pkg/cache"
	"github.com/mohan0265/mydurhamlaw-api/pkg/config"
	"github.com/mohan0265/mydurhamlaw-api/pkg/database"
	"github.com/mohan0265/mydurhamlaw-api/pkg/logger"
	corsmiddleware "github.com/mohan0265/mydurhamlaw-api/pkg/middleware/cors"
	reqidmiddleware "github.com/mohan0265/mydurhamlaw-api/pkg/middleware/requestid"
)

// @title MyDurhamLaw API
// @version 1.0.0
// @description Academic term resolution, year progress and calendar service for Durham LLB students
// @BasePath /api/v1
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := curriculum.Load()
	if err := catalog.Validate(); err != nil {
		logr.Sugar().Fatalw("curriculum catalog invalid", "error", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Academic.CacheTTL, logr, cfg.Academic.CacheEnabled)
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	eventRepo := repository.NewEventRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	profileSvc := service.NewProfileService(profileRepo, validate, logr)
	eventSvc := service.NewEventService(eventRepo, validate, logr)
	termSvc := service.NewTermService(logr)
	overviewSvc := service.NewOverviewService(catalog, termSvc, cacheSvc, logr, cfg.Academic.CacheTTL)
	calendarSvc := service.NewCalendarService(eventRepo, catalog, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	academicHandler := handler.NewAcademicHandler(overviewSvc, termSvc, profileSvc, catalog)
	calendarHandler := handler.NewCalendarHandler(calendarSvc, profileSvc, cfg.Exports.CalendarName)
	eventHandler := handler.NewEventHandler(eventSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.OptionalJWT(authSvc), authHandler.Logout)
	auth.POST("/change-password", middleware.JWT(authSvc), authHandler.ChangePassword)
	auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)

	profile := api.Group("/profile", middleware.JWT(authSvc))
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)

	academic := api.Group("/academic")
	academic.GET("/current-term", academicHandler.CurrentTerm)
	authed := academic.Group("", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleStudent, models.RoleAdmin))
	authed.GET("/years/multi-year", academicHandler.MultiYear)
	authed.GET("/years/:yearKey", academicHandler.Year)
	authed.GET("/upcoming-events", academicHandler.UpcomingEvents)
	if cfg.Exports.Enabled {
		authed.GET("/years/:yearKey/export", academicHandler.ExportYear)
	}

	calendar := api.Group("/calendar", middleware.JWT(authSvc))
	calendar.GET("/month", calendarHandler.MonthGrid)
	if cfg.Exports.Enabled {
		calendar.GET("/export.ics", calendarHandler.ExportICS)
	}

	events := api.Group("/events", middleware.JWT(authSvc))
	events.GET("", eventHandler.List)
	events.POST("", eventHandler.Create)
	events.GET("/:id", eventHandler.Get)
	events.PUT("/:id", eventHandler.Update)
	events.DELETE("/:id", eventHandler.Delete)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
