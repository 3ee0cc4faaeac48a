package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meeting-task-extractor/internal/middleware"
	"meeting-task-extractor/internal/model"
	userRepo "meeting-task-extractor/internal/user/repository"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	sessions := srv.newSessionRepository(ctx)
	mw := middleware.New(srv.l, srv.jwtManager, sessions, srv.cookie, srv.extraction.RateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(ctx, mw, sessions)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLogger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsEnabled {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware, sessions userRepo.SessionRepository) error {
	api := srv.gin.Group("/api/v1")

	srv.setupUserDomain(ctx, api, mw, sessions)

	extractUC := srv.setupExtractionDomain(ctx, api, mw)
	tasksUC := srv.setupTaskDomain(ctx, api, mw)
	srv.setupReviewDomain(ctx, api, mw, extractUC, tasksUC)

	return nil
}
