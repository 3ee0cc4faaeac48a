package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/extraction"
	extractionHTTP "meeting-task-extractor/internal/extraction/delivery/http"
	extractionUC "meeting-task-extractor/internal/extraction/usecase"
	"meeting-task-extractor/internal/middleware"
	"meeting-task-extractor/internal/review"
	reviewHTTP "meeting-task-extractor/internal/review/delivery/http"
	reviewRepo "meeting-task-extractor/internal/review/repository"
	reviewMemory "meeting-task-extractor/internal/review/repository/memory"
	reviewRedis "meeting-task-extractor/internal/review/repository/redis"
	reviewUC "meeting-task-extractor/internal/review/usecase"
	"meeting-task-extractor/internal/task"
	taskHTTP "meeting-task-extractor/internal/task/delivery/http"
	taskRepo "meeting-task-extractor/internal/task/repository"
	taskPostgre "meeting-task-extractor/internal/task/repository/postgre"
	taskSQLite "meeting-task-extractor/internal/task/repository/sqlite"
	taskUC "meeting-task-extractor/internal/task/usecase"
)

// setupExtractionDomain registers POST /api/v1/extractions.
func (srv HTTPServer) setupExtractionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) extraction.UseCase {
	uc := extractionUC.New(srv.l, srv.llm, extractionUC.Config{
		Timeout:            srv.extraction.Timeout,
		MaxTranscriptChars: srv.extraction.MaxTranscriptChars,
		Temperature:        srv.extraction.Temperature,
	})

	h := extractionHTTP.New(srv.l, uc)
	extractionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Extraction domain registered")
	return uc
}

// setupTaskDomain registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	var repo taskRepo.Repository
	if srv.postgresDB != nil {
		repo = taskPostgre.New(srv.postgresDB, srv.l)
	} else {
		repo = taskSQLite.New(srv.sqliteDB, srv.l)
	}

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Google Calendar not configured, tasks will not create events")
	}

	uc := taskUC.New(srv.l, repo, srv.dateMath, srv.calendar, srv.publisher, taskUC.Config{
		FallbackDueAfter: srv.tasks.FallbackDueAfter,
		CalendarID:       srv.googleCalendar.CalendarID,
		EventDuration:    srv.googleCalendar.EventDuration,
	})

	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}

// setupReviewDomain registers /api/v1/drafts on top of the extraction and task use cases.
func (srv HTTPServer) setupReviewDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, extractor extraction.UseCase, tasks task.UseCase) review.UseCase {
	var repo reviewRepo.Repository
	if srv.redis != nil {
		repo = reviewRedis.New(srv.redis, srv.l)
	} else {
		srv.l.Warnf(ctx, "Redis not configured, review drafts are kept in memory")
		repo = reviewMemory.New(srv.review.DraftTTL)
	}

	uc := reviewUC.New(srv.l, extractor, tasks, repo, srv.review.DraftTTL)
	h := reviewHTTP.New(srv.l, uc, srv.dateMath)
	reviewHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Review domain registered")
	return uc
}
