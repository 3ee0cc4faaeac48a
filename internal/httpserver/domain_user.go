package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/middleware"
	userHTTP "meeting-task-extractor/internal/user/delivery/http"
	userRepo "meeting-task-extractor/internal/user/repository"
	userMemory "meeting-task-extractor/internal/user/repository/memory"
	userPostgre "meeting-task-extractor/internal/user/repository/postgre"
	userRedis "meeting-task-extractor/internal/user/repository/redis"
	userSQLite "meeting-task-extractor/internal/user/repository/sqlite"
	userUC "meeting-task-extractor/internal/user/usecase"
)

// newSessionRepository prefers Redis so logouts hold across instances.
func (srv HTTPServer) newSessionRepository(ctx context.Context) userRepo.SessionRepository {
	if srv.redis != nil {
		return userRedis.NewSessionRepository(srv.redis, srv.l)
	}
	srv.l.Warnf(ctx, "Redis not configured, revoked sessions are kept in memory")
	return userMemory.NewSessionRepository(srv.jwtConfig.TTL)
}

// setupUserDomain registers /api/v1/auth.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, sessions userRepo.SessionRepository) {
	var repo userRepo.Repository
	if srv.postgresDB != nil {
		repo = userPostgre.New(srv.postgresDB, srv.l)
	} else {
		repo = userSQLite.New(srv.sqliteDB, srv.l)
	}

	uc := userUC.New(srv.l, repo, sessions, srv.encrypter, srv.jwtManager, srv.jwtConfig.TTL)
	h := userHTTP.New(srv.l, uc, srv.cookie)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}
