package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-task-extractor/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "meeting-task-extractor"

	readyTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings the task store and Redis when configured.
// @Summary Readiness Check
// @Description Check if the API can reach its storage
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	checks := gin.H{"storage": "ok"}
	ready := true

	if err := srv.pingStorage(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: storage: %v", err)
		checks["storage"] = "unreachable"
		ready = false
	}
	if srv.redis != nil {
		checks["redis"] = "ok"
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: redis: %v", err)
			checks["redis"] = "unreachable"
			ready = false
		}
	}

	if !ready {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "not ready",
			Data:      checks,
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"checks":  checks,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

func (srv HTTPServer) pingStorage(ctx context.Context) error {
	if srv.postgresDB != nil {
		return srv.postgresDB.Ping(ctx)
	}
	return srv.sqliteDB.PingContext(ctx)
}
