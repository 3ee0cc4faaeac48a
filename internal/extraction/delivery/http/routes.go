package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/middleware"
)

// RegisterRoutes maps extraction endpoints. The extractor is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/extractions", mw.Auth(), mw.ExtractionRateLimit(), h.Extract)
}
