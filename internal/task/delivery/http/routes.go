package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/middleware"
)

// RegisterRoutes maps the task endpoints. Every route requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("/bulk", h.CreateBulk)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
