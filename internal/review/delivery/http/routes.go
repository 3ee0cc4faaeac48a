package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/middleware"
)

// RegisterRoutes maps the draft endpoints. Creating a draft calls the model, so it shares the extraction limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	drafts := rg.Group("/drafts", mw.Auth())
	{
		drafts.POST("", mw.ExtractionRateLimit(), h.Create)
		drafts.GET("/:id", h.Get)
		drafts.DELETE("/:id", h.Cancel)
		drafts.POST("/:id/items", h.AppendItem)
		drafts.PATCH("/:id/items/:index", h.EditItem)
		drafts.DELETE("/:id/items/:index", h.RemoveItem)
		drafts.POST("/:id/approve", h.Approve)
	}
}
