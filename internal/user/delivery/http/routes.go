package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", mw.Auth(), h.Logout)
		auth.GET("/me", mw.Auth(), h.Me)
	}
}
