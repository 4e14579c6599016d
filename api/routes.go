package api

import (
	"github.com/gin-gonic/gin"

	"github.com/taalhuis/taalhuis/api/handlers"
)

// SetupRoutes initializes all API endpoints
func SetupRoutes(router *gin.Engine, h *handlers.Handler) {
	api := router.Group("/api")
	{
		api.GET("/personas", h.ListPersonas)
		api.POST("/lessons/:persona", h.RunLesson)
	}

	router.GET("/ws", h.HandleWebSocket)
}
