package api

import (
	"github.com/gin-gonic/gin"

	"github.com/taalhuis/taalhuis/api/handlers"
)

// NewRouter builds the gin engine with all lesson routes attached.
func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()
	SetupRoutes(r, h)
	return r
}
