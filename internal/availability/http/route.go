package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the staff availability endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, manageMiddleware gin.HandlerFunc) {
	group := g.Group("/availability")

	group.Use(authMiddleware)
	{
		group.GET("", h.GetSnapshot)
		group.PUT("/config", manageMiddleware, h.UpdateConfig)
		group.PUT("/days/:date", manageMiddleware, h.SetDayOverride)
	}
}
