package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the staff calendar endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/calendar")

	group.Use(authMiddleware)
	{
		group.GET("/:year/:month", h.Month)
		group.GET("/day/:date", h.Day)
	}
}

// RegisterPublicRoutes mounts the customer-facing availability endpoint.
func RegisterPublicRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/availability/:date", h.DaySlotsPublic)
}
