package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the staff appointment endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, manageMiddleware, deleteMiddleware gin.HandlerFunc) {
	group := g.Group("/appointments")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", manageMiddleware, h.Create)
		group.PATCH("/:id/status", manageMiddleware, h.Transition)
		group.DELETE("/:id", deleteMiddleware, h.Delete)
	}
}

// RegisterPublicRoutes mounts the unauthenticated customer booking endpoint.
func RegisterPublicRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/appointments", h.CreatePublic)
}
