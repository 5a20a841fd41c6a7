package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes the site settings. Any signed-in admin may edit them.
func RegisterRoutes(g *gin.RouterGroup, h *SettingHandler, sessionMiddleware gin.HandlerFunc) {
	g.GET("/settings", h.Get)

	admin := g.Group("/admin/settings")
	admin.Use(sessionMiddleware)
	{
		admin.PATCH("", h.Update)
	}
}
