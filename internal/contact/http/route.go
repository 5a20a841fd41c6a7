package http

import (
	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *ContactHandler, sessionMiddleware gin.HandlerFunc) {
	g.POST("/contact", h.Submit)

	admin := g.Group("/admin/contact")
	admin.Use(sessionMiddleware, auth.RequirePermission(auth.PermViewMessages))
	{
		admin.GET("", h.List)
	}
}
