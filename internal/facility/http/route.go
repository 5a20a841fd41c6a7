package http

import (
	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *FacilityHandler, sessionMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	public := g.Group("/facilities")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	// === Admin Routes ===
	admin := g.Group("/admin/facilities")
	admin.Use(sessionMiddleware, auth.RequirePermission(auth.PermManageFacilities))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
