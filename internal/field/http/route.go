package http

import (
	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

// RegisterRoutes mounts the field catalog. The timetable lives under
// /fields/:id as well but is registered by the booking module.
func RegisterRoutes(g *gin.RouterGroup, h *FieldHandler, sessionMiddleware gin.HandlerFunc) {
	public := g.Group("/fields")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	admin := g.Group("/admin/fields")
	admin.Use(sessionMiddleware, auth.RequirePermission(auth.PermManageFields))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
