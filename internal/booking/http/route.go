package http

import (
	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, sessionMiddleware, optionalSession gin.HandlerFunc) {
	// === Public Routes ===
	public := g.Group("/bookings")
	{
		public.POST("", h.Create)
		public.GET("", optionalSession, h.List)
	}
	g.GET("/fields/:id/timetable", h.Timetable)

	// === Admin Routes ===
	admin := g.Group("/admin/bookings")
	admin.Use(sessionMiddleware)
	{
		admin.PATCH("/:id", h.Update) // permission checked per action
		admin.DELETE("/:id", auth.RequirePermission(auth.PermDeleteBookings), h.Delete)
	}

	subs := g.Group("/admin/subscriptions")
	subs.Use(sessionMiddleware, auth.RequirePermission(auth.PermManageSubscribers))
	{
		subs.GET("", h.ListSubscriptions)
		subs.POST("", h.CreateSubscription)
		subs.DELETE("/:group_id", h.CancelSubscription)
	}
}
