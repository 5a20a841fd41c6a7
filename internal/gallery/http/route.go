package http

import (
	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

// FilesPath is where stored gallery images are served, relative to the API group.
const FilesPath = "/gallery/files"

func RegisterRoutes(g *gin.RouterGroup, h *GalleryHandler, sessionMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	public := g.Group("/gallery")
	{
		public.GET("", h.List)
		public.GET("/files/*path", h.ServeFile)
	}

	// === Admin Routes ===
	admin := g.Group("/admin/gallery")
	admin.Use(sessionMiddleware, auth.RequirePermission(auth.PermManageGallery))
	{
		admin.POST("", h.Create)
		admin.DELETE("/:id", h.Delete)
	}
}
