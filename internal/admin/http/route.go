package http

import (
	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *AdminHandler, sessionMiddleware, optionalSession gin.HandlerFunc) {
	group := g.Group("/admin")

	// === Public Routes ===
	{
		group.GET("/setup", h.SetupStatus)
		group.POST("/setup", h.Setup)
		group.POST("/login", h.Login)
		group.POST("/logout", h.Logout)
		group.GET("/check", optionalSession, h.Check)
	}

	// === Authenticated Routes ===
	group.GET("/permissions", sessionMiddleware, h.Permissions)

	// === Super Admin Routes ===
	users := group.Group("/users")
	users.Use(sessionMiddleware, auth.RequireSuperAdmin())
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
