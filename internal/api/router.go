package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/halisaha/field-booking-backend/internal/admin"
	adminHttp "github.com/halisaha/field-booking-backend/internal/admin/http"
	"github.com/halisaha/field-booking-backend/internal/auth"
	"github.com/halisaha/field-booking-backend/internal/booking"
	bookingHttp "github.com/halisaha/field-booking-backend/internal/booking/http"
	"github.com/halisaha/field-booking-backend/internal/contact"
	contactHttp "github.com/halisaha/field-booking-backend/internal/contact/http"
	"github.com/halisaha/field-booking-backend/internal/facility"
	facilityHttp "github.com/halisaha/field-booking-backend/internal/facility/http"
	"github.com/halisaha/field-booking-backend/internal/field"
	fieldHttp "github.com/halisaha/field-booking-backend/internal/field/http"
	"github.com/halisaha/field-booking-backend/internal/gallery"
	galleryHttp "github.com/halisaha/field-booking-backend/internal/gallery/http"
	"github.com/halisaha/field-booking-backend/internal/pkg/logger"
	"github.com/halisaha/field-booking-backend/internal/setting"
	settingHttp "github.com/halisaha/field-booking-backend/internal/setting/http"
)

// devOrigins are allowed outside production (local frontend dev servers).
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Config carries what the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	Logger       zerolog.Logger

	Sessions *auth.SessionManager

	AdminService    admin.Service
	FacilityService facility.Service
	FieldService    field.Service
	BookingService  booking.Service
	GalleryService  gallery.Service
	ContactService  contact.Service
	SettingService  setting.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: request-scoped zerolog logger plus one access line per request.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(logger.Middleware(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	// The admin session is a cookie, so credentials must be allowed.
	config := cors.DefaultConfig()
	config.AllowOrigins = devOrigins
	if cfg.IsProduction {
		config.AllowOrigins = cfg.ProdOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour
	r.Use(cors.New(config))

	// sessionMiddleware: rejects requests without a valid admin session and
	// reloads the admin's role and permissions for every request.
	sessionMiddleware := auth.SessionRequired(cfg.Sessions, cfg.AdminService)
	// optionalSession: attaches the admin when signed in, lets visitors through otherwise.
	optionalSession := auth.OptionalSession(cfg.Sessions, cfg.AdminService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	adminHandler := adminHttp.NewHandler(cfg.AdminService, cfg.Sessions, cfg.IsProduction)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	fieldHandler := fieldHttp.NewHandler(cfg.FieldService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	galleryHandler := galleryHttp.NewHandler(cfg.GalleryService)
	contactHandler := contactHttp.NewHandler(cfg.ContactService)
	settingHandler := settingHttp.NewHandler(cfg.SettingService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		adminHttp.RegisterRoutes(v1, adminHandler, sessionMiddleware, optionalSession)
		facilityHttp.RegisterRoutes(v1, facilityHandler, sessionMiddleware)
		fieldHttp.RegisterRoutes(v1, fieldHandler, sessionMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, sessionMiddleware, optionalSession)
		galleryHttp.RegisterRoutes(v1, galleryHandler, sessionMiddleware)
		contactHttp.RegisterRoutes(v1, contactHandler, sessionMiddleware)
		settingHttp.RegisterRoutes(v1, settingHandler, sessionMiddleware)
	}

	return r
}
