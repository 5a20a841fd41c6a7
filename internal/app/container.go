package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/halisaha/field-booking-backend/internal/admin"
	"github.com/halisaha/field-booking-backend/internal/api"
	"github.com/halisaha/field-booking-backend/internal/auth"
	"github.com/halisaha/field-booking-backend/internal/booking"
	"github.com/halisaha/field-booking-backend/internal/contact"
	"github.com/halisaha/field-booking-backend/internal/facility"
	"github.com/halisaha/field-booking-backend/internal/field"
	"github.com/halisaha/field-booking-backend/internal/gallery"
	galleryHttp "github.com/halisaha/field-booking-backend/internal/gallery/http"
	"github.com/halisaha/field-booking-backend/internal/pkg/storage"
	"github.com/halisaha/field-booking-backend/internal/pkg/validation"
	"github.com/halisaha/field-booking-backend/internal/setting"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction  bool
	ProdOrigins   []string
	DBPool        *pgxpool.Pool
	Logger        zerolog.Logger
	SessionSecret string
	SessionTTL    time.Duration
	BcryptCost    int
	Location      *time.Location
	UploadDir     string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router   *gin.Engine
	Sessions *auth.SessionManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Custom binding tags (trphone, date, hourmin) must exist before any route binds.
	if err := validation.Register(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	fileStore, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}

	// Admin Module
	adminRepo := admin.NewPgxRepository(cfg.DBPool)
	adminService := admin.NewService(adminRepo, passwordHasher)

	// Facility Module
	facilityRepo := facility.NewPgxRepository(cfg.DBPool)
	facilityService := facility.NewService(facilityRepo)

	// Field Module
	fieldRepo := field.NewPgxRepository(cfg.DBPool)
	fieldService := field.NewService(fieldRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, fieldService, cfg.Location)

	// Gallery Module
	galleryRepo := gallery.NewPgxRepository(cfg.DBPool)
	galleryService := gallery.NewService(galleryRepo, fileStore, "/v1"+galleryHttp.FilesPath)

	// Contact Module
	contactRepo := contact.NewPgxRepository(cfg.DBPool)
	contactService := contact.NewService(contactRepo)

	// Setting Module
	settingRepo := setting.NewPgxRepository(cfg.DBPool)
	settingService := setting.NewService(settingRepo)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		Logger:          cfg.Logger,
		Sessions:        sessions,
		AdminService:    adminService,
		FacilityService: facilityService,
		FieldService:    fieldService,
		BookingService:  bookingService,
		GalleryService:  galleryService,
		ContactService:  contactService,
		SettingService:  settingService,
	})

	return &Container{
		Router:   router,
		Sessions: sessions,
	}, nil
}
