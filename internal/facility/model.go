package facility

import (
	"net/http"
	"time"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "Tesis bulunamadı.")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "Tesis adı zorunludur.")
)

// Facility is a sports venue that owns one or more fields.
type Facility struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
}
