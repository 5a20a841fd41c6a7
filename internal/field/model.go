package field

import (
	"net/http"
	"time"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "Saha bulunamadı.")
	ErrFacilityNotFound = apperror.New(http.StatusNotFound, "Tesis bulunamadı.")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "Tesis ve saha adı zorunludur.")
)

// Field is a single pitch inside a facility. Bookings are made per field.
type Field struct {
	ID           string
	FacilityID   string
	FacilityName string
	Name         string
	Type         string
	CreatedAt    time.Time
}

// Filter narrows List. An empty FacilityID lists every field.
type Filter struct {
	FacilityID string
}
