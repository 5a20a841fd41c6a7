package booking

import (
	"net/http"
	"time"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "Rezervasyon bulunamadı.")
	ErrFieldNotFound        = apperror.New(http.StatusNotFound, "Saha bulunamadı.")
	ErrSubscriptionNotFound = apperror.New(http.StatusNotFound, "Abonelik bulunamadı.")
	ErrInvalidInput         = apperror.New(http.StatusBadRequest, "Tüm alanlar zorunludur.")
	ErrInvalidPhone         = apperror.New(http.StatusBadRequest, "Lütfen geçerli bir telefon numarası girin.")
	ErrInvalidTimeRange     = apperror.New(http.StatusBadRequest, "Rezervasyonlar 10:00 ile 25:00 arasında bir saatlik olmalıdır.")
	ErrInvalidWeeks         = apperror.New(http.StatusBadRequest, "Hafta sayısı 1 ile 104 arasında olmalıdır.")
	ErrInvalidAction        = apperror.New(http.StatusBadRequest, "Geçersiz işlem.")
	ErrSlotInPast           = apperror.New(http.StatusBadRequest, "Geçmiş bir saat için rezervasyon yapılamaz.")
	ErrSlotTaken            = apperror.New(http.StatusConflict, "Bu saat dilimi zaten dolu. Lütfen başka bir saat seçin.")
	ErrAlreadyPending       = apperror.New(http.StatusConflict, "Bu saat için zaten bir rezervasyon talebi bekliyor.")
	ErrSubscriptionConflict = apperror.New(http.StatusConflict, "Abonelik saatleri onaylı rezervasyonlarla çakışıyor.")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
)

// Booking is one claimed hour on a field.
// Date is a calendar day at UTC midnight; StartTime and EndTime are "HH:MM".
type Booking struct {
	ID            string
	FieldID       string
	FieldName     string
	FacilityName  string
	Date          time.Time
	StartTime     string
	EndTime       string
	CustomerName  string
	CustomerPhone string
	Status        Status
	IsArchived    bool
	IsSubscriber  bool
	GroupID       *string
	CreatedAt     time.Time
}

// Occupies reports whether the booking blocks its slot.
func (b *Booking) Occupies() bool {
	return b.Status != StatusCancelled
}

type Filter struct {
	FieldID string
	From    *time.Time // inclusive
	To      *time.Time // inclusive
	// IncludeAll also returns cancelled and archived bookings.
	IncludeAll bool
}

// Action is an administrative transition applied to a single booking.
type Action string

const (
	ActionApprove         Action = "approve"
	ActionCancel          Action = "cancel"
	ActionArchive         Action = "archive"
	ActionSetSubscriber   Action = "set_subscriber"
	ActionUnsetSubscriber Action = "unset_subscriber"
)

// Apply mutates b according to the action.
func (a Action) Apply(b *Booking) error {
	switch a {
	case ActionApprove:
		b.Status = StatusApproved
	case ActionCancel:
		b.Status = StatusCancelled
	case ActionArchive:
		b.IsArchived = true
	case ActionSetSubscriber:
		b.IsSubscriber = true
		b.Status = StatusApproved
	case ActionUnsetSubscriber:
		b.IsSubscriber = false
	default:
		return ErrInvalidAction
	}
	return nil
}

// civilDay truncates t to its calendar day, expressed at UTC midnight so it
// compares cleanly with DATE values read from the database.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	return civilDay(now.In(loc))
}
