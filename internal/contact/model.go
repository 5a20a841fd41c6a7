package contact

import (
	"net/http"
	"time"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrFieldsRequired = apperror.New(http.StatusBadRequest, "Lütfen tüm alanları doldurun.")
	ErrInvalidPhone   = apperror.New(http.StatusBadRequest, "Geçerli bir telefon numarası girin.")
)

// MsgSent is returned to the visitor after a message is stored.
const MsgSent = "Mesajınız alındı. En kısa sürede size dönüş yapacağız."

// Message is a note left through the public contact form.
type Message struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Message       string
	CreatedAt     time.Time
}
