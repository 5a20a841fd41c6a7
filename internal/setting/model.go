package setting

import (
	"net/http"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
)

// MaxKeyLength bounds a settings key.
const MaxKeyLength = 64

var (
	ErrNoSettings  = apperror.New(http.StatusBadRequest, "Güncellenecek ayar bulunamadı.")
	ErrInvalidKey  = apperror.New(http.StatusBadRequest, "Geçersiz ayar anahtarı.")
	ErrInvalidBody = apperror.New(http.StatusBadRequest, "Geçersiz istek gövdesi.")
)

// Settings maps site setting keys (phone, address, opening hours text, ...) to their values.
type Settings map[string]string
