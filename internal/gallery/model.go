package gallery

import (
	"net/http"
	"time"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "Galeri öğesi bulunamadı.")
	ErrFileNotFound  = apperror.New(http.StatusNotFound, "Dosya bulunamadı.")
	ErrLabelRequired = apperror.New(http.StatusBadRequest, "Lütfen bir başlık girin.")
	ErrInvalidImage  = apperror.New(http.StatusBadRequest, "Geçersiz görsel dosyası.")
	ErrImageTooLarge = apperror.New(http.StatusRequestEntityTooLarge, "Görsel en fazla 10 MB olabilir.")
)

// MsgStorageFailed is shown when an upload could not be written to storage.
const MsgStorageFailed = "Görsel kaydedilemedi. Lütfen tekrar deneyin."

// Item is one tile of the public gallery. Uploaded items carry the storage
// paths of their files; items created from an external URL do not.
type Item struct {
	ID            string
	Emoji         string
	Label         string
	ImageURL      *string
	ThumbnailURL  *string
	StoragePath   *string
	ThumbnailPath *string
	CreatedAt     time.Time
}
