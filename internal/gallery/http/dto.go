package http

import (
	"time"

	"github.com/halisaha/field-booking-backend/internal/gallery"
)

type ItemResponse struct {
	ID           string    `json:"id"`
	Emoji        string    `json:"emoji"`
	Label        string    `json:"label"`
	ImageURL     *string   `json:"image_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewItemResponse(it *gallery.Item) ItemResponse {
	return ItemResponse{
		ID:           it.ID,
		Emoji:        it.Emoji,
		Label:        it.Label,
		ImageURL:     it.ImageURL,
		ThumbnailURL: it.ThumbnailURL,
		CreatedAt:    it.CreatedAt,
	}
}

// CreateItemBody is the JSON form of a gallery item. Uploads send the same
// fields as multipart form values next to the "image" file.
type CreateItemBody struct {
	Emoji    string `json:"emoji" form:"emoji"`
	Label    string `json:"label" form:"label" binding:"required"`
	ImageURL string `json:"image_url" form:"image_url" binding:"omitempty,url"`
}
