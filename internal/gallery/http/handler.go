package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/halisaha/field-booking-backend/internal/gallery"
	"github.com/halisaha/field-booking-backend/internal/pkg/request"
	"github.com/halisaha/field-booking-backend/internal/pkg/response"
)

// imageFormField is the multipart field carrying an uploaded image.
const imageFormField = "image"

type GalleryHandler struct {
	service gallery.Service
}

func NewHandler(service gallery.Service) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// List returns the gallery, newest first.
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = NewItemResponse(it)
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

// Create accepts either a JSON body or a multipart upload with an image file.
func (h *GalleryHandler) Create(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.upload(c)
		return
	}

	var body CreateItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, gallery.ErrLabelRequired.Message, err)
		return
	}

	it, err := h.service.Create(c.Request.Context(), gallery.CreateRequest{
		Emoji:    body.Emoji,
		Label:    body.Label,
		ImageURL: body.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": NewItemResponse(it)})
}

func (h *GalleryHandler) upload(c *gin.Context) {
	var body CreateItemBody
	if err := c.ShouldBind(&body); err != nil {
		response.BadRequest(c, gallery.ErrLabelRequired.Message, err)
		return
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		response.BadRequest(c, gallery.ErrInvalidImage.Message, err)
		return
	}
	if fileHeader.Size > gallery.MaxUploadBytes {
		response.Error(c, gallery.ErrImageTooLarge)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	it, err := h.service.Upload(c.Request.Context(), gallery.UploadRequest{
		Emoji:   body.Emoji,
		Label:   body.Label,
		Content: src,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": NewItemResponse(it)})
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz galeri kimliği.", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ServeFile streams a stored gallery image. Stored images are always JPEG.
func (h *GalleryHandler) ServeFile(c *gin.Context) {
	stream, err := h.service.Open(c.Request.Context(), c.Param("path"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started.
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("gallery file stream interrupted")
	}
}
