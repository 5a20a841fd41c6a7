package gallery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
	"github.com/halisaha/field-booking-backend/internal/pkg/storage"
)

const (
	// MaxUploadBytes caps the size of an uploaded image.
	MaxUploadBytes = 10 << 20

	imageMaxSide     = 1600
	thumbnailMaxSide = 400
)

type CreateRequest struct {
	Emoji    string
	Label    string
	ImageURL string
}

type UploadRequest struct {
	Emoji   string
	Label   string
	Content io.Reader
}

type Service interface {
	List(ctx context.Context) ([]*Item, error)
	// Create adds an item that points at an external image, if any.
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	// Upload stores an image with a thumbnail and adds an item for it.
	Upload(ctx context.Context, req UploadRequest) (*Item, error)
	Delete(ctx context.Context, id string) error
	// Open streams a stored file. The caller closes the reader.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type service struct {
	repo      Repository
	storage   storage.Storage
	imgProc   *storage.ImageProcessor
	publicURL string
}

// NewService creates the gallery service. publicURL is the route prefix the
// stored files are served under, e.g. "/v1/gallery/files".
func NewService(repo Repository, store storage.Storage, publicURL string) Service {
	return &service{
		repo:      repo,
		storage:   store,
		imgProc:   storage.NewImageProcessor(),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *service) List(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, ErrLabelRequired
	}

	it := &Item{
		Emoji: strings.TrimSpace(req.Emoji),
		Label: label,
	}
	if u := strings.TrimSpace(req.ImageURL); u != "" {
		it.ImageURL = &u
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Upload(ctx context.Context, req UploadRequest) (*Item, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, ErrLabelRequired
	}

	// Read one byte past the limit to detect oversized uploads.
	raw, err := io.ReadAll(io.LimitReader(req.Content, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrImageTooLarge
	}

	image, err := s.imgProc.Fit(bytes.NewReader(raw), imageMaxSide, imageMaxSide)
	if err != nil {
		return nil, ErrInvalidImage
	}
	thumb, err := s.imgProc.Fit(bytes.NewReader(raw), thumbnailMaxSide, thumbnailMaxSide)
	if err != nil {
		return nil, ErrInvalidImage
	}

	// Sharding path: gallery/ab/UUID.jpg
	id := uuid.NewString()
	imagePath := fmt.Sprintf("gallery/%s/%s.jpg", id[:2], id)
	thumbPath := fmt.Sprintf("gallery/%s/%s_thumb.jpg", id[:2], id)

	if err := s.storage.Save(ctx, imagePath, image); err != nil {
		return nil, apperror.Wrap(fmt.Errorf("save image: %w", err), http.StatusInternalServerError, MsgStorageFailed)
	}
	if err := s.storage.Save(ctx, thumbPath, thumb); err != nil {
		s.cleanup(ctx, imagePath)
		return nil, apperror.Wrap(fmt.Errorf("save thumbnail: %w", err), http.StatusInternalServerError, MsgStorageFailed)
	}

	imageURL := s.publicURL + "/" + imagePath
	thumbURL := s.publicURL + "/" + thumbPath
	it := &Item{
		ID:            id,
		Emoji:         strings.TrimSpace(req.Emoji),
		Label:         label,
		ImageURL:      &imageURL,
		ThumbnailURL:  &thumbURL,
		StoragePath:   &imagePath,
		ThumbnailPath: &thumbPath,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		s.cleanup(ctx, imagePath, thumbPath)
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("item_id", it.ID).Int("bytes", len(raw)).Msg("gallery image uploaded")
	return it, nil
}

// cleanup removes stored files on a best-effort basis.
func (s *service) cleanup(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if err := s.storage.Delete(ctx, p); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("path", p).Msg("failed to remove stored file")
		}
	}
}

func (s *service) Delete(ctx context.Context, id string) error {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	var paths []string
	if it.StoragePath != nil {
		paths = append(paths, *it.StoragePath)
	}
	if it.ThumbnailPath != nil {
		paths = append(paths, *it.ThumbnailPath)
	}
	s.cleanup(ctx, paths...)
	return nil
}

func (s *service) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	rc, err := s.storage.Get(ctx, strings.TrimPrefix(path, "/"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return rc, nil
}
