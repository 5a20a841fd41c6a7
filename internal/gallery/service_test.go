package gallery

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
	"github.com/halisaha/field-booking-backend/internal/pkg/storage"
)

type memRepo struct {
	items     map[string]*Item
	createErr error
	clock     time.Time
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]*Item{}, clock: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *memRepo) Create(_ context.Context, it *Item) error {
	if m.createErr != nil {
		return m.createErr
	}
	if it.ID == "" {
		it.ID = "item-" + it.Label
	}
	m.clock = m.clock.Add(time.Minute)
	it.CreatedAt = m.clock
	cp := *it
	m.items[it.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (m *memRepo) List(_ context.Context) ([]*Item, error) {
	var out []*Item
	for _, it := range m.items {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memStorage struct {
	objects map[string][]byte
	// failSuffix makes Save fail for paths ending with it.
	failSuffix string
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (s *memStorage) Save(_ context.Context, path string, content io.Reader) error {
	if s.failSuffix != "" && strings.HasSuffix(path, s.failSuffix) {
		return errDiskFull
	}
	b, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.objects[path] = b
	return nil
}

func (s *memStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	b, ok := s.objects[path]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *memStorage) Delete(_ context.Context, path string) error {
	delete(s.objects, path)
	return nil
}

var errDiskFull = errors.New("no space left on device")

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 140, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo(), newMemStorage(), "/v1/gallery/files")

	_, err := svc.Create(ctx, CreateRequest{Emoji: "⚽", Label: "  "})
	assert.ErrorIs(t, err, ErrLabelRequired)

	it, err := svc.Create(ctx, CreateRequest{Emoji: "⚽", Label: " Gece maçı ", ImageURL: "https://example.com/a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Gece maçı", it.Label)
	require.NotNil(t, it.ImageURL)
	assert.Equal(t, "https://example.com/a.jpg", *it.ImageURL)
	assert.Nil(t, it.StoragePath)

	noImage, err := svc.Create(ctx, CreateRequest{Emoji: "🏆", Label: "Turnuva"})
	require.NoError(t, err)
	assert.Nil(t, noImage.ImageURL)
}

func TestService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo(), newMemStorage(), "/v1/gallery/files")

	_, _ = svc.Create(ctx, CreateRequest{Label: "ilk"})
	_, _ = svc.Create(ctx, CreateRequest{Label: "son"})

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "son", items[0].Label)
}

func TestService_UploadStoresImageAndThumbnail(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage()
	svc := NewService(newMemRepo(), store, "/v1/gallery/files/")

	it, err := svc.Upload(ctx, UploadRequest{Emoji: "📸", Label: "Saha", Content: bytes.NewReader(pngImage(t, 1200, 800))})
	require.NoError(t, err)
	require.NotNil(t, it.StoragePath)
	require.NotNil(t, it.ThumbnailPath)

	assert.True(t, strings.HasPrefix(*it.StoragePath, "gallery/"+it.ID[:2]+"/"))
	assert.Equal(t, "/v1/gallery/files/"+*it.StoragePath, *it.ImageURL)
	assert.Equal(t, "/v1/gallery/files/"+*it.ThumbnailPath, *it.ThumbnailURL)
	assert.Len(t, store.objects, 2)

	rc, err := svc.Open(ctx, "/"+*it.ThumbnailPath)
	require.NoError(t, err)
	defer rc.Close()
	thumb, err := jpeg.Decode(rc)
	require.NoError(t, err)
	// 1200x800 scaled to a 400 px width; the height is truncated.
	assert.Equal(t, 400, thumb.Bounds().Dx())
	assert.Equal(t, 266, thumb.Bounds().Dy())
}

func TestService_UploadRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage()
	svc := NewService(newMemRepo(), store, "/v1/gallery/files")

	_, err := svc.Upload(ctx, UploadRequest{Label: "", Content: bytes.NewReader(pngImage(t, 10, 10))})
	assert.ErrorIs(t, err, ErrLabelRequired)

	_, err = svc.Upload(ctx, UploadRequest{Label: "bozuk", Content: strings.NewReader("not an image")})
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.Upload(ctx, UploadRequest{Label: "büyük", Content: bytes.NewReader(make([]byte, MaxUploadBytes+1))})
	assert.ErrorIs(t, err, ErrImageTooLarge)

	assert.Empty(t, store.objects)
}

func TestService_UploadCleansUpOnRepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.createErr = errors.New("db down")
	store := newMemStorage()
	svc := NewService(repo, store, "/v1/gallery/files")

	_, err := svc.Upload(ctx, UploadRequest{Label: "Saha", Content: bytes.NewReader(pngImage(t, 50, 50))})
	require.Error(t, err)
	assert.Empty(t, store.objects)
}

func TestService_UploadStorageFailure(t *testing.T) {
	tests := []struct {
		name       string
		failSuffix string
	}{
		{"image", ".jpg"},
		{"thumbnail", "_thumb.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newMemRepo()
			store := newMemStorage()
			store.failSuffix = tt.failSuffix
			svc := NewService(repo, store, "/v1/gallery/files")

			_, err := svc.Upload(ctx, UploadRequest{Label: "Saha", Content: bytes.NewReader(pngImage(t, 50, 50))})
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusInternalServerError, appErr.Code)
			assert.Equal(t, MsgStorageFailed, appErr.Message)
			assert.ErrorIs(t, err, errDiskFull)

			assert.Empty(t, store.objects)
			assert.Empty(t, repo.items)
		})
	}
}

func TestService_DeleteRemovesFiles(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage()
	svc := NewService(newMemRepo(), store, "/v1/gallery/files")

	it, err := svc.Upload(ctx, UploadRequest{Label: "Saha", Content: bytes.NewReader(pngImage(t, 50, 50))})
	require.NoError(t, err)
	require.Len(t, store.objects, 2)

	require.NoError(t, svc.Delete(ctx, it.ID))
	assert.Empty(t, store.objects)
	assert.ErrorIs(t, svc.Delete(ctx, it.ID), ErrNotFound)

	_, err = svc.Open(ctx, *it.StoragePath)
	assert.ErrorIs(t, err, ErrFileNotFound)
}
