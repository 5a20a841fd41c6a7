package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// ImageProcessor shrinks gallery uploads.
type ImageProcessor struct {
	quality int
}

// NewImageProcessor creates an ImageProcessor writing JPEGs at quality 80.
func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{quality: 80}
}

// Fit decodes content and scales it down to fit the maxWidth x maxHeight box,
// keeping the aspect ratio. Images already smaller than the box are not enlarged.
// The result is always encoded as JPEG.
func (p *ImageProcessor) Fit(content io.Reader, maxWidth, maxHeight int) (*bytes.Buffer, error) {
	img, err := imaging.Decode(content, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, resized, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf, nil
}
