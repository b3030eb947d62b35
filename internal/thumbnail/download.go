package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/cookthumb/internal/util"
)

var (
	errEmptyImage    = errors.New("image has no pixels")
	errTooManyPixels = errors.New("image exceeds pixel budget")
)

// DownloadImage fetches url and decodes the body as an image, within limits.
func DownloadImage(ctx context.Context, url string, limits SourceLimits) (image.Image, error) {
	body, err := util.GetBytes(ctx, url, limits.Timeout, limits.MaxBytes)
	if err != nil {
		return nil, err
	}
	return decodeSource(body, limits.MaxPixels)
}

// openImage reads and decodes the image file at path, within limits.
func openImage(path string, limits SourceLimits) (image.Image, error) {
	data, err := util.ReadFileLimit(path, limits.MaxBytes)
	if err != nil {
		return nil, err
	}
	return decodeSource(data, limits.MaxPixels)
}

// decodeSource checks the header dimensions before decoding, so that neither
// the decoded image nor its stretched copy can exceed maxPixels.
func decodeSource(data []byte, maxPixels int) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errEmptyImage
	}
	if maxPixels > 0 {
		w, h := stretchedSize(cfg.Width, cfg.Height)
		if cfg.Width*cfg.Height > maxPixels || w*h > maxPixels {
			return nil, fmt.Errorf("%w: %dx%d would be drawn at %dx%d", errTooManyPixels, cfg.Width, cfg.Height, w, h)
		}
	}
	return imaging.Decode(bytes.NewReader(data))
}
