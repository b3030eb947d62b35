package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ErrMissingFace is returned when a render is attempted without all three
// font faces.
var ErrMissingFace = errors.New("thumbnail: heading, label and value faces are required")

// Composer renders thumbnails with a fixed set of Options. It keeps no state
// between renders and may be shared by concurrent callers.
type Composer struct {
	opts Options
}

// NewComposer returns a Composer for opts.
func NewComposer(opts Options) *Composer {
	return &Composer{opts: opts}
}

// Compose draws the background, heading, metadata and logo for r, in that
// order, and returns the finished canvas.
func (c *Composer) Compose(ctx context.Context, r Recipe, faces Faces) (image.Image, error) {
	if faces.Heading == nil || faces.Label == nil || faces.Value == nil {
		return nil, ErrMissingFace
	}

	canvas := NewCanvas()
	DrawBackground(ctx, canvas, r.PreviewImage, r.SourceDir, c.opts.SourceLimits())

	bottom := DrawHeading(canvas, r.Title, faces.Heading, c.opts.Heading)

	meta := c.opts.Metadata
	meta.TopMargin = bottom + c.opts.MetadataGap
	DrawMetadata(canvas, r.Difficulty, r.Meal, faces.Label, faces.Value, meta)

	if err := DrawLogo(canvas, c.opts.Logo); err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to path as a PNG, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
