package thumbnail

import (
	"context"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/cookthumb/internal/logging"
)

// DrawBackground pastes the preview image ref at the canvas origin. Remote
// refs (http:// or https://) are downloaded; anything else is opened relative
// to sourceDir. The image replaces the canvas pixels outright, alpha
// ignored. A background that cannot be loaded, or that exceeds limits, is
// logged and skipped, leaving the canvas as it was.
func DrawBackground(ctx context.Context, canvas *gg.Context, ref, sourceDir string, limits SourceLimits) {
	if ref == "" {
		return
	}
	bg, err := loadBackground(ctx, ref, sourceDir, limits)
	if err != nil {
		logging.FromContext(ctx).Warn("background unavailable, using blank canvas", "ref", ref, "err", err)
		return
	}
	canvas.DrawImage(opaque(stretchToCanvas(bg)), 0, 0)
}

// IsRemote reports whether ref is an http or https URL.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func loadBackground(ctx context.Context, ref, sourceDir string, limits SourceLimits) (image.Image, error) {
	if IsRemote(ref) {
		return DownloadImage(ctx, ref, limits)
	}
	return openImage(filepath.Join(sourceDir, ref), limits)
}

// opaque returns the part of img that lands on the canvas with every alpha
// set to 255, keeping the straight colour of each pixel.
func opaque(img image.Image) *image.NRGBA {
	o := img.Bounds().Min
	out := imaging.Crop(img, image.Rect(o.X, o.Y, o.X+Width, o.Y+Height))
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// stretchedSize is the size stretchToCanvas gives a w x h image.
func stretchedSize(w, h int) (int, int) {
	if w < Width {
		h = (Width / w) * h
		w = Width
	}
	if h < Height {
		w = (Height / h) * w
		h = Height
	}
	return w, h
}

// stretchToCanvas upscales img so that it is at least as wide and as tall as
// the canvas. Each axis is corrected on its own by a whole-number factor, so
// the aspect ratio is not preserved; whatever overhangs the canvas is cropped
// by the paste.
func stretchToCanvas(img image.Image) image.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	sw, sh := stretchedSize(w, h)
	if sw == w && sh == h {
		return img
	}
	return imaging.Resize(img, sw, sh, imaging.Lanczos)
}
