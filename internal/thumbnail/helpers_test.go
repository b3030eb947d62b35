package thumbnail

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/cookthumb/internal/logging"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func testFace(t *testing.T, ttf []byte, size float64) font.Face {
	t.Helper()
	f, err := truetype.Parse(ttf)
	if err != nil {
		t.Fatalf("parse font: %v", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

func testFaces(t *testing.T) Faces {
	t.Helper()
	return Faces{
		Heading: testFace(t, gobold.TTF, 86),
		Label:   testFace(t, goregular.TTF, 22),
		Value:   testFace(t, goregular.TTF, 38),
	}
}

// quietContext carries a logger that discards output.
func quietContext() context.Context {
	return logging.WithLogger(context.Background(), logging.New(io.Discard, logging.LevelInfo))
}

// writeImage saves a solid w x h image of c under dir and returns its path.
func writeImage(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imaging.Save(imaging.New(w, h, c), path); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
	return path
}

// testOptions returns the default layout with the logo pointing at a red
// fixture image.
func testOptions(t *testing.T) Options {
	t.Helper()
	opts := DefaultOptions()
	opts.Logo.Path = writeImage(t, t.TempDir(), "logo.png", 644, 102, color.NRGBA{R: 255, A: 255})
	return opts
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// boxOverWhite is the colour of a faded highlight box on a white canvas.
func boxOverWhite() color.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	dst.Set(0, 0, white)
	src := image.NewUniform(color.NRGBA{R: boxColor.R, G: boxColor.G, B: boxColor.B, A: boxAlpha})
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Over)
	return dst.RGBAAt(0, 0)
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return int(x)-int(y) <= 1 && int(y)-int(x) <= 1 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
