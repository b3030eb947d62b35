// Package fonts loads the TrueType fonts used for thumbnails and hands out
// per-render faces.
//
// A parsed *truetype.Font is read-only and may be shared between goroutines;
// the faces created from it keep glyph caches and must not be.
package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/cookthumb/internal/thumbnail"
)

// Font is a parsed TrueType font.
type Font struct {
	Name string
	ttf  *truetype.Font
}

// Load reads and parses the font file at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(path, data)
}

// Parse parses TrueType data. name is only used in error messages.
func Parse(name string, data []byte) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return &Font{Name: name, ttf: ttf}, nil
}

// Face returns a new face of f at size pixels.
func (f *Font) Face(size float64) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Sizes are the pixel sizes of the three thumbnail faces.
type Sizes struct {
	Heading float64 `toml:"heading"`
	Label   float64 `toml:"label"`
	Value   float64 `toml:"value"`
}

// DefaultSizes returns the sizes the cookbook site uses.
func DefaultSizes() Sizes {
	return Sizes{Heading: 86, Label: 22, Value: 38}
}

// Set pairs the serif heading font with the sans-serif metadata font.
type Set struct {
	Serif *Font
	Sans  *Font
}

// LoadSet loads the serif and sans-serif font files. There is no fallback:
// a font that cannot be loaded is an error.
func LoadSet(serifPath, sansPath string) (*Set, error) {
	serif, err := Load(serifPath)
	if err != nil {
		return nil, fmt.Errorf("serif font: %w", err)
	}
	sans, err := Load(sansPath)
	if err != nil {
		return nil, fmt.Errorf("sans-serif font: %w", err)
	}
	return &Set{Serif: serif, Sans: sans}, nil
}

// Embedded returns the Go fonts compiled into the binary, bold for the
// heading and regular for the metadata.
func Embedded() *Set {
	serif, err := Parse("gobold", gobold.TTF)
	if err != nil {
		panic(err)
	}
	sans, err := Parse("goregular", goregular.TTF)
	if err != nil {
		panic(err)
	}
	return &Set{Serif: serif, Sans: sans}
}

// Faces creates a fresh set of faces for one render.
func (s *Set) Faces(sizes Sizes) thumbnail.Faces {
	return thumbnail.Faces{
		Heading: s.Serif.Face(sizes.Heading),
		Label:   s.Sans.Face(sizes.Label),
		Value:   s.Sans.Face(sizes.Value),
	}
}
