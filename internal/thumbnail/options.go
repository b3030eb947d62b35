// Package thumbnail renders the 1200x600 social preview card for a recipe:
// an optional background photo, the wrapped title on highlight boxes, a
// difficulty/meal block and the cookbook logo.
package thumbnail

import (
	"image/color"
	"time"

	"golang.org/x/image/font"
)

// Canvas dimensions. Every thumbnail has exactly this size.
const (
	Width  = 1200
	Height = 600
)

// boxAlpha is int(255 * 0.78), the opacity of the highlight boxes.
const boxAlpha = 198

const (
	ellipsis        = "..."
	difficultyLabel = "DIFFICULTY"
	mealLabel       = "MEAL"
)

var (
	backgroundColor = color.White
	boxColor        = color.RGBA{R: 74, G: 54, B: 47, A: 255}
	textColor       = color.White
)

// Recipe is the metadata a thumbnail is built from.
type Recipe struct {
	Title        string `json:"title"`
	PreviewImage string `json:"previewimage,omitempty"`
	Difficulty   string `json:"difficulties"`
	Meal         string `json:"meals"`

	// SourceDir is the page bundle that relative preview images resolve against.
	SourceDir string `json:"-"`
}

// Faces holds the font faces for a single render. Faces are not safe for
// concurrent use, so every render gets its own set.
type Faces struct {
	Heading font.Face
	Label   font.Face
	Value   font.Face
}

// HeadingOptions positions the title boxes.
type HeadingOptions struct {
	TopMargin         int     `toml:"top_margin"`
	LeftMargin        int     `toml:"left_margin"`
	HorizontalPadding int     `toml:"horizontal_padding"`
	LineHeight        float64 `toml:"line_height"`
	MaxWidth          int     `toml:"max_width"`
	MaxLines          int     `toml:"max_lines"`
}

// MetadataOptions positions the difficulty/meal block. TopMargin is
// overwritten by the Composer with the heading's bottom edge plus the gap.
type MetadataOptions struct {
	TopMargin         int `toml:"-"`
	LeftMargin        int `toml:"left_margin"`
	HorizontalPadding int `toml:"horizontal_padding"`
	VerticalPadding   int `toml:"vertical_padding"`
	SpaceBetween      int `toml:"space_between"`
}

// LogoOptions sets the logo footprint and its distance from the
// bottom-right corner.
type LogoOptions struct {
	Path         string `toml:"path"`
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	MarginRight  int    `toml:"margin_right"`
	MarginBottom int    `toml:"margin_bottom"`
}

// SourceLimits bounds what loading a background may cost. A zero MaxBytes
// or MaxPixels disables that check.
type SourceLimits struct {
	Timeout time.Duration
	// MaxBytes caps the encoded size of the file or response body.
	MaxBytes int64
	// MaxPixels caps both the decoded image and the image after it has
	// been stretched to cover the canvas.
	MaxPixels int
}

// Options is the full layout configuration of a Composer.
type Options struct {
	Heading         HeadingOptions  `toml:"heading"`
	Metadata        MetadataOptions `toml:"metadata"`
	MetadataGap     int             `toml:"metadata_gap"`
	Logo            LogoOptions     `toml:"logo"`
	FetchTimeout    time.Duration   `toml:"fetch_timeout"`
	MaxSourceBytes  int64           `toml:"max_source_bytes"`
	MaxSourcePixels int             `toml:"max_source_pixels"`
}

// SourceLimits returns the background limits configured in o.
func (o Options) SourceLimits() SourceLimits {
	return SourceLimits{Timeout: o.FetchTimeout, MaxBytes: o.MaxSourceBytes, MaxPixels: o.MaxSourcePixels}
}

// DefaultOptions returns the layout the cookbook site has always used.
func DefaultOptions() Options {
	return Options{
		Heading: HeadingOptions{
			TopMargin:         64,
			LeftMargin:        40,
			HorizontalPadding: 30,
			LineHeight:        1,
			MaxWidth:          1000,
			MaxLines:          3,
		},
		Metadata: MetadataOptions{
			LeftMargin:        40,
			HorizontalPadding: 30,
			VerticalPadding:   10,
			SpaceBetween:      50,
		},
		MetadataGap: 20,
		Logo: LogoOptions{
			Path:         "static/img/cookbook-horizontal-whitebg.png",
			Width:        322,
			Height:       51,
			MarginRight:  50,
			MarginBottom: 50,
		},
		FetchTimeout:    10 * time.Second,
		MaxSourceBytes:  20 << 20,
		MaxSourcePixels: 25_000_000,
	}
}
