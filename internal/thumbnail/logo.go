package thumbnail

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// DrawLogo loads the logo at opts.Path, resizes it to the configured
// footprint and pastes it, alpha included, near the bottom-right corner.
// Unlike the background, a missing logo is an error.
func DrawLogo(canvas *gg.Context, opts LogoOptions) error {
	logo, err := imaging.Open(opts.Path)
	if err != nil {
		return fmt.Errorf("open logo: %w", err)
	}
	logo = imaging.Resize(logo, opts.Width, opts.Height, imaging.Lanczos)

	x := Width - opts.Width - opts.MarginRight
	y := Height - opts.Height - opts.MarginBottom
	canvas.DrawImage(logo, x, y)
	return nil
}
