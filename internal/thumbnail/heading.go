package thumbnail

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// DrawHeading draws the wrapped title onto canvas, one highlight box per
// line, and returns the y coordinate of the bottom of the last box.
//
//	                         top margin
//	<left margin> ---------------------------------------
//	<left margin> | <hor.padding>  Text   <hor.padding> |
//	<left margin> ---------------------------------------
//
// Consecutive boxes start LineHeight box-heights apart.
func DrawHeading(canvas *gg.Context, title string, face font.Face, opts HeadingOptions) int {
	lines := Wrap(title, face, opts.MaxWidth, opts.MaxLines)
	ascent, height := textExtent(face)

	l := newLayers()
	l.text.SetFontFace(face)

	left := float64(opts.LeftMargin)
	top := float64(opts.TopMargin)
	bottom := opts.TopMargin
	for _, line := range lines {
		right := left + float64(2*opts.HorizontalPadding+textWidth(face, line))
		l.box(left, top, right, top+float64(height))
		l.text.DrawString(line, left+float64(opts.HorizontalPadding), top+ascent)

		bottom = int(top) + height
		top += float64(height) * opts.LineHeight
	}

	l.flatten(canvas)
	return bottom
}
