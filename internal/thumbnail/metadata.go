package thumbnail

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// DrawMetadata draws the DIFFICULTY and MEAL columns inside a single
// highlight box. Each column is as wide as the wider of its label and value.
// It returns the box it drew.
func DrawMetadata(canvas *gg.Context, difficulty, meal string, label, value font.Face, opts MetadataOptions) image.Rectangle {
	labelAscent, labelHeight := textExtent(label)
	valueAscent, valueHeight := textExtent(value)

	first := max(textWidth(label, difficultyLabel), textWidth(value, difficulty))
	second := max(textWidth(label, mealLabel), textWidth(value, meal))
	inner := first + opts.SpaceBetween + second

	rect := image.Rect(
		opts.LeftMargin,
		opts.TopMargin,
		opts.LeftMargin+inner+2*opts.HorizontalPadding,
		opts.TopMargin+labelHeight+valueHeight+2*opts.VerticalPadding,
	)

	l := newLayers()
	l.box(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Max.Y))

	x1 := float64(rect.Min.X + opts.HorizontalPadding)
	x2 := x1 + float64(first+opts.SpaceBetween)
	labelTop := float64(rect.Min.Y + opts.VerticalPadding)
	valueTop := labelTop + float64(labelHeight)

	l.text.SetFontFace(label)
	l.text.DrawString(difficultyLabel, x1, labelTop+labelAscent)
	l.text.DrawString(mealLabel, x2, labelTop+labelAscent)

	l.text.SetFontFace(value)
	l.text.DrawString(difficulty, x1, valueTop+valueAscent)
	l.text.DrawString(meal, x2, valueTop+valueAscent)

	l.flatten(canvas)
	return rect
}
