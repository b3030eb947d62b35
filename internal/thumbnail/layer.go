package thumbnail

import (
	"image"

	"github.com/fogleman/gg"
)

// NewCanvas returns an opaque white drawing context of the thumbnail size.
func NewCanvas() *gg.Context {
	dc := gg.NewContext(Width, Height)
	dc.SetColor(backgroundColor)
	dc.Clear()
	return dc
}

// layers is the pair of transparent buffers a stage draws into. Boxes and
// glyphs are kept apart so the boxes can be faded as a whole: fading each
// box as it is drawn would darken the areas where boxes overlap.
type layers struct {
	boxes *gg.Context
	text  *gg.Context
}

func newLayers() layers {
	l := layers{
		boxes: gg.NewContext(Width, Height),
		text:  gg.NewContext(Width, Height),
	}
	l.boxes.SetColor(boxColor)
	l.text.SetColor(textColor)
	return l
}

// box fills the rectangle spanning (x0, y0) to (x1, y1) on the box layer.
func (l layers) box(x0, y0, x1, y1 float64) {
	l.boxes.DrawRectangle(x0, y0, x1-x0, y1-y0)
	l.boxes.Fill()
}

// flatten fades the boxes and composites boxes, then text, onto canvas.
func (l layers) flatten(canvas *gg.Context) {
	fadeOpaque(l.boxes.Image().(*image.RGBA), boxAlpha)
	canvas.DrawImage(l.boxes.Image(), 0, 0)
	canvas.DrawImage(l.text.Image(), 0, 0)
}

// fadeOpaque sets the alpha of every fully opaque pixel of img to alpha and
// leaves all other pixels alone. It walks the pixel buffer once; colour
// channels are rescaled because image.RGBA is alpha-premultiplied.
func fadeOpaque(img *image.RGBA, alpha uint8) {
	pix := img.Pix
	a := uint32(alpha)
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i+3] != 0xff {
			continue
		}
		pix[i] = uint8(uint32(pix[i]) * a / 0xff)
		pix[i+1] = uint8(uint32(pix[i+1]) * a / 0xff)
		pix[i+2] = uint8(uint32(pix[i+2]) * a / 0xff)
		pix[i+3] = alpha
	}
}
