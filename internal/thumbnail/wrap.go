package thumbnail

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Wrap greedily breaks text into at most maxLines lines no wider than
// maxWidth pixels when drawn with face. Words are never split. When the text
// does not fit, "..." is appended to the last line and the rest is dropped.
// A word wider than maxWidth is placed alone on its own line.
func Wrap(text string, face font.Face, maxWidth, maxLines int) []string {
	if maxLines < 1 {
		maxLines = 1
	}
	limit := fixed.I(maxWidth)

	lines := []string{""}
	for _, word := range strings.Fields(text) {
		last := len(lines) - 1
		candidate := strings.TrimSpace(lines[last] + " " + word)
		if font.MeasureString(face, candidate) <= limit || lines[last] == "" {
			lines[last] = candidate
			continue
		}
		if len(lines) == maxLines {
			lines[last] += ellipsis
			break
		}
		lines = append(lines, word)
	}
	return lines
}

// textWidth is the advance of s in whole pixels, rounded up.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// textExtent returns the ascent and the box height used for a line of face:
// from the top of the ascent down to the lowest descender of "lgy1".
func textExtent(face font.Face) (ascent float64, height int) {
	bounds, _ := font.BoundString(face, "lgy1")
	a := face.Metrics().Ascent
	descent := bounds.Max.Y
	if descent < 0 {
		descent = 0
	}
	return float64(a) / 64, (a + descent).Ceil()
}
