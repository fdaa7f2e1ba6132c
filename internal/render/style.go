// Package render turns state snapshots into RGBA frames. Rendering is pure:
// the same snapshot and annotation always produce identical pixels, which is
// what makes parallel frame generation safe.
package render

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// StyleCache holds the face and palette shared by all frames of one run.
// Callers create it once and hand it to every renderer; nothing in this
// package keeps global drawing state.
type StyleCache struct {
	Face font.Face

	Background color.RGBA
	Panel      color.RGBA
	BoxFill    color.RGBA
	BoxStroke  color.RGBA
	Highlight  color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Accent     color.RGBA
}

// NewStyleCache returns the default dark theme over the built-in 7x13 face.
func NewStyleCache() *StyleCache {
	return &StyleCache{
		Face:       basicfont.Face7x13,
		Background: color.RGBA{30, 30, 46, 255},
		Panel:      color.RGBA{42, 42, 62, 255},
		BoxFill:    color.RGBA{69, 71, 90, 255},
		BoxStroke:  color.RGBA{147, 153, 178, 255},
		Highlight:  color.RGBA{250, 179, 135, 255},
		Text:       color.RGBA{235, 235, 245, 255},
		Muted:      color.RGBA{127, 132, 156, 255},
		Accent:     color.RGBA{137, 180, 250, 255},
	}
}

// glyphWidth is the advance of every basicfont.Face7x13 glyph.
const glyphWidth = 7

// textWidth returns the pixel width of s in the fixed-width face.
func textWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n * glyphWidth
}
