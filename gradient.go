// Package asciiart converts raster images into brightness-mapped character
// art for terminal display and file output. The pipeline is a single
// stateless pass: resize with cell-aspect correction, sharpen and adjust
// tone, quantize luminosity into a character gradient, and emit the grid
// through one or more sinks.
package asciiart

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// DefaultCharset is the built-in 70-character gradient, ordered from the
// densest glyph (darkest pixels) to space (brightest pixels).
const DefaultCharset = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYX" +
	`zcvunxrjft/\|()1{}[]?-_+~<>i!lI;:,"^` + "`'. "

// Gradient is an ordered sequence of characters, darkest first. Each
// luminosity value selects one character; a longer gradient gives finer
// brightness resolution. Duplicate characters are permitted.
type Gradient []rune

// NewGradient builds a Gradient from a string. It fails if the string is
// empty or contains a character that does not occupy exactly one terminal
// cell, since wide runes would break the fixed column count of the output.
func NewGradient(chars string) (Gradient, error) {
	runes := []rune(chars)
	if len(runes) == 0 {
		return nil, ErrEmptyGradient
	}
	for _, r := range runes {
		if runewidth.RuneWidth(r) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrWideRune, r)
		}
	}
	return Gradient(runes), nil
}

// DefaultGradient returns the built-in 70-character gradient.
func DefaultGradient() Gradient {
	g, err := NewGradient(DefaultCharset)
	if err != nil {
		panic("asciiart: default charset is invalid: " + err.Error())
	}
	return g
}

// Index maps a luminosity value in [0, 255] to a gradient index:
// floor(lum / 256 * len), clamped to the last character. The mapping is
// monotonic, 0 selects the first character and 255 the last.
func (g Gradient) Index(lum uint8) int {
	idx := int(lum) * len(g) / 256
	if idx >= len(g) {
		idx = len(g) - 1
	}
	return idx
}

// Char returns the gradient character for a luminosity value.
func (g Gradient) Char(lum uint8) rune {
	return g[g.Index(lum)]
}
