package asciiart

import (
	"fmt"
	"image"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ttfPointSize is the point size used when rasterizing a user-supplied
// TrueType font. 12pt at 72 DPI keeps cells close to terminal proportions.
const ttfPointSize = 12.0

// RasterRenderer draws a character grid into a raster image, one fixed
// size cell per character, for the PNG output variant.
type RasterRenderer struct {
	face   font.Face
	cellW  int
	cellH  int
	ascent int
}

// NewRasterRenderer returns a renderer using the built-in 7x13 bitmap
// face. It needs no font files and renders at exactly one pixel cell
// per glyph pixel.
func NewRasterRenderer() *RasterRenderer {
	return newRendererForFace(basicfont.Face7x13)
}

// NewRasterRendererTTF returns a renderer using a TrueType font loaded
// from the given path.
func NewRasterRendererTTF(path string) (*RasterRenderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    ttfPointSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return newRendererForFace(face), nil
}

func newRendererForFace(face font.Face) *RasterRenderer {
	metrics := face.Metrics()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		advance = metrics.Height / 2
	}
	return &RasterRenderer{
		face:   face,
		cellW:  advance.Ceil(),
		cellH:  metrics.Height.Ceil(),
		ascent: metrics.Ascent.Ceil(),
	}
}

// CellSize returns the pixel dimensions of one character cell.
func (r *RasterRenderer) CellSize() (w, h int) {
	return r.cellW, r.cellH
}

// Render draws the art onto a black canvas, one glyph per cell. When
// colored is true and the art carries color annotations each glyph uses
// its cell color, otherwise all glyphs are white.
func (r *RasterRenderer) Render(art *Art, colored bool) image.Image {
	dc := gg.NewContext(art.Cols()*r.cellW, art.Rows()*r.cellH)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetFontFace(r.face)

	useColor := colored && art.Color
	for y, row := range art.Cells {
		baseline := float64(y*r.cellH + r.ascent)
		for x, cell := range row {
			if cell.Char == ' ' {
				continue
			}
			if useColor {
				dc.SetColor(cell.Color.ToColor())
			} else {
				dc.SetRGB255(255, 255, 255)
			}
			dc.DrawString(string(cell.Char), float64(x*r.cellW), baseline)
		}
	}

	return dc.Image()
}
