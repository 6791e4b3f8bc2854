package asciiart

import (
	"fmt"

	"github.com/ad4mjulie/ascii-art/imageutil"
)

const (
	// CellAspect compensates for monospace cells being roughly twice as
	// tall as they are wide. Output rows = round(width * h/w * CellAspect).
	CellAspect = 0.45

	// ContrastGain and SharpnessGain are applied after the sharpening
	// kernel, in that order. Contrast stretches the sharpened edges;
	// reversing the order would sharpen already-stretched tones instead.
	ContrastGain  = 1.5
	SharpnessGain = 2.0
)

// Cell is one character of the rendered output together with the color of
// the pixel it was derived from.
type Cell struct {
	Char  rune
	Color imageutil.RGB
}

// Art is the rendered output grid. Its dimensions are fixed for the run
// and equal the resized image dimensions. Color reports whether the cells
// carry RGB annotations; without them only the character stream exists.
type Art struct {
	Cells [][]Cell
	Color bool
}

// Rows returns the number of output rows.
func (a *Art) Rows() int {
	return len(a.Cells)
}

// Cols returns the number of output columns.
func (a *Art) Cols() int {
	if len(a.Cells) == 0 {
		return 0
	}
	return len(a.Cells[0])
}

// Options configures a single Render pass.
type Options struct {
	// Width is the output column count. Must be positive.
	Width int

	// Gradient maps luminosity to characters, darkest first.
	Gradient Gradient

	// Color retains per-cell RGB for ANSI and raster output. When false
	// the cells carry no annotation and only the character stream is
	// produced. The character selection is unaffected either way.
	Color bool
}

// Render converts an image into character art. The pipeline resizes to
// opts.Width columns with aspect-corrected rows, sharpens, applies the
// contrast and sharpness gains, derives per-pixel luminosity, and maps
// each value through the gradient. With opts.Color set, cell colors are
// sampled from the preprocessed image so colored output matches the
// character intensities.
func Render(img *imageutil.RGBAImage, opts Options) (*Art, error) {
	if opts.Width <= 0 {
		return nil, fmt.Errorf("%w: width %d, must be > 0",
			ErrInvalidDimension, opts.Width)
	}
	if len(opts.Gradient) == 0 {
		return nil, ErrEmptyGradient
	}

	rows := imageutil.AspectRows(img.Width(), img.Height(), opts.Width, CellAspect)
	if rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d source at width %d yields no rows",
			ErrInvalidDimension, img.Width(), img.Height(), opts.Width)
	}

	resized := imageutil.Resize(img, opts.Width, rows)
	prepared := imageutil.AdjustSharpness(
		imageutil.AdjustContrast(imageutil.Sharpen(resized), ContrastGain),
		SharpnessGain)
	gray := imageutil.ToGrayscale(prepared)

	cells := make([][]Cell, rows)
	for y := 0; y < rows; y++ {
		row := make([]Cell, opts.Width)
		for x := 0; x < opts.Width; x++ {
			row[x] = Cell{Char: opts.Gradient.Char(gray.GetGray(x, y))}
			if opts.Color {
				row[x].Color = prepared.GetRGB(x, y)
			}
		}
		cells[y] = row
	}

	return &Art{Cells: cells, Color: opts.Color}, nil
}
