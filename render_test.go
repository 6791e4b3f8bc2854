package asciiart

import (
	"errors"
	"testing"

	"github.com/ad4mjulie/ascii-art/imageutil"
)

func TestRenderWidthProperty(t *testing.T) {
	img := imageutil.CreateGradientImage(80, 40)

	for w := 5; w <= 60; w += 5 {
		art, err := Render(img, Options{Width: w, Gradient: DefaultGradient()})
		if err != nil {
			t.Fatalf("Render width %d: %v", w, err)
		}
		if art.Cols() != w {
			t.Errorf("Width %d: Expected %d columns, got %d", w, w, art.Cols())
		}
		for y, row := range art.Cells {
			if len(row) != w {
				t.Fatalf("Width %d: row %d has %d cells", w, y, len(row))
			}
		}
		expectedRows := imageutil.AspectRows(80, 40, w, CellAspect)
		if art.Rows() != expectedRows {
			t.Errorf("Width %d: Expected %d rows, got %d", w, expectedRows, art.Rows())
		}
	}
}

func TestRenderInvalidWidth(t *testing.T) {
	img := imageutil.CreateSolidImage(10, 10, imageutil.RGB{R: 128, G: 128, B: 128})

	for _, w := range []int{0, -1, -100} {
		_, err := Render(img, Options{Width: w, Gradient: DefaultGradient()})
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("Width %d: Expected ErrInvalidDimension, got %v", w, err)
		}
	}
}

func TestRenderZeroRows(t *testing.T) {
	// A source this flat produces no output rows even at a valid width
	img := imageutil.CreateSolidImage(100, 1, imageutil.RGB{R: 128, G: 128, B: 128})

	_, err := Render(img, Options{Width: 2, Gradient: DefaultGradient()})
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Expected ErrInvalidDimension, got %v", err)
	}
}

func TestRenderEmptyGradient(t *testing.T) {
	img := imageutil.CreateSolidImage(10, 10, imageutil.RGB{R: 128, G: 128, B: 128})

	_, err := Render(img, Options{Width: 10})
	if !errors.Is(err, ErrEmptyGradient) {
		t.Errorf("Expected ErrEmptyGradient, got %v", err)
	}
}

func TestRenderMidGrayUniform(t *testing.T) {
	// Mid-gray sits at every preprocessing pivot: sharpening, contrast and
	// sharpness are all no-ops on a solid 128 image, so the whole grid
	// quantizes to a single gradient character.
	img := imageutil.CreateSolidImage(10, 10, imageutil.RGB{R: 128, G: 128, B: 128})

	art, err := Render(img, Options{Width: 10, Gradient: DefaultGradient()})
	if err != nil {
		t.Fatal(err)
	}

	if art.Rows() != 5 {
		t.Errorf("Expected 5 rows for 10x10 at width 10, got %d", art.Rows())
	}
	if art.Cols() != 10 {
		t.Errorf("Expected 10 columns, got %d", art.Cols())
	}

	first := art.Cells[0][0].Char
	for y, row := range art.Cells {
		for x, cell := range row {
			if cell.Char != first {
				t.Fatalf("Expected uniform output, cell (%d,%d) is %q not %q",
					x, y, cell.Char, first)
			}
		}
	}
}

func TestRenderSolidRedColorAnnotation(t *testing.T) {
	img := imageutil.CreateSolidImage(2, 2, imageutil.RGB{R: 255, G: 0, B: 0})

	art, err := Render(img, Options{Width: 2, Gradient: DefaultGradient(), Color: true})
	if err != nil {
		t.Fatal(err)
	}

	// Contrast pushes 255 and 0 further apart and the clamp returns them
	// unchanged, so pure red survives the preprocessing exactly.
	want := imageutil.RGB{R: 255, G: 0, B: 0}
	for y, row := range art.Cells {
		for x, cell := range row {
			if cell.Color != want {
				t.Errorf("Cell (%d,%d): Expected color %v, got %v", x, y, want, cell.Color)
			}
		}
	}
}

func TestRenderColorDisabled(t *testing.T) {
	img := imageutil.CreateSolidImage(2, 2, imageutil.RGB{R: 255, G: 0, B: 0})

	art, err := Render(img, Options{Width: 2, Gradient: DefaultGradient()})
	if err != nil {
		t.Fatal(err)
	}

	if art.Color {
		t.Error("Art.Color should be false when color is disabled")
	}
	for y, row := range art.Cells {
		for x, cell := range row {
			if cell.Color != (imageutil.RGB{}) {
				t.Errorf("Cell (%d,%d) should carry no annotation, got %v",
					x, y, cell.Color)
			}
		}
	}

	// Only the character stream exists; ANSI output degrades to it
	if got := art.ANSI(); got != art.Text() {
		t.Errorf("Expected plain output without color, got %q", got)
	}
}

func TestRenderDimensionsInvariant(t *testing.T) {
	img := imageutil.CreateGradientImage(64, 64)

	art, err := Render(img, Options{Width: 32, Gradient: DefaultGradient()})
	if err != nil {
		t.Fatal(err)
	}

	// round(32 * 1 * 0.45) = 14
	if art.Rows() != 14 || art.Cols() != 32 {
		t.Errorf("Expected 32x14 grid, got %dx%d", art.Cols(), art.Rows())
	}
}
