package asciiart

import (
	"errors"
	"testing"
)

func TestNewGradientEmpty(t *testing.T) {
	_, err := NewGradient("")
	if !errors.Is(err, ErrEmptyGradient) {
		t.Errorf("Expected ErrEmptyGradient, got %v", err)
	}
}

func TestNewGradientWideRune(t *testing.T) {
	_, err := NewGradient("@口 ")
	if !errors.Is(err, ErrWideRune) {
		t.Errorf("Expected ErrWideRune, got %v", err)
	}
}

func TestNewGradientDuplicatesAllowed(t *testing.T) {
	g, err := NewGradient("@@..  ")
	if err != nil {
		t.Fatalf("Duplicates should be permitted: %v", err)
	}
	if len(g) != 6 {
		t.Errorf("Expected 6 characters, got %d", len(g))
	}
}

func TestDefaultCharsetLength(t *testing.T) {
	g := DefaultGradient()
	if len(g) != 70 {
		t.Errorf("Expected 70 characters in default gradient, got %d", len(g))
	}
}

func TestGradientBoundaries(t *testing.T) {
	charsets := []string{"@ ", "@%#*+=-:. ", DefaultCharset}
	for _, cs := range charsets {
		g, err := NewGradient(cs)
		if err != nil {
			t.Fatalf("NewGradient(%q): %v", cs, err)
		}
		if got := g.Char(0); got != g[0] {
			t.Errorf("%q: luminosity 0 should map to first char %q, got %q", cs, g[0], got)
		}
		if got := g.Char(255); got != g[len(g)-1] {
			t.Errorf("%q: luminosity 255 should map to last char %q, got %q",
				cs, g[len(g)-1], got)
		}
	}
}

func TestGradientMonotonic(t *testing.T) {
	charsets := []string{"@ ", "@=. ", DefaultCharset}
	for _, cs := range charsets {
		g, err := NewGradient(cs)
		if err != nil {
			t.Fatalf("NewGradient(%q): %v", cs, err)
		}
		for lum := 0; lum < 255; lum++ {
			if g.Index(uint8(lum+1)) < g.Index(uint8(lum)) {
				t.Fatalf("%q: index decreased from luminosity %d to %d", cs, lum, lum+1)
			}
		}
	}
}

func TestGradientIndexFormula(t *testing.T) {
	g, err := NewGradient("@=. ") // 4 buckets of 64
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		lum      uint8
		expected int
	}{
		{0, 0},
		{63, 0},
		{64, 1},
		{127, 1},
		{128, 2},
		{191, 2},
		{192, 3},
		{255, 3},
	}
	for _, tt := range tests {
		if got := g.Index(tt.lum); got != tt.expected {
			t.Errorf("Index(%d): Expected %d, got %d", tt.lum, tt.expected, got)
		}
	}
}
