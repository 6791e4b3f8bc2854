package asciiart

import (
	"strings"
	"testing"

	"github.com/ad4mjulie/ascii-art/imageutil"
)

func artFromRows(rows []string, c imageutil.RGB) *Art {
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		cells[y] = make([]Cell, len(runes))
		for x, r := range runes {
			cells[y][x] = Cell{Char: r, Color: c}
		}
	}
	return &Art{Cells: cells, Color: true}
}

func TestText(t *testing.T) {
	art := artFromRows([]string{"@#", ".."}, imageutil.RGB{})

	expected := "@#\n..\n"
	if got := art.Text(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestTextHasNoEscapes(t *testing.T) {
	art := artFromRows([]string{"@@@"}, imageutil.RGB{R: 255})
	if strings.Contains(art.Text(), ESC) {
		t.Error("Text output should not contain escape codes")
	}
}

func TestANSITruecolorEscape(t *testing.T) {
	art := artFromRows([]string{"@"}, imageutil.RGB{R: 255, G: 0, B: 0})

	got := art.ANSI()
	if !strings.Contains(got, "\x1b[38;2;255;0;0m@") {
		t.Errorf("Expected truecolor red escape, got %q", got)
	}
	if !strings.HasSuffix(got, "\x1b[0m\n") {
		t.Errorf("Expected line to end with a reset, got %q", got)
	}
}

func TestANSIRepeatedColorEmittedOnce(t *testing.T) {
	art := artFromRows([]string{"@@@@"}, imageutil.RGB{R: 10, G: 20, B: 30})

	got := art.ANSI()
	if n := strings.Count(got, "[38;2;10;20;30m"); n != 1 {
		t.Errorf("Expected a single escape for a run of one color, got %d", n)
	}
}

func TestANSIPlainWithoutAnnotations(t *testing.T) {
	art := artFromRows([]string{"@#"}, imageutil.RGB{})
	art.Color = false

	got := art.ANSI()
	if strings.Contains(got, ESC) {
		t.Errorf("Art without color annotations should emit no escapes, got %q", got)
	}
	if got != art.Text() {
		t.Errorf("Expected plain text %q, got %q", art.Text(), got)
	}
}

func TestANSIResetPerLine(t *testing.T) {
	art := artFromRows([]string{"@", "@"}, imageutil.RGB{R: 1, G: 2, B: 3})

	if n := strings.Count(art.ANSI(), "\x1b[0m\n"); n != 2 {
		t.Errorf("Expected a reset at the end of each of 2 lines, got %d", n)
	}
}
