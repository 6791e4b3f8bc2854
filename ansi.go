package asciiart

import (
	"fmt"
	"strings"
)

// ESC is the ANSI escape character.
const ESC = "\x1b"

// Text renders the art as plain rows of characters, one line per row,
// each terminated by a newline. No escape codes are emitted.
func (a *Art) Text() string {
	var sb strings.Builder
	for _, row := range a.Cells {
		for _, cell := range row {
			sb.WriteRune(cell.Char)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ANSI renders the art with each character wrapped in a 24-bit truecolor
// foreground escape sampled from its source pixel. The escape is only
// re-emitted when the color changes, and colors are reset at the end of
// every line so a partial paste never bleeds into the prompt. Art
// rendered without color annotations degrades to plain text.
func (a *Art) ANSI() string {
	if !a.Color {
		return a.Text()
	}
	var sb strings.Builder
	for _, row := range a.Cells {
		haveColor := false
		var lr, lg, lb uint8
		for _, cell := range row {
			c := cell.Color
			if !haveColor || lr != c.R || lg != c.G || lb != c.B {
				fmt.Fprintf(&sb, "%s[38;2;%d;%d;%dm", ESC, c.R, c.G, c.B)
				haveColor, lr, lg, lb = true, c.R, c.G, c.B
			}
			sb.WriteRune(cell.Char)
		}
		sb.WriteString(ESC + "[0m\n")
	}
	return sb.String()
}

// String renders plain text; it makes Art printable directly.
func (a *Art) String() string {
	return a.Text()
}
