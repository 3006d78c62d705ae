// Package components provides ANSI-aware text primitives shared by the
// pattern-timer views: width measurement, truncation, and padding that
// stay correct in the presence of escape sequences and wide characters.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible character width of s in terminal cells.
// ANSI escape sequences are ignored; wide characters count as width 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate truncates s to at most maxWidth visible characters, preserving
// any ANSI escape sequences that appear before the cut point.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail truncates s to at most maxWidth visible characters,
// appending tail (e.g. "…") if truncation occurs. The tail counts toward
// maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces so its visible width equals
// width. If s is already wider, it is returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadLeft pads s with leading spaces so its visible width equals width.
func PadLeft(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}

// PadCenter centers s within width. An odd remainder leaves the extra
// space on the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// CenterBlock centers each line of content horizontally within width and
// the whole block vertically within height, padding with blank lines.
func CenterBlock(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height && height > 0 {
		lines = lines[:height]
	}

	out := make([]string, 0, height)
	topPad := 0
	if height > len(lines) {
		topPad = (height - len(lines)) / 2
	}
	for i := 0; i < topPad; i++ {
		out = append(out, "")
	}
	for _, line := range lines {
		out = append(out, PadCenter(line, width))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
