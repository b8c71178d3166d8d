package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Point is a cell position, column then row.
type Point struct {
	X, Y int
}

// Rect is a cell rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// Overlay draws fg over bg with its top-left corner at (x, y). Cells of bg
// that fg does not cover are kept, styles included. bg grows when fg
// reaches past its last line.
func Overlay(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}
	x, y = maxInt(0, x), maxInt(0, y)

	lines := strings.Split(bg, "\n")
	for i, fl := range strings.Split(fg, "\n") {
		row := y + i
		for len(lines) <= row {
			lines = append(lines, "")
		}
		line := lines[row]

		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(fl), "")
		lines[row] = left + ansi.ResetStyle + fl + ansi.ResetStyle + right
	}
	return strings.Join(lines, "\n")
}

// OverlayCenter draws fg centred over a bg of the given size.
func OverlayCenter(bg, fg string, width, height int) string {
	x := (width - lipgloss.Width(fg)) / 2
	y := (height - lipgloss.Height(fg)) / 2
	return Overlay(bg, fg, x, y)
}

// OverlayBottom draws fg centred horizontally against the bottom edge, the
// way a sheet slides up.
func OverlayBottom(bg, fg string, width, height int) string {
	x := (width - lipgloss.Width(fg)) / 2
	y := height - lipgloss.Height(fg)
	return Overlay(bg, fg, x, y)
}
