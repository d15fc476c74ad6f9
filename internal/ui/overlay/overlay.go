// Package overlay draws a box on top of an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position selects where the box lands.
type Position int

const (
	Center Position = iota
	Bottom
)

// Place splices fg into bg at pos inside a width x height screen. Both
// strings may carry ANSI styling; cells of bg outside the box keep theirs.
func Place(fg, bg string, width, height int, pos Position) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	fgLines := strings.Split(fg, "\n")
	x := max((width-lipgloss.Width(fg))/2, 0)
	var y int
	switch pos {
	case Bottom:
		y = max(height-len(fgLines)-1, 0)
	default:
		y = max((height-len(fgLines))/2, 0)
	}

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of line starting at column x with fg.
func splice(line, fg string, x int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fg)
	var right string
	if ansi.StringWidth(line) > end {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + fg + right
}
