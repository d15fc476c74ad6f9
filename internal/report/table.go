// Package report renders registry projections as fixed-width text tables
// for the TUI and the command line.
package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/campusctl/campus/internal/ui/styles"
)

// Column is a left-aligned column of fixed width.
type Column struct {
	Header string
	Width  int
}

// Table is a titled grid of cells. Empty is shown instead of the grid when
// there are no rows.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
	Empty   string
}

// Width returns the sum of the column widths.
func (t Table) Width() int {
	w := 0
	for _, c := range t.Columns {
		w += c.Width
	}
	return w
}

// Render draws the table with the package styles.
func (t Table) Render() string {
	return t.render(styles.TitleStyle, styles.TableHeaderStyle, styles.TableRuleStyle)
}

// RenderWith draws the table with styles bound to r, so the colour profile
// of r's output applies.
func (t Table) RenderWith(r *lipgloss.Renderer) string {
	return t.render(
		r.NewStyle().Bold(true).Foreground(styles.HighlightColor),
		r.NewStyle().Bold(true).Foreground(styles.HighlightColor),
		r.NewStyle().Foreground(styles.SubtleColor),
	)
}

func (t Table) render(title, header, rule lipgloss.Style) string {
	var b strings.Builder
	if t.Title != "" {
		b.WriteString(title.Render(t.Title))
		b.WriteString("\n")
	}

	if len(t.Rows) == 0 {
		if t.Empty != "" {
			b.WriteString(t.Empty)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	b.WriteString(header.Render(t.line(headers)))
	b.WriteString("\n")
	b.WriteString(rule.Render(strings.Repeat("─", t.Width())))

	for _, row := range t.Rows {
		b.WriteString("\n")
		b.WriteString(t.line(row))
	}
	return b.String()
}

// line pads every cell to its column width. Cells that would touch the next
// column are cut with an ellipsis; the last column is never cut.
func (t Table) line(cells []string) string {
	var b strings.Builder
	for i, c := range t.Columns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(t.Columns)-1 {
			b.WriteString(cell)
			break
		}
		if lipgloss.Width(cell) >= c.Width {
			cell = styles.TruncateString(cell, c.Width-1)
		}
		b.WriteString(styles.PadRight(cell, c.Width))
	}
	return strings.TrimRight(b.String(), " ")
}
