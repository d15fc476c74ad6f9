package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderWithTitleBorder renders content inside a rounded border with the
// title embedded in the top edge: ╭─ Title ─────╮
// Content lines beyond height-2 are dropped; shorter content is padded.
func RenderWithTitleBorder(content, title string, width, height int, focused bool) string {
	var borderColor lipgloss.TerminalColor = SubtleColor
	if focused {
		borderColor = HighlightColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	innerWidth := max(width-2, 1)
	contentHeight := max(height-2, 1)

	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(buildTopBorder(title, innerWidth, borderStyle))
	b.WriteString("\n")
	for i := range contentHeight {
		var line string
		if i < len(lines) {
			line = TruncateString(lines[i], innerWidth)
		}
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteString(PadRight(line, innerWidth))
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteString("\n")
	}
	b.WriteString(borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight))
	return b.String()
}

func buildTopBorder(title string, innerWidth int, borderStyle lipgloss.Style) string {
	if title == "" {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	// "─ " + title + " " takes len(title)+3 cells.
	title = TruncateString(title, max(innerWidth-3, 1))
	rest := max(innerWidth-lipgloss.Width(title)-3, 0)

	return borderStyle.Render(borderTopLeft+borderHorizontal+" ") +
		TitleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, rest)+borderTopRight)
}
