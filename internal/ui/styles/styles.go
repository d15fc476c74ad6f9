// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic colours. ApplyTheme overrides the first four from config.
	HighlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"} // Selected menu entry, titles, focused borders
	SubtleColor    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#696969"} // Hints, borders, table rules
	ErrorColor     = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors
	SuccessColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success toasts
	WarnColor      = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	InfoColor      = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Informational toasts

	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}
	SelectionColor   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"} // ">" prefix in lists

	TitleStyle              lipgloss.Style
	HintStyle               lipgloss.Style
	ErrorStyle              lipgloss.Style
	SuccessStyle            lipgloss.Style
	SelectionIndicatorStyle lipgloss.Style
	SelectedItemStyle       lipgloss.Style
	TableHeaderStyle        lipgloss.Style
	TableRuleStyle          lipgloss.Style
)

func init() {
	rebuild()
}

// rebuild recreates the derived styles; lipgloss styles copy colours on creation.
func rebuild() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	HintStyle = lipgloss.NewStyle().Foreground(SubtleColor)
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionColor)
	SelectedItemStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	TableRuleStyle = lipgloss.NewStyle().Foreground(SubtleColor)
}

// ApplyTheme applies custom theme colors from configuration.
// Empty strings are ignored, keeping the current values.
func ApplyTheme(highlight, subtle, errorColor, success string) {
	if highlight != "" {
		HighlightColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
	}
	if subtle != "" {
		SubtleColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
	}
	if errorColor != "" {
		ErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
	}
	if success != "" {
		SuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
	}
	rebuild()
}
