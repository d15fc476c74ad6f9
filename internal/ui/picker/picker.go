// Package picker provides a numbered option chooser.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/campusctl/campus/internal/ui/styles"
)

// Item is a label shown to the user and the value it stands for.
type Item[T any] struct {
	Label string
	Value T
}

// ChosenMsg is sent when the user picks an item.
type ChosenMsg[T any] struct {
	ID    string
	Index int
	Item  Item[T]
}

// CancelMsg is sent when the picker is dismissed with esc.
type CancelMsg struct {
	ID string
}

// Model holds the picker state.
type Model[T any] struct {
	id       string
	title    string
	items    []Item[T]
	selected int
	width    int
}

// New creates a picker. id is echoed in ChosenMsg and CancelMsg so the
// caller can tell pickers apart.
func New[T any](id, title string, items []Item[T]) Model[T] {
	return Model[T]{id: id, title: title, items: items}
}

// ID returns the picker id.
func (m Model[T]) ID() string {
	return m.id
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// SetWidth sets the box width. Zero uses the widest label.
func (m Model[T]) SetWidth(width int) Model[T] {
	m.width = width
	return m
}

// SetSelected moves the cursor. Out of range indexes are ignored.
func (m Model[T]) SetSelected(index int) Model[T] {
	if index >= 0 && index < len(m.items) {
		m.selected = index
	}
	return m
}

// Selected returns the item under the cursor, or false when there are none.
func (m Model[T]) Selected() (Item[T], bool) {
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected], true
	}
	return Item[T]{}, false
}

// Update handles messages.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "ctrl+n":
			if m.selected < len(m.items)-1 {
				m.selected++
			}
		case "k", "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
		case "enter":
			return m, m.choose(m.selected)
		case "esc":
			id := m.id
			return m, func() tea.Msg { return CancelMsg{ID: id} }
		default:
			// Digits pick by the number shown next to each label.
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				idx := int(s[0] - '1')
				if idx < len(m.items) {
					m.selected = idx
					return m, m.choose(idx)
				}
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i := range m.items {
			if z := zone.Get(m.zoneID(i)); z != nil && z.InBounds(msg) {
				m.selected = i
				return m, m.choose(i)
			}
		}
	}
	return m, nil
}

func (m Model[T]) choose(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.items) {
		return nil
	}
	chosen := ChosenMsg[T]{ID: m.id, Index: idx, Item: m.items[idx]}
	return func() tea.Msg { return chosen }
}

func (m Model[T]) zoneID(i int) string {
	return fmt.Sprintf("picker-%s-%d", m.id, i)
}

// View renders the picker box. Each row is a mouse zone; the caller's
// top-level View must run zone.Scan.
func (m Model[T]) View() string {
	width := m.width
	if width == 0 {
		width = lipgloss.Width(m.title) + 2
		for i, it := range m.items {
			width = max(width, lipgloss.Width(rowLabel(i, it.Label))+2)
		}
	}

	var rows strings.Builder
	for i, it := range m.items {
		label := styles.TruncateString(rowLabel(i, it.Label), width-1)
		var line string
		if i == m.selected {
			line = styles.SelectionIndicatorStyle.Render(">") + styles.SelectedItemStyle.Render(label)
		} else {
			line = " " + label
		}
		rows.WriteString(zone.Mark(m.zoneID(i), line))
		if i < len(m.items)-1 {
			rows.WriteString("\n")
		}
	}

	divider := styles.HintStyle.Render(strings.Repeat("─", width))
	content := styles.TitleStyle.Render(m.title) + "\n" + divider + "\n" + rows.String()

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.SubtleColor).
		Width(width).
		Render(content)
}

func rowLabel(i int, label string) string {
	return fmt.Sprintf("%d. %s", i+1, label)
}
