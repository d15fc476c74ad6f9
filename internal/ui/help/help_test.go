package help

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/campusctl/campus/internal/keys"
)

var testMenu = []string{"Add Student", "List Students", "Exit"}

func TestDocument(t *testing.T) {
	doc := Document(keys.DefaultKeyMap(), testMenu)

	require.Contains(t, doc, "1. Add Student\n")
	require.Contains(t, doc, "3. Exit\n")
	require.Contains(t, doc, "| `esc` | back to menu |")
	require.Contains(t, doc, "| `ctrl+c` | quit |")
}

func TestView_RendersMarkdown(t *testing.T) {
	m := New(keys.DefaultKeyMap(), testMenu, "notty")

	view := ansi.Strip(m.View(80))
	require.Contains(t, view, "Add Student")
	require.Contains(t, view, "toggle activity")
	require.Contains(t, view, "esc to return to the menu")
}

func TestView_Cached(t *testing.T) {
	m := New(keys.DefaultKeyMap(), testMenu, "notty")

	first := m.View(60)
	second := m.View(60)
	require.Equal(t, first, second)

	stats := m.CacheStats()
	require.Equal(t, int64(1), stats.Misses)
	require.Equal(t, int64(1), stats.Hits)

	m.View(100)
	require.Equal(t, int64(2), m.CacheStats().Misses)
}
