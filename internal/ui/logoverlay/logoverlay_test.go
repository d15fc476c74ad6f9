package logoverlay

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/campusctl/campus/internal/log"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func shown() Model {
	m := New()
	m.SetSize(100, 30)
	m.Toggle()
	return m
}

func TestNew(t *testing.T) {
	m := New()

	require.False(t, m.Visible())
	require.Empty(t, m.View())
	require.Equal(t, log.LevelDebug, m.minLevel)
}

func TestToggle(t *testing.T) {
	m := New()
	m.Toggle()
	require.True(t, m.Visible())
	m.Toggle()
	require.False(t, m.Visible())
}

func TestUpdate_IgnoresWhenNotVisible(t *testing.T) {
	m := New()
	m, _ = m.Update(key("w"))
	require.Equal(t, log.LevelDebug, m.minLevel)
}

func TestUpdate_FilterKeys(t *testing.T) {
	tests := []struct {
		key      string
		expected log.Level
	}{
		{"d", log.LevelDebug},
		{"i", log.LevelInfo},
		{"w", log.LevelWarn},
		{"e", log.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := shown()
			m, _ = m.Update(key(tt.key))
			require.Equal(t, tt.expected, m.minLevel)
		})
	}
}

func TestView_FiltersByLevel(t *testing.T) {
	m := shown()
	m.Append("2026-01-02T10:00:00 [DEBUG] [ui] menu opened\n")
	m.Append("2026-01-02T10:00:01 [WARN] [config] unknown flag\n")

	view := m.View()
	require.Contains(t, view, "menu opened")
	require.Contains(t, view, "unknown flag")

	m, _ = m.Update(key("w"))
	view = m.View()
	require.NotContains(t, view, "menu opened")
	require.Contains(t, view, "unknown flag")
}

func TestUpdate_ClearEmptiesBuffer(t *testing.T) {
	m := shown()
	m.Append("2026-01-02T10:00:00 [INFO] [registry] Student created\n")

	m, _ = m.Update(key("c"))
	require.Empty(t, m.Entries())
	require.Contains(t, m.View(), "No logs to display")
}

func TestUpdate_EscCloses(t *testing.T) {
	m := shown()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Visible())
	require.NotNil(t, cmd)
	require.Equal(t, CloseMsg{}, cmd())
}

func TestAppend_BoundsBuffer(t *testing.T) {
	m := New()
	for i := range bufferSize + 10 {
		m.Append(fmt.Sprintf("[INFO] entry %d", i))
	}
	require.Len(t, m.Entries(), bufferSize)
	require.Equal(t, "[INFO] entry 10", m.Entries()[0])
}

func TestLevelOf(t *testing.T) {
	require.Equal(t, log.LevelDebug, levelOf("x [DEBUG] y"))
	require.Equal(t, log.LevelInfo, levelOf("x [INFO] y"))
	require.Equal(t, log.LevelWarn, levelOf("x [WARN] y"))
	require.Equal(t, log.LevelError, levelOf("x [ERROR] y"))
	require.Equal(t, log.LevelError, levelOf("untagged"))
}
