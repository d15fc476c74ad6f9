// Package prompt asks a fixed sequence of questions one at a time, the way
// a console program reads name, age and salary in turn.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campusctl/campus/internal/ui/styles"
)

// Kind selects how an answer is parsed.
type Kind int

const (
	KindText  Kind = iota // non-empty string
	KindInt               // strconv.Atoi
	KindFloat             // strconv.ParseFloat
)

// Field is one question.
type Field struct {
	Key   string
	Label string
	Kind  Kind
}

// Values holds parsed answers by field key.
type Values map[string]any

// String returns a KindText answer.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Int returns a KindInt answer.
func (v Values) Int(key string) int {
	n, _ := v[key].(int)
	return n
}

// Float returns a KindFloat answer.
func (v Values) Float(key string) float64 {
	f, _ := v[key].(float64)
	return f
}

// SubmitMsg is sent after the last field is answered.
type SubmitMsg struct {
	ID     string
	Values Values
}

// CancelMsg is sent when the prompt is dismissed with esc.
type CancelMsg struct {
	ID string
}

// Model holds the prompt state.
type Model struct {
	id     string
	title  string
	fields []Field
	index  int
	input  textinput.Model
	values Values
	err    string
	width  int
}

// New creates a prompt asking fields in order.
func New(id, title string, fields []Field) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	return Model{
		id:     id,
		title:  title,
		fields: fields,
		input:  ti,
		values: make(Values, len(fields)),
		width:  44,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Err returns the validation error for the current field, if any.
func (m Model) Err() string {
	return m.err
}

// Current returns the field being asked.
func (m Model) Current() Field {
	if m.index < len(m.fields) {
		return m.fields[m.index]
	}
	return Field{}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			id := m.id
			return m, func() tea.Msg { return CancelMsg{ID: id} }
		case "enter":
			return m.accept()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) accept() (Model, tea.Cmd) {
	if m.index >= len(m.fields) {
		return m, nil
	}
	field := m.fields[m.index]

	value, err := parse(field, m.input.Value())
	if err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.values[field.Key] = value
	m.err = ""
	m.index++
	m.input.Reset()

	if m.index < len(m.fields) {
		return m, nil
	}

	submitted := SubmitMsg{ID: m.id, Values: m.values}
	return m, func() tea.Msg { return submitted }
}

func parse(field Field, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch field.Kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a whole number", strings.ToLower(field.Label))
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", strings.ToLower(field.Label))
		}
		return f, nil
	default:
		if raw == "" {
			return nil, fmt.Errorf("%s is required", strings.ToLower(field.Label))
		}
		return raw, nil
	}
}

// View renders the prompt box.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for _, f := range m.fields[:m.index] {
		b.WriteString(styles.HintStyle.Render(fmt.Sprintf("%s: %v", f.Label, m.values[f.Key])))
		b.WriteString("\n")
	}

	if m.index < len(m.fields) {
		b.WriteString("Enter " + strings.ToLower(m.fields[m.index].Label) + ":\n")
		b.WriteString(m.input.View())
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.err))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle.Render("enter to confirm • esc to cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.SubtleColor).
		Padding(0, 1).
		Width(m.width).
		Render(b.String())
}
