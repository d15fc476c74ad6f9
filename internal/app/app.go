// Package app contains the root application model.
package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	appacademy "github.com/campusctl/campus/internal/application/academy"
	"github.com/campusctl/campus/internal/config"
	"github.com/campusctl/campus/internal/flags"
	"github.com/campusctl/campus/internal/keys"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/pubsub"
	"github.com/campusctl/campus/internal/ui/help"
	"github.com/campusctl/campus/internal/ui/logoverlay"
	"github.com/campusctl/campus/internal/ui/picker"
	"github.com/campusctl/campus/internal/ui/prompt"
	"github.com/campusctl/campus/internal/ui/styles"
	"github.com/campusctl/campus/internal/ui/toaster"
)

// screen is what currently fills the window.
type screen int

const (
	screenMenu screen = iota
	screenPrompt
	screenPicker
	screenReport
	screenHelp
)

// activityLimit is how many activity lines the panel keeps.
const activityLimit = 8

var goodbyeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

// ThemeMsg replaces the colour theme. It is applied inside Update so that
// styles never change during a render.
type ThemeMsg struct {
	Highlight string
	Subtle    string
	Error     string
	Success   string
}

// Model is the root application state.
type Model struct {
	svc  *appacademy.Service
	keys keys.KeyMap

	entries []menuEntry
	menu    picker.Model[action]
	screen  screen

	// Current flow
	flow   flow
	prompt prompt.Model
	choice picker.Model[int]
	report string

	help    help.Model
	toaster toaster.Model

	// Activity panel, fed by the service broker
	activity        []string
	activityEnabled bool
	showActivity    bool
	listener        *pubsub.ContinuousListener[appacademy.Activity]
	ctx             context.Context
	cancel          context.CancelFunc

	// Debug log overlay, only with WithLogListener
	logOverlay  logoverlay.Model
	logListener *log.LogListener

	width    int
	height   int
	quitting bool
}

// New creates the application model around svc. The activity panel is
// available when ui.show_activity or the activity-panel flag is set.
func New(svc *appacademy.Service, cfg config.Config, fl *flags.Registry) Model {
	km := keys.DefaultKeyMap()
	entries := menuEntries(fl)

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}

	ctx, cancel := context.WithCancel(context.Background())
	activityEnabled := cfg.UI.ShowActivity || fl.Enabled(flags.FlagActivityPanel)

	m := Model{
		svc:             svc,
		keys:            km,
		entries:         entries,
		menu:            newMenu(entries),
		help:            help.New(km, labels, cfg.UI.HelpStyle),
		toaster:         toaster.New(),
		logOverlay:      logoverlay.New(),
		activityEnabled: activityEnabled,
		showActivity:    activityEnabled,
		listener:        pubsub.NewContinuousListener[appacademy.Activity](ctx, svc),
		ctx:             ctx,
		cancel:          cancel,
		width:           80,
		height:          24,
	}
	m.logOverlay.SetSize(m.width, m.height)
	return m
}

// WithLogListener enables the debug log overlay (ctrl+x) fed by l.
// A nil listener leaves it disabled.
func (m Model) WithLogListener(l *log.LogListener) Model {
	m.logListener = l
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listener.Listen()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logOverlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		m.logOverlay.Append(msg.Payload)
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case logoverlay.CloseMsg:
		return m, nil

	case pubsub.Event[appacademy.Activity]:
		m.activity = append(m.activity, msg.Payload.Message)
		if len(m.activity) > activityLimit {
			m.activity = m.activity[len(m.activity)-activityLimit:]
		}
		return m, m.listener.Listen()

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case ThemeMsg:
		styles.ApplyTheme(msg.Highlight, msg.Subtle, msg.Error, msg.Success)
		log.Info(log.CatUI, "Theme reloaded")
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		if m.logListener != nil && key.Matches(msg, m.keys.Logs) {
			m.logOverlay.Toggle()
			return m, nil
		}
		// The log overlay takes every key while it is open
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}
		switch m.screen {
		case screenMenu:
			if key.Matches(msg, m.keys.Help) {
				m.screen = screenHelp
				return m, nil
			}
			if key.Matches(msg, m.keys.Activity) && m.activityEnabled {
				m.showActivity = !m.showActivity
				return m, nil
			}
		case screenReport, screenHelp:
			if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Select) {
				m = m.backToMenu()
			}
			return m, nil
		}

	case picker.ChosenMsg[action]:
		return m.start(msg.Item.Value)

	case picker.ChosenMsg[int]:
		return m.choose(msg)

	case prompt.SubmitMsg:
		m.flow.values = msg.Values
		return m.pickDepartment()

	case picker.CancelMsg:
		if msg.ID != pickMenu {
			m = m.backToMenu()
		}
		return m, nil

	case prompt.CancelMsg:
		return m.backToMenu(), nil
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenMenu:
		m.menu, cmd = m.menu.Update(msg)
	case screenPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case screenPicker:
		m.choice, cmd = m.choice.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return goodbyeStyle.Render("Goodbye!") + "\n"
	}

	var view string
	switch m.screen {
	case screenPrompt:
		view = m.prompt.View()
	case screenPicker:
		view = m.choice.View()
	case screenReport:
		view = m.report + "\n\n" + styles.HintStyle.Render("enter or esc to return to the menu")
	case screenHelp:
		view = m.help.View(m.width)
	default:
		view = m.menuView()
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return zone.Scan(view)
}

// Quitting reports whether the user left the app.
func (m Model) Quitting() bool {
	return m.quitting
}

// Activity returns the lines shown in the activity panel, oldest first.
func (m Model) Activity() []string {
	return m.activity
}

// Close stops the activity listener.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	log.Info(log.CatUI, "Exiting")
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

func (m Model) backToMenu() Model {
	m.screen = screenMenu
	m.flow = flow{}
	m.report = ""
	return m
}

func (m Model) menuView() string {
	hints := []string{"? help"}
	if m.activityEnabled {
		hints = append(hints, "a activity")
	}
	hints = append(hints, "ctrl+c quit")

	view := m.menu.View() + "\n" + styles.HintStyle.Render(strings.Join(hints, " • "))
	if !m.showActivity {
		return view
	}

	content := styles.HintStyle.Render("Nothing yet.")
	if len(m.activity) > 0 {
		content = strings.Join(m.activity, "\n")
	}
	panel := styles.RenderWithTitleBorder(content, "Activity", max(m.width/2, 40), activityLimit+2, false)
	return lipgloss.JoinVertical(lipgloss.Left, view, "", panel)
}
