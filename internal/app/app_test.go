package app

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appacademy "github.com/campusctl/campus/internal/application/academy"
	"github.com/campusctl/campus/internal/config"
	"github.com/campusctl/campus/internal/flags"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/pubsub"
	"github.com/campusctl/campus/internal/testutil"
	"github.com/campusctl/campus/internal/ui/picker"
	"github.com/campusctl/campus/internal/ui/prompt"
	"github.com/campusctl/campus/internal/ui/styles"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// createTestModel creates a Model over the seeded catalog.
func createTestModel(t *testing.T, fl map[string]bool) Model {
	t.Helper()
	svc := appacademy.NewService(testutil.Seeded(t))
	t.Cleanup(svc.Close)

	cfg := config.Defaults()
	cfg.UI.HelpStyle = "notty"
	m := New(svc, cfg, flags.New(fl))
	t.Cleanup(m.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func choose(m Model, a action) Model {
	next, _ := m.Update(picker.ChosenMsg[action]{ID: pickMenu, Item: picker.Item[action]{Value: a}})
	return next.(Model)
}

func pick(t *testing.T, m Model, id string, index int) Model {
	t.Helper()
	item, ok := m.choice.SetSelected(index).Selected()
	require.True(t, ok, "no item %d in picker %s", index, id)
	require.Equal(t, id, m.choice.ID())
	return update(t, m, picker.ChosenMsg[int]{ID: id, Index: index, Item: item})
}

func submit(t *testing.T, m Model, id string, values prompt.Values) Model {
	t.Helper()
	require.Equal(t, screenPrompt, m.screen)
	return update(t, m, prompt.SubmitMsg{ID: id, Values: values})
}

func TestApp_MenuEntries(t *testing.T) {
	labels := func(entries []menuEntry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.label
		}
		return out
	}

	assert.Equal(t, []string{
		"Add Student",
		"Add Instructor to Department",
		"Assign Instructor to Course",
		"List Courses in Department",
		"List Students",
		"Help",
		"Exit",
	}, labels(menuEntries(flags.New(nil))))

	withRoster := labels(menuEntries(flags.New(map[string]bool{flags.FlagCourseRoster: true})))
	assert.Equal(t, "List Students in Course", withRoster[5])
	assert.Len(t, withRoster, 8)
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestApp_AddStudentFlow(t *testing.T) {
	m := createTestModel(t, nil)

	m = choose(m, actionAddStudent)
	require.Equal(t, screenPrompt, m.screen)
	assert.Contains(t, m.View(), "Enter student name:")

	m = submit(t, m, promptStudent, prompt.Values{"name": "Ada", "age": 20})
	require.Equal(t, screenPicker, m.screen)
	assert.Contains(t, m.View(), "Choose a department:")

	m = pick(t, m, pickDepartment, 0)
	assert.Contains(t, m.View(), "Choose a course in Computer Science:")

	m = pick(t, m, pickCourse, 1)
	assert.Equal(t, screenMenu, m.screen)
	require.True(t, m.toaster.Visible())
	assert.Equal(t, []string{
		"Student added: Ada with Roll Number: 1",
		"Student Ada added to course Database Systems",
	}, m.toaster.Lines())

	rows, ok := m.svc.ListStudents(m.ctx)
	require.True(t, ok)
	assert.Equal(t, "Database Systems", rows[0].Courses)
}

func TestApp_AddInstructorFlow(t *testing.T) {
	m := createTestModel(t, nil)

	m = choose(m, actionAddInstructor)
	assert.Contains(t, m.View(), "Enter instructor name:")

	m = submit(t, m, promptInstructor, prompt.Values{"name": "Noether", "age": 53, "salary": 61000.0})
	m = pick(t, m, pickDepartment, 1)

	assert.Equal(t, []string{"Instructor Noether added to Mathematics"}, m.toaster.Lines())
	require.Len(t, m.svc.Instructors(m.ctx), 1)
}

func TestApp_AssignWithoutInstructorsWarns(t *testing.T) {
	m := createTestModel(t, nil)

	m = choose(m, actionAssign)
	m = pick(t, m, pickDepartment, 0)

	assert.Equal(t, screenMenu, m.screen)
	require.True(t, m.toaster.Visible())
	assert.Equal(t, "No instructors yet.", m.toaster.Lines()[0])
}

func TestApp_AssignFlow(t *testing.T) {
	m := createTestModel(t, nil)
	m.svc.CreateInstructor(m.ctx, "Turing", 41, 50000)

	m = choose(m, actionAssign)
	m = pick(t, m, pickDepartment, 2)
	assert.Contains(t, m.View(), "Choose an instructor:")

	m = pick(t, m, pickInstructor, 0)
	assert.Contains(t, m.View(), "Choose a course in Physics to assign Turing:")

	m = pick(t, m, pickCourse, 0)
	assert.Equal(t, []string{"Instructor Turing assigned to course Classical Mechanics"}, m.toaster.Lines())

	rows, err := m.svc.ListCourses(m.ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, rows[0].NumInstructors)
}

func TestApp_ListCoursesReport(t *testing.T) {
	m := createTestModel(t, nil)

	m = choose(m, actionListCourses)
	m = pick(t, m, pickDepartment, 1)

	require.Equal(t, screenReport, m.screen)
	view := m.View()
	assert.Contains(t, view, "Courses in Mathematics department:")
	assert.Contains(t, view, "Calculus")
	assert.Contains(t, view, "Linear Algebra")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
}

func TestApp_ListStudentsEmpty(t *testing.T) {
	m := createTestModel(t, nil)

	m = choose(m, actionListStudents)
	require.Equal(t, screenReport, m.screen)
	assert.Contains(t, m.View(), "No students registered yet.")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenMenu, m.screen)
}

func TestApp_RosterFlow(t *testing.T) {
	m := createTestModel(t, map[string]bool{flags.FlagCourseRoster: true})
	_, _, err := m.svc.RegisterStudent(m.ctx, "Grace", 22, 3)
	require.NoError(t, err)

	m = choose(m, actionRoster)
	m = pick(t, m, pickDepartment, 1)
	m = pick(t, m, pickCourse, 0)

	require.Equal(t, screenReport, m.screen)
	view := m.View()
	assert.Contains(t, view, "Students in Calculus:")
	assert.Contains(t, view, "Grace")
}

func TestApp_EscCancelsFlow(t *testing.T) {
	m := createTestModel(t, nil)

	m = choose(m, actionAddStudent)
	m = update(t, m, prompt.CancelMsg{ID: promptStudent})
	assert.Equal(t, screenMenu, m.screen)

	m = choose(m, actionListCourses)
	m = update(t, m, picker.CancelMsg{ID: pickDepartment})
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, flow{}, m.flow)
}

func TestApp_HelpScreen(t *testing.T) {
	m := createTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.Equal(t, screenHelp, m.screen)
	assert.Contains(t, m.View(), "esc to return to the menu")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
}

func TestApp_ActivityPanel(t *testing.T) {
	m := createTestModel(t, nil)
	require.True(t, m.showActivity)
	assert.Contains(t, m.View(), "Nothing yet.")

	m = update(t, m, pubsub.Event[appacademy.Activity]{Payload: appacademy.Activity{Message: "Instructor added: Turing"}})
	assert.Equal(t, []string{"Instructor added: Turing"}, m.Activity())
	assert.Contains(t, m.View(), "Instructor added: Turing")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.False(t, m.showActivity)
	assert.NotContains(t, m.View(), "Instructor added: Turing")
}

func TestApp_ActivityPanelKeepsRecentLines(t *testing.T) {
	m := createTestModel(t, nil)
	for i := range activityLimit + 3 {
		m = update(t, m, pubsub.Event[appacademy.Activity]{Payload: appacademy.Activity{Message: string(rune('a' + i))}})
	}
	require.Len(t, m.Activity(), activityLimit)
	assert.Equal(t, "d", m.Activity()[0])
}

func TestApp_ActivityPanelDisabled(t *testing.T) {
	svc := appacademy.NewService(testutil.Seeded(t))
	t.Cleanup(svc.Close)
	cfg := config.Defaults()
	cfg.UI.ShowActivity = false
	m := New(svc, cfg, flags.New(nil))
	t.Cleanup(m.Close)

	assert.False(t, m.showActivity)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.False(t, m.showActivity, "toggle is ignored when the panel is unavailable")
}

func TestApp_ExitSaysGoodbye(t *testing.T) {
	m := createTestModel(t, nil)

	next, cmd := m.Update(picker.ChosenMsg[action]{ID: pickMenu, Item: picker.Item[action]{Label: "Exit", Value: actionExit}})
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Contains(t, m.View(), "Goodbye!")
}

func TestApp_QuitsFromProgram(t *testing.T) {
	m := createTestModel(t, nil)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	assert.True(t, final.Quitting())
}

func TestApp_ThemeMsgAppliesColours(t *testing.T) {
	m := createTestModel(t, nil)
	before := styles.HighlightColor
	t.Cleanup(func() {
		styles.HighlightColor = before
		styles.ApplyTheme("", "", "", "")
	})

	m = update(t, m, ThemeMsg{Highlight: "#112233"})
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#112233", Dark: "#112233"}, styles.HighlightColor)
	assert.Equal(t, screenMenu, m.screen)
}

func TestApp_LogOverlay(t *testing.T) {
	cleanup := log.InitWriter(io.Discard)
	t.Cleanup(cleanup)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := createTestModel(t, nil).WithLogListener(log.NewListener(ctx))
	m = update(t, m, log.LogEvent{Payload: "2026-01-02T10:00:00 [INFO] [registry] Student created name=Ada\n"})
	assert.NotContains(t, m.View(), "Student created")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	require.True(t, m.logOverlay.Visible())
	assert.Contains(t, m.View(), "Student created name=Ada")

	// Keys go to the overlay while it is open.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Equal(t, screenMenu, m.screen)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.logOverlay.Visible())
}

func TestApp_LogOverlayNeedsListener(t *testing.T) {
	m := createTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.False(t, m.logOverlay.Visible())
}
