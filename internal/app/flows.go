package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/flags"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/report"
	"github.com/campusctl/campus/internal/ui/picker"
	"github.com/campusctl/campus/internal/ui/prompt"
	"github.com/campusctl/campus/internal/ui/toaster"
)

// action is a main menu entry.
type action int

const (
	actionAddStudent action = iota
	actionAddInstructor
	actionAssign
	actionListCourses
	actionListStudents
	actionRoster
	actionHelp
	actionExit
)

type menuEntry struct {
	label  string
	action action
}

// Picker and prompt ids.
const (
	pickMenu       = "menu"
	pickDepartment = "department"
	pickCourse     = "course"
	pickInstructor = "instructor"

	promptStudent    = "student"
	promptInstructor = "instructor"
)

// flow carries the answers collected so far by a multi-step menu action.
type flow struct {
	action         action
	values         prompt.Values
	dept           academy.DepartmentID
	deptName       string
	instructor     academy.InstructorID
	instructorName string
}

func menuEntries(fl *flags.Registry) []menuEntry {
	entries := []menuEntry{
		{"Add Student", actionAddStudent},
		{"Add Instructor to Department", actionAddInstructor},
		{"Assign Instructor to Course", actionAssign},
		{"List Courses in Department", actionListCourses},
		{"List Students", actionListStudents},
	}
	if fl.Enabled(flags.FlagCourseRoster) {
		entries = append(entries, menuEntry{"List Students in Course", actionRoster})
	}
	return append(entries,
		menuEntry{"Help", actionHelp},
		menuEntry{"Exit", actionExit},
	)
}

func newMenu(entries []menuEntry) picker.Model[action] {
	items := make([]picker.Item[action], len(entries))
	for i, e := range entries {
		items[i] = picker.Item[action]{Label: e.label, Value: e.action}
	}
	return picker.New(pickMenu, "What do you want to do?", items)
}

// start begins the flow for a chosen menu entry.
func (m Model) start(a action) (tea.Model, tea.Cmd) {
	log.Debug(log.CatUI, "Menu action", "action", int(a))
	m.flow = flow{action: a}

	switch a {
	case actionAddStudent:
		return m.ask(promptStudent, "Add Student", []prompt.Field{
			{Key: "name", Label: "Student name", Kind: prompt.KindText},
			{Key: "age", Label: "Student age", Kind: prompt.KindInt},
		})

	case actionAddInstructor:
		return m.ask(promptInstructor, "Add Instructor to Department", []prompt.Field{
			{Key: "name", Label: "Instructor name", Kind: prompt.KindText},
			{Key: "age", Label: "Instructor age", Kind: prompt.KindInt},
			{Key: "salary", Label: "Instructor salary", Kind: prompt.KindFloat},
		})

	case actionAssign, actionListCourses, actionRoster:
		return m.pickDepartment()

	case actionListStudents:
		rows, ok := m.svc.ListStudents(m.ctx)
		return m.showReport(report.Students(rows, ok))

	case actionHelp:
		m.screen = screenHelp
		return m, nil

	case actionExit:
		return m.quit()
	}
	return m, nil
}

// choose advances the flow after a department, instructor or course pick.
func (m Model) choose(msg picker.ChosenMsg[int]) (tea.Model, tea.Cmd) {
	switch msg.ID {
	case pickDepartment:
		m.flow.dept = academy.DepartmentID(msg.Item.Value)
		m.flow.deptName = msg.Item.Label
		return m.departmentChosen()

	case pickInstructor:
		m.flow.instructor = academy.InstructorID(msg.Item.Value)
		m.flow.instructorName = msg.Item.Label
		return m.pickCourse(fmt.Sprintf("Choose a course in %s to assign %s:", m.flow.deptName, m.flow.instructorName))

	case pickCourse:
		return m.courseChosen(academy.CourseID(msg.Item.Value), msg.Item.Label)
	}
	return m, nil
}

func (m Model) departmentChosen() (tea.Model, tea.Cmd) {
	f := m.flow
	switch f.action {
	case actionAddStudent, actionRoster:
		return m.pickCourse(fmt.Sprintf("Choose a course in %s:", f.deptName))

	case actionAddInstructor:
		ins, err := m.svc.HireInstructor(m.ctx, f.values.String("name"), f.values.Int("age"), f.values.Float("salary"), f.dept)
		if err != nil {
			return m.toast(toaster.StyleError, err.Error())
		}
		return m.toast(toaster.StyleSuccess, fmt.Sprintf("Instructor %s added to %s", ins.Name, f.deptName))

	case actionAssign:
		instructors := m.svc.Instructors(m.ctx)
		if len(instructors) == 0 {
			return m.toast(toaster.StyleWarn, "No instructors yet.", "Add one with \"Add Instructor to Department\" first.")
		}
		m.choice = picker.New(pickInstructor, "Choose an instructor:", pickerItems(instructors))
		m.screen = screenPicker
		return m, nil

	case actionListCourses:
		rows, err := m.svc.ListCourses(m.ctx, f.dept)
		if err != nil {
			return m.toast(toaster.StyleError, err.Error())
		}
		return m.showReport(report.Courses(f.deptName, rows))
	}
	return m.backToMenu(), nil
}

func (m Model) courseChosen(course academy.CourseID, courseName string) (tea.Model, tea.Cmd) {
	f := m.flow
	switch f.action {
	case actionAddStudent:
		student, c, err := m.svc.RegisterStudent(m.ctx, f.values.String("name"), f.values.Int("age"), course)
		if err != nil {
			return m.toast(toaster.StyleError, err.Error())
		}
		return m.toast(toaster.StyleSuccess,
			fmt.Sprintf("Student added: %s with Roll Number: %d", student.Name, student.RollNumber),
			fmt.Sprintf("Student %s added to course %s", student.Name, c.Name),
		)

	case actionAssign:
		c, err := m.svc.AssignInstructor(m.ctx, f.instructor, course)
		if err != nil {
			return m.toast(toaster.StyleError, err.Error())
		}
		return m.toast(toaster.StyleSuccess, fmt.Sprintf("Instructor %s assigned to course %s", f.instructorName, c.Name))

	case actionRoster:
		rows, err := m.svc.CourseRoster(m.ctx, course)
		if err != nil {
			return m.toast(toaster.StyleError, err.Error())
		}
		return m.showReport(report.Roster(courseName, rows))
	}
	return m.backToMenu(), nil
}

func (m Model) ask(id, title string, fields []prompt.Field) (tea.Model, tea.Cmd) {
	m.prompt = prompt.New(id, title, fields)
	m.screen = screenPrompt
	return m, m.prompt.Init()
}

func (m Model) pickDepartment() (tea.Model, tea.Cmd) {
	m.choice = picker.New(pickDepartment, "Choose a department:", pickerItems(m.svc.Departments(m.ctx)))
	m.screen = screenPicker
	return m, nil
}

func (m Model) pickCourse(title string) (tea.Model, tea.Cmd) {
	courses, err := m.svc.DepartmentCourses(m.ctx, m.flow.dept)
	if err != nil {
		return m.toast(toaster.StyleError, err.Error())
	}
	if len(courses) == 0 {
		return m.toast(toaster.StyleWarn, fmt.Sprintf("No courses found in %s department.", m.flow.deptName))
	}
	m.choice = picker.New(pickCourse, title, pickerItems(courses))
	m.screen = screenPicker
	return m, nil
}

func (m Model) showReport(t report.Table) (tea.Model, tea.Cmd) {
	m.report = t.Render()
	m.screen = screenReport
	return m, nil
}

// toast ends the flow and shows the outcome over the menu.
func (m Model) toast(style toaster.Style, lines ...string) (tea.Model, tea.Cmd) {
	m = m.backToMenu()
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(style, lines...)
	return m, cmd
}

func pickerItems[T ~int](opts []academy.Option[T]) []picker.Item[int] {
	items := make([]picker.Item[int], len(opts))
	for i, o := range opts {
		items[i] = picker.Item[int]{Label: o.Label, Value: int(o.Value)}
	}
	return items
}
