package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/campusctl/campus/internal/domain/academy"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestCourses(t *testing.T) {
	tbl := Courses("Mathematics", []academy.CourseRow{
		{ID: 3, Name: "Calculus", NumStudents: 2, NumInstructors: 1},
		{ID: 4, Name: "Linear Algebra"},
	})

	lines := plainLines(tbl.Render())
	require.Equal(t, "Courses in Mathematics department:", lines[0])
	require.Equal(t, "ID   Name                     Students Enrolled   Instructors Assigned", lines[1])
	require.Equal(t, strings.Repeat("─", 75), lines[2])
	require.Equal(t, "3    Calculus                 2                   1", lines[3])
	require.Equal(t, "4    Linear Algebra           0                   0", lines[4])
}

func TestCourses_Empty(t *testing.T) {
	lines := plainLines(Courses("Biology", nil).Render())
	require.Equal(t, []string{"Courses in Biology department:", "No courses found in Biology department."}, lines)
}

func TestStudents(t *testing.T) {
	tbl := Students([]academy.StudentRow{
		{RollNumber: 1, Name: "Ada", Age: 20, Courses: "Introduction to Programming, Calculus"},
	}, true)

	lines := plainLines(tbl.Render())
	require.Equal(t, "List of Students:", lines[0])
	require.Equal(t, "Roll Number    Name                     Age       Courses Enrolled", lines[1])
	require.Equal(t, "1              Ada                      20        Introduction to Programming, Calculus", lines[3],
		"last column is never cut")
}

func TestStudents_Empty(t *testing.T) {
	lines := plainLines(Students(nil, false).Render())
	require.Equal(t, []string{"List of Students:", "No students registered yet."}, lines)
}

func TestRoster(t *testing.T) {
	tbl := Roster("Calculus", []academy.CourseStudentRow{{RollNumber: 2, Name: "Grace", Age: 22}})
	lines := plainLines(tbl.Render())
	require.Equal(t, "Students in Calculus:", lines[0])
	require.Equal(t, "2              Grace                    22", lines[3])

	empty := plainLines(Roster("Calculus", nil).Render())
	require.Equal(t, "No students enrolled in Calculus.", empty[1])
}

func TestTable_TruncatesWideCells(t *testing.T) {
	tbl := Table{
		Columns: []Column{{Header: "ID", Width: 5}, {Header: "Name", Width: 10}},
		Rows:    [][]string{{"123456", "x"}},
	}
	lines := plainLines(tbl.Render())
	require.Equal(t, "1... x", lines[2])
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	require.NoError(t, p.Line("Student added: Ada with Roll Number: 1"))
	require.NoError(t, p.Table(Students(nil, false)))

	out := buf.String()
	require.NotContains(t, out, "\x1b[")
	require.Equal(t, "Student added: Ada with Roll Number: 1\nList of Students:\nNo students registered yet.\n\n", out)
}
