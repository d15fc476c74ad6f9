package report

import (
	"fmt"
	"strconv"

	"github.com/campusctl/campus/internal/domain/academy"
)

// Courses lays out a department's course listing.
func Courses(department string, rows []academy.CourseRow) Table {
	t := Table{
		Title: fmt.Sprintf("Courses in %s department:", department),
		Columns: []Column{
			{Header: "ID", Width: 5},
			{Header: "Name", Width: 25},
			{Header: "Students Enrolled", Width: 20},
			{Header: "Instructors Assigned", Width: 25},
		},
		Empty: fmt.Sprintf("No courses found in %s department.", department),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(int(r.ID)),
			r.Name,
			strconv.Itoa(r.NumStudents),
			strconv.Itoa(r.NumInstructors),
		})
	}
	return t
}

// Students lays out the student listing. ok is the empty signal returned by
// the registry.
func Students(rows []academy.StudentRow, ok bool) Table {
	t := Table{
		Title: "List of Students:",
		Columns: []Column{
			{Header: "Roll Number", Width: 15},
			{Header: "Name", Width: 25},
			{Header: "Age", Width: 10},
			{Header: "Courses Enrolled", Width: 30},
		},
		Empty: "No students registered yet.",
	}
	if !ok {
		return t
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(int(r.RollNumber)),
			r.Name,
			strconv.Itoa(r.Age),
			r.Courses,
		})
	}
	return t
}

// Roster lays out the students of one course.
func Roster(course string, rows []academy.CourseStudentRow) Table {
	t := Table{
		Title: fmt.Sprintf("Students in %s:", course),
		Columns: []Column{
			{Header: "Roll Number", Width: 15},
			{Header: "Name", Width: 25},
			{Header: "Age", Width: 10},
		},
		Empty: fmt.Sprintf("No students enrolled in %s.", course),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(int(r.RollNumber)),
			r.Name,
			strconv.Itoa(r.Age),
		})
	}
	return t
}
