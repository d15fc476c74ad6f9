package academy

import "slices"

// CourseID identifies a course. Course ids are unique across all departments.
type CourseID int

// Course is owned by exactly one department and keeps back-references to the
// students enrolled in it and the instructors assigned to it.
type Course struct {
	ID          CourseID
	Name        string
	Department  DepartmentID
	Students    []RollNumber
	Instructors []InstructorID
}

func (c *Course) recordStudent(roll RollNumber) {
	c.Students = append(c.Students, roll)
}

func (c *Course) recordInstructor(id InstructorID) {
	c.Instructors = append(c.Instructors, id)
}

func (c Course) snapshot() Course {
	c.Students = slices.Clone(c.Students)
	c.Instructors = slices.Clone(c.Instructors)
	return c
}
