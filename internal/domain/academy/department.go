package academy

import "slices"

// DepartmentID identifies a department by its 1-based position in the registry.
type DepartmentID int

// Department groups the courses it owns and the instructors added to it.
// The same instructor may be added to several departments, and more than once.
type Department struct {
	ID          DepartmentID
	Name        string
	Courses     []CourseID
	Instructors []InstructorID
}

func (d *Department) addCourse(id CourseID) {
	d.Courses = append(d.Courses, id)
}

func (d *Department) addInstructor(id InstructorID) {
	d.Instructors = append(d.Instructors, id)
}

func (d Department) snapshot() Department {
	d.Courses = slices.Clone(d.Courses)
	d.Instructors = slices.Clone(d.Instructors)
	return d
}
