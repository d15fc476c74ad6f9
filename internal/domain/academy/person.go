package academy

import "slices"

// RollNumber identifies a student. Roll numbers are allocated sequentially
// starting at 1 and are never reused.
type RollNumber int

// InstructorID identifies an instructor by its 1-based position in the registry.
type InstructorID int

// Person holds the attributes shared by students and instructors.
type Person struct {
	Name string
	Age  int
}

// Student is a person with a roll number and the courses it is enrolled in.
type Student struct {
	Person
	RollNumber RollNumber
	Courses    []CourseID // enrollment order, duplicates kept
}

// enroll links the student and the course on both sides.
func (s *Student) enroll(c *Course) {
	s.Courses = append(s.Courses, c.ID)
	c.recordStudent(s.RollNumber)
}

func (s Student) snapshot() Student {
	s.Courses = slices.Clone(s.Courses)
	return s
}

// Instructor is a person with a salary and the courses it is assigned to.
type Instructor struct {
	Person
	ID      InstructorID
	Salary  float64
	Courses []CourseID // assignment order, duplicates kept
}

// assign links the instructor and the course on both sides.
func (i *Instructor) assign(c *Course) {
	i.Courses = append(i.Courses, c.ID)
	c.recordInstructor(i.ID)
}

func (i Instructor) snapshot() Instructor {
	i.Courses = slices.Clone(i.Courses)
	return i
}
