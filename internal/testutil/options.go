package testutil

import "github.com/campusctl/campus/internal/domain/academy"

// studentData holds a student to be created by the builder.
type studentData struct {
	name    string
	age     int
	courses []academy.CourseID
}

// instructorData holds an instructor to be created by the builder.
type instructorData struct {
	name        string
	age         int
	salary      float64
	departments []string
	courses     []academy.CourseID
}

func defaultStudent(name string) studentData {
	return studentData{name: name, age: 20}
}

func defaultInstructor(name string) instructorData {
	return instructorData{name: name, age: 45, salary: 50000}
}

// StudentOption configures a student.
type StudentOption func(*studentData)

// InstructorOption configures an instructor.
type InstructorOption func(*instructorData)

// StudentAge sets the student's age.
func StudentAge(age int) StudentOption {
	return func(s *studentData) { s.age = age }
}

// EnrolledIn enrolls the student in each course, in order. Repeats are kept.
func EnrolledIn(ids ...academy.CourseID) StudentOption {
	return func(s *studentData) { s.courses = append(s.courses, ids...) }
}

// InstructorAge sets the instructor's age.
func InstructorAge(age int) InstructorOption {
	return func(i *instructorData) { i.age = age }
}

// Salary sets the instructor's salary.
func Salary(salary float64) InstructorOption {
	return func(i *instructorData) { i.salary = salary }
}

// MemberOf adds the instructor to each named department.
func MemberOf(departments ...string) InstructorOption {
	return func(i *instructorData) { i.departments = append(i.departments, departments...) }
}

// Teaches assigns the instructor to each course.
func Teaches(ids ...academy.CourseID) InstructorOption {
	return func(i *instructorData) { i.courses = append(i.courses, ids...) }
}
