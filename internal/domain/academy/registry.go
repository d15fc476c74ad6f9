package academy

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDuplicateCourse    = errors.New("duplicate course id")
)

// Registry is the top-level aggregate. It owns every department, course,
// student and instructor and the roll number sequence.
//
// Registry is not safe for concurrent use; it is driven by a single control loop.
type Registry struct {
	departments    []Department
	courses        []Course
	courseIndex    map[CourseID]int
	students       []Student
	instructors    []Instructor
	nextRollNumber RollNumber
}

// NewRegistry creates an empty registry with the roll number sequence at 1.
func NewRegistry() *Registry {
	return &Registry{
		departments:    make([]Department, 0),
		courses:        make([]Course, 0),
		courseIndex:    make(map[CourseID]int),
		students:       make([]Student, 0),
		instructors:    make([]Instructor, 0),
		nextRollNumber: 1,
	}
}

// AddDepartment appends a department and returns its id.
func (r *Registry) AddDepartment(name string) DepartmentID {
	id := DepartmentID(len(r.departments) + 1)
	r.departments = append(r.departments, Department{ID: id, Name: name})
	return id
}

// AddCourse creates a course owned by the department.
// Course ids must be unique across the whole registry.
func (r *Registry) AddCourse(dept DepartmentID, id CourseID, name string) error {
	d, err := r.department(dept)
	if err != nil {
		return err
	}
	if _, exists := r.courseIndex[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateCourse, id)
	}

	r.courseIndex[id] = len(r.courses)
	r.courses = append(r.courses, Course{ID: id, Name: name, Department: dept})
	d.addCourse(id)
	return nil
}

// AddInstructor records the instructor as a member of the department.
// No uniqueness is enforced.
func (r *Registry) AddInstructor(dept DepartmentID, id InstructorID) error {
	d, err := r.department(dept)
	if err != nil {
		return err
	}
	if _, err := r.instructor(id); err != nil {
		return err
	}
	d.addInstructor(id)
	return nil
}

// AllocateRollNumber returns the next roll number and advances the sequence.
func (r *Registry) AllocateRollNumber() RollNumber {
	roll := r.nextRollNumber
	r.nextRollNumber++
	return roll
}

// NextRollNumber reports the roll number the next student will receive.
func (r *Registry) NextRollNumber() RollNumber {
	return r.nextRollNumber
}

// CreateStudent allocates a roll number and appends a new student.
func (r *Registry) CreateStudent(name string, age int) Student {
	s := Student{
		Person:     Person{Name: name, Age: age},
		RollNumber: r.AllocateRollNumber(),
	}
	r.students = append(r.students, s)
	return s.snapshot()
}

// CreateInstructor appends a new instructor. Department membership is added
// separately with AddInstructor.
func (r *Registry) CreateInstructor(name string, age int, salary float64) Instructor {
	i := Instructor{
		Person: Person{Name: name, Age: age},
		ID:     InstructorID(len(r.instructors) + 1),
		Salary: salary,
	}
	r.instructors = append(r.instructors, i)
	return i.snapshot()
}

// Enroll links a student and a course in both directions.
// Enrolling twice records the link twice.
func (r *Registry) Enroll(roll RollNumber, course CourseID) error {
	s, err := r.student(roll)
	if err != nil {
		return err
	}
	c, err := r.course(course)
	if err != nil {
		return err
	}
	s.enroll(c)
	return nil
}

// Assign links an instructor and a course in both directions. The instructor
// does not need to belong to the course's department.
func (r *Registry) Assign(id InstructorID, course CourseID) error {
	i, err := r.instructor(id)
	if err != nil {
		return err
	}
	c, err := r.course(course)
	if err != nil {
		return err
	}
	i.assign(c)
	return nil
}

// Student returns a snapshot of the student with the given roll number.
func (r *Registry) Student(roll RollNumber) (Student, error) {
	s, err := r.student(roll)
	if err != nil {
		return Student{}, err
	}
	return s.snapshot(), nil
}

// Instructor returns a snapshot of the instructor with the given id.
func (r *Registry) Instructor(id InstructorID) (Instructor, error) {
	i, err := r.instructor(id)
	if err != nil {
		return Instructor{}, err
	}
	return i.snapshot(), nil
}

// Course returns a snapshot of the course with the given id.
func (r *Registry) Course(id CourseID) (Course, error) {
	c, err := r.course(id)
	if err != nil {
		return Course{}, err
	}
	return c.snapshot(), nil
}

// Department returns a snapshot of the department with the given id.
func (r *Registry) Department(id DepartmentID) (Department, error) {
	d, err := r.department(id)
	if err != nil {
		return Department{}, err
	}
	return d.snapshot(), nil
}

// Students returns snapshots of all students in creation order.
func (r *Registry) Students() []Student {
	result := make([]Student, len(r.students))
	for i, s := range r.students {
		result[i] = s.snapshot()
	}
	return result
}

// Instructors returns snapshots of all instructors in creation order.
func (r *Registry) Instructors() []Instructor {
	result := make([]Instructor, len(r.instructors))
	for i, ins := range r.instructors {
		result[i] = ins.snapshot()
	}
	return result
}

// Departments returns snapshots of all departments in creation order.
func (r *Registry) Departments() []Department {
	result := make([]Department, len(r.departments))
	for i, d := range r.departments {
		result[i] = d.snapshot()
	}
	return result
}

// FindDepartment returns the first department with the given name.
func (r *Registry) FindDepartment(name string) (Department, error) {
	for _, d := range r.departments {
		if d.Name == name {
			return d.snapshot(), nil
		}
	}
	return Department{}, fmt.Errorf("%w: %q", ErrDepartmentNotFound, name)
}

func (r *Registry) student(roll RollNumber) (*Student, error) {
	idx := int(roll) - 1
	if idx < 0 || idx >= len(r.students) {
		return nil, fmt.Errorf("%w: roll number %d", ErrStudentNotFound, roll)
	}
	return &r.students[idx], nil
}

func (r *Registry) instructor(id InstructorID) (*Instructor, error) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(r.instructors) {
		return nil, fmt.Errorf("%w: id %d", ErrInstructorNotFound, id)
	}
	return &r.instructors[idx], nil
}

func (r *Registry) course(id CourseID) (*Course, error) {
	idx, ok := r.courseIndex[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrCourseNotFound, id)
	}
	return &r.courses[idx], nil
}

func (r *Registry) department(id DepartmentID) (*Department, error) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(r.departments) {
		return nil, fmt.Errorf("%w: id %d", ErrDepartmentNotFound, id)
	}
	return &r.departments[idx], nil
}
