package academy

import "strings"

// Option is a label/value pair offered to a chooser.
type Option[T any] struct {
	Label string
	Value T
}

// StudentRow is one line of the student listing.
type StudentRow struct {
	RollNumber RollNumber
	Name       string
	Age        int
	Courses    string // course names joined with ", " in enrollment order
}

// CourseRow is one line of a department's course listing.
type CourseRow struct {
	ID             CourseID
	Name           string
	NumStudents    int
	NumInstructors int
}

// CourseStudentRow is one line of a course roster.
type CourseStudentRow struct {
	RollNumber RollNumber
	Name       string
	Age        int
}

// ListStudents projects the given students into rows.
// It returns ok=false, and no rows, when students is empty.
func (r *Registry) ListStudents(students []Student) (rows []StudentRow, ok bool) {
	if len(students) == 0 {
		return nil, false
	}

	rows = make([]StudentRow, len(students))
	for i, s := range students {
		names := make([]string, 0, len(s.Courses))
		for _, id := range s.Courses {
			if c, err := r.course(id); err == nil {
				names = append(names, c.Name)
			}
		}
		rows[i] = StudentRow{
			RollNumber: s.RollNumber,
			Name:       s.Name,
			Age:        s.Age,
			Courses:    strings.Join(names, ", "),
		}
	}
	return rows, true
}

// ListAllStudents projects every registered student.
func (r *Registry) ListAllStudents() ([]StudentRow, bool) {
	return r.ListStudents(r.students)
}

// CoursesProjection lists the department's courses with their current
// enrollment and assignment counts.
func (r *Registry) CoursesProjection(dept DepartmentID) ([]CourseRow, error) {
	d, err := r.department(dept)
	if err != nil {
		return nil, err
	}

	rows := make([]CourseRow, 0, len(d.Courses))
	for _, id := range d.Courses {
		c, err := r.course(id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, CourseRow{
			ID:             c.ID,
			Name:           c.Name,
			NumStudents:    len(c.Students),
			NumInstructors: len(c.Instructors),
		})
	}
	return rows, nil
}

// CourseStudents lists the students of a course in enrollment order.
func (r *Registry) CourseStudents(id CourseID) ([]CourseStudentRow, error) {
	c, err := r.course(id)
	if err != nil {
		return nil, err
	}

	rows := make([]CourseStudentRow, 0, len(c.Students))
	for _, roll := range c.Students {
		s, err := r.student(roll)
		if err != nil {
			return nil, err
		}
		rows = append(rows, CourseStudentRow{
			RollNumber: s.RollNumber,
			Name:       s.Name,
			Age:        s.Age,
		})
	}
	return rows, nil
}

// DepartmentOptions returns one option per department.
func (r *Registry) DepartmentOptions() []Option[DepartmentID] {
	opts := make([]Option[DepartmentID], len(r.departments))
	for i, d := range r.departments {
		opts[i] = Option[DepartmentID]{Label: d.Name, Value: d.ID}
	}
	return opts
}

// CourseOptions returns one option per course owned by the department.
func (r *Registry) CourseOptions(dept DepartmentID) ([]Option[CourseID], error) {
	d, err := r.department(dept)
	if err != nil {
		return nil, err
	}

	opts := make([]Option[CourseID], 0, len(d.Courses))
	for _, id := range d.Courses {
		c, err := r.course(id)
		if err != nil {
			return nil, err
		}
		opts = append(opts, Option[CourseID]{Label: c.Name, Value: c.ID})
	}
	return opts, nil
}

// DepartmentInstructorOptions returns one option per instructor entry of the
// department, duplicates included.
func (r *Registry) DepartmentInstructorOptions(dept DepartmentID) ([]Option[InstructorID], error) {
	d, err := r.department(dept)
	if err != nil {
		return nil, err
	}

	opts := make([]Option[InstructorID], 0, len(d.Instructors))
	for _, id := range d.Instructors {
		ins, err := r.instructor(id)
		if err != nil {
			return nil, err
		}
		opts = append(opts, Option[InstructorID]{Label: ins.Name, Value: ins.ID})
	}
	return opts, nil
}

// InstructorOptions returns one option per registered instructor.
func (r *Registry) InstructorOptions() []Option[InstructorID] {
	opts := make([]Option[InstructorID], len(r.instructors))
	for i, ins := range r.instructors {
		opts[i] = Option[InstructorID]{Label: ins.Name, Value: ins.ID}
	}
	return opts
}
