package academy

import (
	"context"
	"fmt"

	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/pubsub"
	"github.com/campusctl/campus/internal/tracing"
)

// CreateStudent registers a student without enrolling them anywhere.
func (s *Service) CreateStudent(ctx context.Context, name string, age int) academy.Student {
	_, span := s.start(ctx, "CreateStudent")
	defer tracing.End(span, nil)

	student := s.createStudent(name, age)
	span.SetAttributes(rollAttr(student.RollNumber))
	return student
}

// RegisterStudent creates a student and enrolls them in course in one step.
// The course is checked first so a failed registration allocates no roll number.
func (s *Service) RegisterStudent(ctx context.Context, name string, age int, course academy.CourseID) (academy.Student, academy.Course, error) {
	ctx, span := s.start(ctx, "RegisterStudent", courseAttr(course))
	var err error
	defer func() { tracing.End(span, err) }()

	if _, err = s.registry.Course(course); err != nil {
		err = fmt.Errorf("register student %q: %w", name, err)
		log.ErrorErr(log.CatRegistry, "Register student failed", err, "course", course)
		return academy.Student{}, academy.Course{}, err
	}

	student := s.createStudent(name, age)
	span.SetAttributes(rollAttr(student.RollNumber))
	span.AddEvent(tracing.EventStudentCreated)

	var c academy.Course
	c, err = s.enroll(ctx, student.RollNumber, course)
	if err != nil {
		return student, academy.Course{}, err
	}
	student, err = s.registry.Student(student.RollNumber)
	return student, c, err
}

// Enroll links an existing student and course.
func (s *Service) Enroll(ctx context.Context, roll academy.RollNumber, course academy.CourseID) (academy.Course, error) {
	ctx, span := s.start(ctx, "Enroll", rollAttr(roll), courseAttr(course))
	c, err := s.enroll(ctx, roll, course)
	tracing.End(span, err)
	return c, err
}

// ListStudents projects every registered student. ok is false when nobody
// has registered yet.
func (s *Service) ListStudents(ctx context.Context) (rows []academy.StudentRow, ok bool) {
	_, span := s.start(ctx, "ListStudents")
	defer tracing.End(span, nil)

	rows, ok = s.registry.ListAllStudents()
	span.SetAttributes(tracing.Int(tracing.AttrResultCount, len(rows)))
	return rows, ok
}

// CourseRoster lists the students enrolled in course.
func (s *Service) CourseRoster(ctx context.Context, course academy.CourseID) ([]academy.CourseStudentRow, error) {
	_, span := s.start(ctx, "CourseRoster", courseAttr(course))

	rows, err := s.registry.CourseStudents(course)
	if err != nil {
		err = fmt.Errorf("course roster: %w", err)
		log.ErrorErr(log.CatRegistry, "Course roster failed", err, "course", course)
	} else {
		span.SetAttributes(tracing.Int(tracing.AttrResultCount, len(rows)))
	}
	tracing.End(span, err)
	return rows, err
}

func (s *Service) createStudent(name string, age int) academy.Student {
	student := s.registry.CreateStudent(name, age)
	log.Info(log.CatRegistry, "Student created", "name", name, "roll", student.RollNumber)
	s.publish(pubsub.CreatedEvent, fmt.Sprintf("Student added: %s with Roll Number: %d", student.Name, student.RollNumber))
	return student
}

func (s *Service) enroll(_ context.Context, roll academy.RollNumber, course academy.CourseID) (academy.Course, error) {
	if err := s.registry.Enroll(roll, course); err != nil {
		err = fmt.Errorf("enroll student %d in course %d: %w", roll, course, err)
		log.ErrorErr(log.CatRegistry, "Enroll failed", err)
		return academy.Course{}, err
	}

	student, err := s.registry.Student(roll)
	if err != nil {
		return academy.Course{}, err
	}
	c, err := s.registry.Course(course)
	if err != nil {
		return academy.Course{}, err
	}

	log.Info(log.CatRegistry, "Student enrolled", "roll", roll, "course", course)
	s.publish(pubsub.LinkedEvent, fmt.Sprintf("Student %s added to course %s", student.Name, c.Name))
	return c, nil
}
