package academy

import (
	"context"
	"fmt"

	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/pubsub"
	"github.com/campusctl/campus/internal/tracing"
)

// CreateInstructor registers an instructor without a department.
func (s *Service) CreateInstructor(ctx context.Context, name string, age int, salary float64) academy.Instructor {
	_, span := s.start(ctx, "CreateInstructor")
	defer tracing.End(span, nil)

	ins := s.registry.CreateInstructor(name, age, salary)
	span.SetAttributes(instructorAttr(ins.ID))
	log.Info(log.CatRegistry, "Instructor created", "name", name, "id", ins.ID)
	s.publish(pubsub.CreatedEvent, fmt.Sprintf("Instructor added: %s", ins.Name))
	return ins
}

// HireInstructor creates an instructor and adds them to dept in one step.
// The department is checked first so a failed hire creates nobody.
func (s *Service) HireInstructor(ctx context.Context, name string, age int, salary float64, dept academy.DepartmentID) (academy.Instructor, error) {
	_, span := s.start(ctx, "HireInstructor", deptAttr(dept))
	var err error
	defer func() { tracing.End(span, err) }()

	var d academy.Department
	if d, err = s.registry.Department(dept); err != nil {
		err = fmt.Errorf("hire instructor %q: %w", name, err)
		log.ErrorErr(log.CatRegistry, "Hire instructor failed", err, "department", dept)
		return academy.Instructor{}, err
	}

	ins := s.registry.CreateInstructor(name, age, salary)
	span.SetAttributes(instructorAttr(ins.ID))
	span.AddEvent(tracing.EventInstructorHired)

	if err = s.registry.AddInstructor(dept, ins.ID); err != nil {
		err = fmt.Errorf("hire instructor %q: %w", name, err)
		return ins, err
	}

	log.Info(log.CatRegistry, "Instructor hired", "name", name, "id", ins.ID, "department", d.Name)
	s.publish(pubsub.LinkedEvent, fmt.Sprintf("Instructor %s added to %s", ins.Name, d.Name))
	return ins, nil
}

// AddInstructorToDepartment records an existing instructor as a member of dept.
// Adding the same instructor twice records two entries.
func (s *Service) AddInstructorToDepartment(ctx context.Context, id academy.InstructorID, dept academy.DepartmentID) error {
	_, span := s.start(ctx, "AddInstructorToDepartment", instructorAttr(id), deptAttr(dept))

	err := s.registry.AddInstructor(dept, id)
	if err != nil {
		err = fmt.Errorf("add instructor %d to department %d: %w", id, dept, err)
		log.ErrorErr(log.CatRegistry, "Add instructor failed", err)
		tracing.End(span, err)
		return err
	}

	ins, _ := s.registry.Instructor(id)
	d, _ := s.registry.Department(dept)
	log.Info(log.CatRegistry, "Instructor added to department", "id", id, "department", d.Name)
	s.publish(pubsub.LinkedEvent, fmt.Sprintf("Instructor %s added to %s", ins.Name, d.Name))
	tracing.End(span, nil)
	return nil
}

// AssignInstructor links an instructor and a course. Department membership
// is not required.
func (s *Service) AssignInstructor(ctx context.Context, id academy.InstructorID, course academy.CourseID) (academy.Course, error) {
	_, span := s.start(ctx, "AssignInstructor", instructorAttr(id), courseAttr(course))

	if err := s.registry.Assign(id, course); err != nil {
		err = fmt.Errorf("assign instructor %d to course %d: %w", id, course, err)
		log.ErrorErr(log.CatRegistry, "Assign failed", err)
		tracing.End(span, err)
		return academy.Course{}, err
	}

	ins, _ := s.registry.Instructor(id)
	c, _ := s.registry.Course(course)
	span.AddEvent(tracing.EventLinkRecorded)
	log.Info(log.CatRegistry, "Instructor assigned", "id", id, "course", course)
	s.publish(pubsub.LinkedEvent, fmt.Sprintf("Instructor %s assigned to course %s", ins.Name, c.Name))
	tracing.End(span, nil)
	return c, nil
}

// Instructors returns one option per registered instructor.
func (s *Service) Instructors(ctx context.Context) []academy.Option[academy.InstructorID] {
	_, span := s.start(ctx, "Instructors")
	defer tracing.End(span, nil)
	return s.registry.InstructorOptions()
}

// DepartmentInstructors returns one option per instructor entry of dept.
func (s *Service) DepartmentInstructors(ctx context.Context, dept academy.DepartmentID) ([]academy.Option[academy.InstructorID], error) {
	_, span := s.start(ctx, "DepartmentInstructors", deptAttr(dept))
	opts, err := s.registry.DepartmentInstructorOptions(dept)
	if err != nil {
		err = fmt.Errorf("department instructors: %w", err)
	}
	tracing.End(span, err)
	return opts, err
}
