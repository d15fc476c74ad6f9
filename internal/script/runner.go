package script

import (
	"context"
	"fmt"

	appacademy "github.com/campusctl/campus/internal/application/academy"
	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/pubsub"
	"github.com/campusctl/campus/internal/report"
)

// Runner executes scripts against a service, printing activity lines and
// report tables as it goes.
type Runner struct {
	svc      *appacademy.Service
	printer  *report.Printer
	activity <-chan pubsub.Event[appacademy.Activity]
}

// NewRunner subscribes to svc's activity for the lifetime of ctx.
func NewRunner(ctx context.Context, svc *appacademy.Service, printer *report.Printer) *Runner {
	return &Runner{
		svc:      svc,
		printer:  printer,
		activity: svc.Subscribe(ctx),
	}
}

// Run executes every step in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context, sc Script) error {
	for i, step := range sc.Steps {
		log.Debug(log.CatScript, "Running step", "index", i+1, "op", step.Op)
		if err := r.step(ctx, step); err != nil {
			log.ErrorErr(log.CatScript, "Step failed", err, "index", i+1, "op", step.Op)
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		if err := r.flushActivity(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) step(ctx context.Context, step Step) error {
	switch {
	case step.AddStudent != nil:
		a := step.AddStudent
		_, course, err := r.course(ctx, a.Department, a.Course)
		if err != nil {
			return err
		}
		_, _, err = r.svc.RegisterStudent(ctx, a.Name, a.Age, course)
		return err

	case step.AddInstructor != nil:
		a := step.AddInstructor
		dept, err := r.department(ctx, a.Department)
		if err != nil {
			return err
		}
		_, err = r.svc.HireInstructor(ctx, a.Name, a.Age, a.Salary, dept)
		return err

	case step.Assign != nil:
		a := step.Assign
		ins, err := r.instructor(ctx, a.Instructor)
		if err != nil {
			return err
		}
		_, course, err := r.course(ctx, a.Department, a.Course)
		if err != nil {
			return err
		}
		_, err = r.svc.AssignInstructor(ctx, ins, course)
		return err

	case step.ListCourses != nil:
		dept, err := r.department(ctx, step.ListCourses.Department)
		if err != nil {
			return err
		}
		rows, err := r.svc.ListCourses(ctx, dept)
		if err != nil {
			return err
		}
		return r.printer.Table(report.Courses(step.ListCourses.Department, rows))

	case step.Roster != nil:
		course, err := r.anyCourse(ctx, step.Roster.Course)
		if err != nil {
			return err
		}
		rows, err := r.svc.CourseRoster(ctx, course)
		if err != nil {
			return err
		}
		return r.printer.Table(report.Roster(step.Roster.Course, rows))

	case step.Op == OpListStudents:
		rows, ok := r.svc.ListStudents(ctx)
		return r.printer.Table(report.Students(rows, ok))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, step.Op)
	}
}

// flushActivity prints the activity already delivered for the last step.
// Publishing is synchronous, so everything the step produced is buffered.
func (r *Runner) flushActivity() error {
	for {
		select {
		case ev, ok := <-r.activity:
			if !ok {
				return nil
			}
			if err := r.printer.Line(ev.Payload.Message); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (r *Runner) department(ctx context.Context, name string) (academy.DepartmentID, error) {
	id, ok := lookup(r.svc.Departments(ctx), name)
	if !ok {
		return 0, fmt.Errorf("%w: department %q", ErrUnknownReference, name)
	}
	return id, nil
}

func (r *Runner) course(ctx context.Context, deptName, courseName string) (academy.DepartmentID, academy.CourseID, error) {
	dept, err := r.department(ctx, deptName)
	if err != nil {
		return 0, 0, err
	}
	courses, err := r.svc.DepartmentCourses(ctx, dept)
	if err != nil {
		return 0, 0, err
	}
	id, ok := lookup(courses, courseName)
	if !ok {
		return 0, 0, fmt.Errorf("%w: course %q in %s", ErrUnknownReference, courseName, deptName)
	}
	return dept, id, nil
}

// anyCourse finds a course by name in any department.
func (r *Runner) anyCourse(ctx context.Context, name string) (academy.CourseID, error) {
	for _, d := range r.svc.Departments(ctx) {
		courses, err := r.svc.DepartmentCourses(ctx, d.Value)
		if err != nil {
			return 0, err
		}
		if id, ok := lookup(courses, name); ok {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: course %q", ErrUnknownReference, name)
}

func (r *Runner) instructor(ctx context.Context, name string) (academy.InstructorID, error) {
	id, ok := lookup(r.svc.Instructors(ctx), name)
	if !ok {
		return 0, fmt.Errorf("%w: instructor %q", ErrUnknownReference, name)
	}
	return id, nil
}

// lookup returns the value of the first option labelled name.
func lookup[T any](opts []academy.Option[T], name string) (T, bool) {
	for _, o := range opts {
		if o.Label == name {
			return o.Value, true
		}
	}
	var zero T
	return zero, false
}
