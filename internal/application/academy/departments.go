package academy

import (
	"context"
	"fmt"

	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/tracing"
)

// Departments returns one option per department in catalog order.
func (s *Service) Departments(ctx context.Context) []academy.Option[academy.DepartmentID] {
	_, span := s.start(ctx, "Departments")
	defer tracing.End(span, nil)
	return s.registry.DepartmentOptions()
}

// DepartmentCourses returns one option per course owned by dept.
func (s *Service) DepartmentCourses(ctx context.Context, dept academy.DepartmentID) ([]academy.Option[academy.CourseID], error) {
	_, span := s.start(ctx, "DepartmentCourses", deptAttr(dept))
	opts, err := s.registry.CourseOptions(dept)
	if err != nil {
		err = fmt.Errorf("department courses: %w", err)
	}
	tracing.End(span, err)
	return opts, err
}

// ListCourses projects dept's courses with live enrollment counts.
func (s *Service) ListCourses(ctx context.Context, dept academy.DepartmentID) ([]academy.CourseRow, error) {
	_, span := s.start(ctx, "ListCourses", deptAttr(dept))

	rows, err := s.registry.CoursesProjection(dept)
	if err != nil {
		err = fmt.Errorf("list courses: %w", err)
		log.ErrorErr(log.CatRegistry, "List courses failed", err, "department", dept)
	} else {
		span.SetAttributes(tracing.Int(tracing.AttrResultCount, len(rows)))
	}
	tracing.End(span, err)
	return rows, err
}

// Department returns a snapshot of dept.
func (s *Service) Department(ctx context.Context, dept academy.DepartmentID) (academy.Department, error) {
	_, span := s.start(ctx, "Department", deptAttr(dept))
	d, err := s.registry.Department(dept)
	tracing.End(span, err)
	return d, err
}
