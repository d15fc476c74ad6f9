// Package academy implements the domain layer for the academic records model.
//
// This package follows the same rules as the other domain packages:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines entity types (Student, Instructor, Course, Department) and the
//     Registry aggregate that owns them
//   - Implements the link operations (enrollment, assignment, department
//     membership) and the read-side projections used for reporting
//   - Has no knowledge of prompting, rendering, logging or tracing
//
// # Storage Model
//
// The Registry is an arena: it owns every entity in flat slices and records
// relationships as typed keys (RollNumber, InstructorID, CourseID,
// DepartmentID). A link operation appends the key to both sides before it
// returns, so a one-sided link is never observable.
//
// Duplicate links are kept. Enrolling the same student in the same course
// twice records the course twice on the student and the student twice on the
// course.
//
// # Reading State
//
// Accessors such as Student, Course and Students return value snapshots whose
// link slices are copies. Mutating a snapshot never changes the Registry.
//
// Projections (CoursesProjection, ListStudents, CourseStudents) are computed
// from current state on every call and are never cached.
//
// # Import Aliasing
//
// The application service in internal/application/academy shares this
// package name. When importing both, alias the domain package:
//
//	import (
//	    domain "github.com/campusctl/campus/internal/domain/academy"
//	    "github.com/campusctl/campus/internal/application/academy"
//	)
package academy
