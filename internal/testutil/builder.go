// Package testutil builds registries for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusctl/campus/internal/domain/academy"
)

// Builder accumulates fixture data and applies it in the correct order.
type Builder struct {
	t           *testing.T
	catalog     academy.Catalog
	students    []studentData
	instructors []instructorData
}

// NewBuilder creates a builder seeded with the default catalog.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, catalog: academy.DefaultCatalog()}
}

// WithCatalog replaces the startup catalog.
func (b *Builder) WithCatalog(c academy.Catalog) *Builder {
	b.catalog = c
	return b
}

// WithStudent adds a student. Students get roll numbers in the order added.
func (b *Builder) WithStudent(name string, opts ...StudentOption) *Builder {
	s := defaultStudent(name)
	for _, opt := range opts {
		opt(&s)
	}
	b.students = append(b.students, s)
	return b
}

// WithInstructor adds an instructor. Instructors get ids in the order added.
func (b *Builder) WithInstructor(name string, opts ...InstructorOption) *Builder {
	i := defaultInstructor(name)
	for _, opt := range opts {
		opt(&i)
	}
	b.instructors = append(b.instructors, i)
	return b
}

// Build creates the registry: catalog, then students, then instructors.
func (b *Builder) Build() *academy.Registry {
	b.t.Helper()

	r, err := academy.NewSeededRegistry(b.catalog)
	require.NoError(b.t, err)

	for _, s := range b.students {
		student := r.CreateStudent(s.name, s.age)
		for _, c := range s.courses {
			require.NoError(b.t, r.Enroll(student.RollNumber, c))
		}
	}

	for _, i := range b.instructors {
		ins := r.CreateInstructor(i.name, i.age, i.salary)
		for _, name := range i.departments {
			d, err := r.FindDepartment(name)
			require.NoError(b.t, err)
			require.NoError(b.t, r.AddInstructor(d.ID, ins.ID))
		}
		for _, c := range i.courses {
			require.NoError(b.t, r.Assign(ins.ID, c))
		}
	}
	return r
}
