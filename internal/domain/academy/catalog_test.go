package academy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSeededRegistry_DefaultCatalog(t *testing.T) {
	r, err := NewSeededRegistry(DefaultCatalog())
	require.NoError(t, err)

	want := map[string][]CourseRow{
		"Computer Science": {
			{ID: 1, Name: "Introduction to Programming"},
			{ID: 2, Name: "Database Systems"},
		},
		"Mathematics": {
			{ID: 3, Name: "Calculus"},
			{ID: 4, Name: "Linear Algebra"},
		},
		"Physics": {
			{ID: 5, Name: "Classical Mechanics"},
			{ID: 6, Name: "Quantum Physics"},
		},
	}

	opts := r.DepartmentOptions()
	require.Len(t, opts, 3)
	require.Equal(t, "Computer Science", opts[0].Label)
	require.Equal(t, "Mathematics", opts[1].Label)
	require.Equal(t, "Physics", opts[2].Label)

	for _, opt := range opts {
		rows, err := r.CoursesProjection(opt.Value)
		require.NoError(t, err)
		require.Equal(t, want[opt.Label], rows, "courses of %s", opt.Label)
	}

	require.Empty(t, r.Students())
	require.Empty(t, r.Instructors())
	require.Equal(t, RollNumber(1), r.NextRollNumber())
}

func TestNewSeededRegistry_DuplicateCourseID(t *testing.T) {
	catalog := Catalog{Departments: []DepartmentSeed{
		{Name: "Computer Science", Courses: []CourseSeed{{ID: 1, Name: "Introduction to Programming"}}},
		{Name: "Mathematics", Courses: []CourseSeed{{ID: 1, Name: "Calculus"}}},
	}}

	_, err := NewSeededRegistry(catalog)

	require.ErrorIs(t, err, ErrDuplicateCourse)
	require.Contains(t, err.Error(), "Mathematics")
}

func TestDefaultCatalog_ReturnsFreshCopy(t *testing.T) {
	c := DefaultCatalog()
	c.Departments[0].Courses[0].Name = "Changed"

	require.Equal(t, "Introduction to Programming", DefaultCatalog().Departments[0].Courses[0].Name)
}
