package academy

import "fmt"

// CourseSeed describes a course created at startup.
type CourseSeed struct {
	ID   CourseID
	Name string
}

// DepartmentSeed describes a department and the courses it owns at startup.
type DepartmentSeed struct {
	Name    string
	Courses []CourseSeed
}

// Catalog is the startup configuration of departments and courses.
type Catalog struct {
	Departments []DepartmentSeed
}

// DefaultCatalog returns the reference configuration: three departments with
// two courses each, ids 1 through 6.
func DefaultCatalog() Catalog {
	return Catalog{
		Departments: []DepartmentSeed{
			{
				Name: "Computer Science",
				Courses: []CourseSeed{
					{ID: 1, Name: "Introduction to Programming"},
					{ID: 2, Name: "Database Systems"},
				},
			},
			{
				Name: "Mathematics",
				Courses: []CourseSeed{
					{ID: 3, Name: "Calculus"},
					{ID: 4, Name: "Linear Algebra"},
				},
			},
			{
				Name: "Physics",
				Courses: []CourseSeed{
					{ID: 5, Name: "Classical Mechanics"},
					{ID: 6, Name: "Quantum Physics"},
				},
			},
		},
	}
}

// NewSeededRegistry creates a registry populated with the catalog.
func NewSeededRegistry(catalog Catalog) (*Registry, error) {
	r := NewRegistry()
	for _, ds := range catalog.Departments {
		dept := r.AddDepartment(ds.Name)
		for _, cs := range ds.Courses {
			if err := r.AddCourse(dept, cs.ID, cs.Name); err != nil {
				return nil, fmt.Errorf("seeding %s: %w", ds.Name, err)
			}
		}
	}
	return r, nil
}
