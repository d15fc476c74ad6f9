package testutil

import (
	"testing"

	"github.com/campusctl/campus/internal/domain/academy"
)

// Seeded returns a registry holding only the default catalog.
func Seeded(t *testing.T) *academy.Registry {
	t.Helper()
	return NewBuilder(t).Build()
}

// Populated returns the default catalog with a small cast:
//   - Ada (roll 1) in Introduction to Programming and Calculus
//   - Grace (roll 2) in Database Systems
//   - Alan (roll 3) with no courses
//   - Turing (instructor 1) in Computer Science teaching course 1
//   - Noether (instructor 2) in Mathematics teaching courses 3 and 4
func Populated(t *testing.T) *academy.Registry {
	t.Helper()
	return NewBuilder(t).
		WithStudent("Ada", StudentAge(20), EnrolledIn(1, 3)).
		WithStudent("Grace", StudentAge(22), EnrolledIn(2)).
		WithStudent("Alan", StudentAge(19)).
		WithInstructor("Turing", MemberOf("Computer Science"), Teaches(1)).
		WithInstructor("Noether", Salary(61000), MemberOf("Mathematics"), Teaches(3, 4)).
		Build()
}
