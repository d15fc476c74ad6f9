// Package script runs a YAML file of registry operations without the TUI.
//
//	steps:
//	  - add_student: {name: Ada, age: 20, department: Computer Science, course: Introduction to Programming}
//	  - add_instructor: {name: Turing, age: 41, salary: 50000, department: Computer Science}
//	  - assign: {instructor: Turing, department: Computer Science, course: Introduction to Programming}
//	  - list_courses: {department: Computer Science}
//	  - roster: {course: Introduction to Programming}
//	  - list_students
//
// Departments, courses and instructors are referenced by name.
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script errors
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnknownReference = errors.New("unknown reference")
	ErrInvalidStep      = errors.New("invalid step")
)

// Operation names.
const (
	OpAddStudent    = "add_student"
	OpAddInstructor = "add_instructor"
	OpAssign        = "assign"
	OpListCourses   = "list_courses"
	OpListStudents  = "list_students"
	OpRoster        = "roster"
)

// Script is a parsed script file.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Exactly one of the pointer fields is set.
type Step struct {
	Op string

	AddStudent    *AddStudent
	AddInstructor *AddInstructor
	Assign        *Assign
	ListCourses   *ListCourses
	Roster        *Roster
}

// AddStudent creates a student and enrolls them in a course.
type AddStudent struct {
	Name       string `yaml:"name"`
	Age        int    `yaml:"age"`
	Department string `yaml:"department"`
	Course     string `yaml:"course"`
}

// AddInstructor creates an instructor and adds them to a department.
type AddInstructor struct {
	Name       string  `yaml:"name"`
	Age        int     `yaml:"age"`
	Salary     float64 `yaml:"salary"`
	Department string  `yaml:"department"`
}

// Assign links an instructor to a course of a department.
type Assign struct {
	Instructor string `yaml:"instructor"`
	Department string `yaml:"department"`
	Course     string `yaml:"course"`
}

// ListCourses prints a department's courses.
type ListCourses struct {
	Department string `yaml:"department"`
}

// Roster prints the students of a course.
type Roster struct {
	Course string `yaml:"course"`
}

// UnmarshalYAML accepts either a bare operation name or a single-key
// mapping from operation name to its arguments.
func (s *Step) UnmarshalYAML(n *yaml.Node) error {
	var args *yaml.Node
	switch n.Kind {
	case yaml.ScalarNode:
		s.Op = n.Value
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return fmt.Errorf("%w: line %d: a step has exactly one operation", ErrInvalidStep, n.Line)
		}
		s.Op = n.Content[0].Value
		args = n.Content[1]
	default:
		return fmt.Errorf("%w: line %d: expected an operation", ErrInvalidStep, n.Line)
	}

	decode := func(v any) error {
		if args == nil || args.Tag == "!!null" {
			return nil
		}
		if err := args.Decode(v); err != nil {
			return fmt.Errorf("%w: line %d: %s: %w", ErrInvalidStep, n.Line, s.Op, err)
		}
		return nil
	}

	switch s.Op {
	case OpAddStudent:
		s.AddStudent = &AddStudent{}
		return decode(s.AddStudent)
	case OpAddInstructor:
		s.AddInstructor = &AddInstructor{}
		return decode(s.AddInstructor)
	case OpAssign:
		s.Assign = &Assign{}
		return decode(s.Assign)
	case OpListCourses:
		s.ListCourses = &ListCourses{}
		return decode(s.ListCourses)
	case OpRoster:
		s.Roster = &Roster{}
		return decode(s.Roster)
	case OpListStudents:
		return nil
	default:
		return fmt.Errorf("%w: line %d: %q", ErrUnknownOperation, n.Line, s.Op)
	}
}

// Parse decodes a script document.
func Parse(data []byte) (Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, fmt.Errorf("parsing script: %w", err)
	}
	return sc, nil
}

// Load reads and parses the script at path.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return Script{}, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}
