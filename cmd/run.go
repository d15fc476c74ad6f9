package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/report"
	"github.com/campusctl/campus/internal/script"
)

var runVerbose bool

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Run a script of operations without the TUI",
	Long: `Run a YAML script of operations against a freshly seeded catalog and
print the activity and reports the interactive menu would show.

Script format:
  steps:
    - add_student: {name: Ada, age: 20, department: Computer Science, course: Introduction to Programming}
    - add_instructor: {name: Turing, age: 41, salary: 50000, department: Computer Science}
    - assign: {instructor: Turing, department: Computer Science, course: Introduction to Programming}
    - list_courses: {department: Computer Science}
    - roster: {course: Introduction to Programming}
    - list_students

Departments, courses and instructors are referenced by name. The first
failing step stops the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "log every operation to stderr")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sc, err := script.Load(args[0])
	if err != nil {
		return err
	}

	if runVerbose {
		defer log.InitWriter(cmd.ErrOrStderr())()
	} else {
		cleanupLog, err := initLogging(false)
		if err != nil {
			return err
		}
		defer cleanupLog()
	}

	svc, cleanupSvc, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanupSvc()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	runner := script.NewRunner(ctx, svc, report.NewPrinter(cmd.OutOrStdout(), cfg.UI.Plain))
	log.Info(log.CatScript, "Running script", "path", args[0], "steps", len(sc.Steps))
	return runner.Run(ctx, sc)
}
