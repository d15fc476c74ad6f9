// Package config provides configuration types and defaults for campus.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/tracing"
)

// Config holds all configuration options for campus.
type Config struct {
	UI      UIConfig        `mapstructure:"ui"`
	Theme   ThemeConfig     `mapstructure:"theme"`
	Catalog CatalogConfig   `mapstructure:"catalog"`
	Tracing tracing.Config  `mapstructure:"tracing"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowActivity bool   `mapstructure:"show_activity"` // Show the activity panel under the menu
	Plain        bool   `mapstructure:"plain"`         // Disable colour in reports and the TUI
	HelpStyle    string `mapstructure:"help_style"`    // "dark" (default) or "light"
}

// ThemeConfig holds the colour tokens used by the TUI. Empty values keep the
// built-in palette.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// CatalogConfig lists the departments and courses created at startup.
type CatalogConfig struct {
	Departments []DepartmentConfig `mapstructure:"departments"`
}

// DepartmentConfig defines one department of the catalog.
type DepartmentConfig struct {
	Name    string         `mapstructure:"name"`
	Courses []CourseConfig `mapstructure:"courses"`
}

// CourseConfig defines one course of a department.
type CourseConfig struct {
	ID   int    `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DefaultTracesFilePath returns ~/.config/campus/traces/traces.jsonl, or an
// empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "campus", "traces", "traces.jsonl")
}

// DefaultCatalogConfig mirrors academy.DefaultCatalog in config form.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogFromDomain(academy.DefaultCatalog())
}

// CatalogFromDomain converts a domain catalog into its config form.
func CatalogFromDomain(c academy.Catalog) CatalogConfig {
	out := CatalogConfig{Departments: make([]DepartmentConfig, 0, len(c.Departments))}
	for _, d := range c.Departments {
		dc := DepartmentConfig{Name: d.Name, Courses: make([]CourseConfig, 0, len(d.Courses))}
		for _, cs := range d.Courses {
			dc.Courses = append(dc.Courses, CourseConfig{ID: int(cs.ID), Name: cs.Name})
		}
		out.Departments = append(out.Departments, dc)
	}
	return out
}

// Domain converts the catalog config into the seed the registry consumes.
// An empty catalog yields the default one.
func (c CatalogConfig) Domain() academy.Catalog {
	if len(c.Departments) == 0 {
		return academy.DefaultCatalog()
	}
	out := academy.Catalog{Departments: make([]academy.DepartmentSeed, 0, len(c.Departments))}
	for _, d := range c.Departments {
		ds := academy.DepartmentSeed{Name: d.Name, Courses: make([]academy.CourseSeed, 0, len(d.Courses))}
		for _, cc := range d.Courses {
			ds.Courses = append(ds.Courses, academy.CourseSeed{ID: academy.CourseID(cc.ID), Name: cc.Name})
		}
		out.Departments = append(out.Departments, ds)
	}
	return out
}

// ValidateCatalog checks catalog configuration for errors.
// Returns nil if the catalog is valid or empty (will use defaults).
func ValidateCatalog(c CatalogConfig) error {
	seenDept := make(map[string]bool, len(c.Departments))
	seenCourse := make(map[int]string)
	for i, d := range c.Departments {
		if d.Name == "" {
			return fmt.Errorf("catalog.departments %d: name is required", i)
		}
		if seenDept[d.Name] {
			return fmt.Errorf("catalog.departments %d: duplicate department %q", i, d.Name)
		}
		seenDept[d.Name] = true

		for j, course := range d.Courses {
			if course.Name == "" {
				return fmt.Errorf("catalog.departments %d (%s): course %d: name is required", i, d.Name, j)
			}
			if course.ID <= 0 {
				return fmt.Errorf("catalog.departments %d (%s): course %q: id must be positive, got %d", i, d.Name, course.Name, course.ID)
			}
			if owner, dup := seenCourse[course.ID]; dup {
				return fmt.Errorf("catalog.departments %d (%s): course id %d already used in %s", i, d.Name, course.ID, owner)
			}
			seenCourse[course.ID] = d.Name
		}
	}
	return nil
}

// ValidateTheme checks that every configured colour is a hex value.
func ValidateTheme(t ThemeConfig) error {
	for key, value := range map[string]string{
		"highlight": t.Highlight,
		"subtle":    t.Subtle,
		"error":     t.Error,
		"success":   t.Success,
	} {
		if value != "" && !hexColor.MatchString(value) {
			return fmt.Errorf("theme.%s must be a hex colour like \"#7D56F4\", got %q", key, value)
		}
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if t.Exporter != "" {
		switch t.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
		}
	}

	// Path requirements only matter when tracing is on.
	if t.Enabled {
		if t.Exporter == "file" && t.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if t.Exporter == "otlp" && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}
	return nil
}

// ValidateUI checks user interface options.
func ValidateUI(ui UIConfig) error {
	switch ui.HelpStyle {
	case "", "dark", "light", "notty":
		return nil
	default:
		return fmt.Errorf("ui.help_style must be \"dark\", \"light\", or \"notty\", got %q", ui.HelpStyle)
	}
}

// Validate runs every section validator.
func (c Config) Validate() error {
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if err := ValidateCatalog(c.Catalog); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tc := tracing.DefaultConfig()
	return Config{
		UI: UIConfig{
			ShowActivity: true,
			Plain:        false,
			HelpStyle:    "dark",
		},
		Theme:   ThemeConfig{},
		Catalog: DefaultCatalogConfig(),
		Tracing: tc,
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Campus Configuration

# UI settings
ui:
  show_activity: true   # Show the activity panel under the menu
  plain: false          # Disable colours (same as --plain)
  # help_style: dark    # Help screen rendering: "dark" (default), "light" or "notty"

# Theme colours (hex). Leave unset to keep the built-in palette.
# Changes are picked up while the app is running.
theme:
  # highlight: "#7D56F4"
  # subtle: "#696969"
  # error: "#FF8787"
  # success: "#73F59F"

# Departments and courses created at startup.
# Course ids must be unique across all departments.
catalog:
  departments:
    - name: Computer Science
      courses:
        - id: 1
          name: Introduction to Programming
        - id: 2
          name: Database Systems
    - name: Mathematics
      courses:
        - id: 3
          name: Calculus
        - id: 4
          name: Linear Algebra
    - name: Physics
      courses:
        - id: 5
          name: Classical Mechanics
        - id: 6
          name: Quantum Physics

# Feature flags
# flags:
#   activity-panel: true   # Activity log panel in the TUI
#   course-roster: true    # "List Students in Course" menu entry

# Distributed tracing
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/campus/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
