package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/tracing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.True(t, cfg.UI.ShowActivity)
	require.False(t, cfg.UI.Plain)
	require.Equal(t, "dark", cfg.UI.HelpStyle)
	require.False(t, cfg.Tracing.Enabled, "tracing should be disabled by default")
	require.Equal(t, "file", cfg.Tracing.Exporter)
	require.Len(t, cfg.Catalog.Departments, 3)
	require.NoError(t, cfg.Validate())
}

func TestDefaultCatalogConfig_MatchesDomainSeed(t *testing.T) {
	require.Equal(t, academy.DefaultCatalog(), DefaultCatalogConfig().Domain())
}

func TestCatalogConfig_EmptyUsesDefault(t *testing.T) {
	require.Equal(t, academy.DefaultCatalog(), CatalogConfig{}.Domain())
}

func TestCatalogConfig_Domain(t *testing.T) {
	cc := CatalogConfig{Departments: []DepartmentConfig{
		{Name: "Chemistry", Courses: []CourseConfig{{ID: 10, Name: "Organic Chemistry"}}},
	}}

	got := cc.Domain()
	require.Len(t, got.Departments, 1)
	require.Equal(t, "Chemistry", got.Departments[0].Name)
	require.Equal(t, academy.CourseID(10), got.Departments[0].Courses[0].ID)
	require.Equal(t, "Organic Chemistry", got.Departments[0].Courses[0].Name)
}

func TestValidateCatalog_Empty(t *testing.T) {
	require.NoError(t, ValidateCatalog(CatalogConfig{}), "empty catalog should be valid (uses defaults)")
}

func TestValidateCatalog_MissingDepartmentName(t *testing.T) {
	err := ValidateCatalog(CatalogConfig{Departments: []DepartmentConfig{{Name: ""}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "catalog.departments 0: name is required")
}

func TestValidateCatalog_DuplicateDepartment(t *testing.T) {
	err := ValidateCatalog(CatalogConfig{Departments: []DepartmentConfig{{Name: "Physics"}, {Name: "Physics"}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate department")
}

func TestValidateCatalog_MissingCourseName(t *testing.T) {
	err := ValidateCatalog(CatalogConfig{Departments: []DepartmentConfig{
		{Name: "Physics", Courses: []CourseConfig{{ID: 5}}},
	}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "course 0: name is required")
}

func TestValidateCatalog_NonPositiveID(t *testing.T) {
	err := ValidateCatalog(CatalogConfig{Departments: []DepartmentConfig{
		{Name: "Physics", Courses: []CourseConfig{{ID: 0, Name: "Optics"}}},
	}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "id must be positive")
}

func TestValidateCatalog_DuplicateCourseAcrossDepartments(t *testing.T) {
	err := ValidateCatalog(CatalogConfig{Departments: []DepartmentConfig{
		{Name: "Physics", Courses: []CourseConfig{{ID: 5, Name: "Classical Mechanics"}}},
		{Name: "Mathematics", Courses: []CourseConfig{{ID: 5, Name: "Calculus"}}},
	}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "course id 5 already used in Physics")
}

func TestValidateTheme(t *testing.T) {
	require.NoError(t, ValidateTheme(ThemeConfig{}))
	require.NoError(t, ValidateTheme(ThemeConfig{Highlight: "#7D56F4", Subtle: "#fff"}))

	err := ValidateTheme(ThemeConfig{Error: "red"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "theme.error")
}

func TestValidateUI(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{}))
	require.NoError(t, ValidateUI(UIConfig{HelpStyle: "light"}))
	require.Error(t, ValidateUI(UIConfig{HelpStyle: "sepia"}))
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		cfg     tracing.Config
		wantErr string
	}{
		{name: "defaults", cfg: tracing.DefaultConfig()},
		{name: "sample rate too high", cfg: tracing.Config{SampleRate: 1.5}, wantErr: "sample_rate"},
		{name: "sample rate negative", cfg: tracing.Config{SampleRate: -0.1}, wantErr: "sample_rate"},
		{name: "unknown exporter", cfg: tracing.Config{Exporter: "zipkin"}, wantErr: "tracing.exporter"},
		{name: "file without path", cfg: tracing.Config{Enabled: true, Exporter: "file"}, wantErr: "file_path is required"},
		{name: "otlp without endpoint", cfg: tracing.Config{Enabled: true, Exporter: "otlp"}, wantErr: "otlp_endpoint is required"},
		{name: "disabled file without path", cfg: tracing.Config{Exporter: "file"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracing(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".campus", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestDefaultTracesFilePath(t *testing.T) {
	path := DefaultTracesFilePath()
	if path == "" {
		t.Skip("no home directory")
	}
	require.Equal(t, "traces.jsonl", filepath.Base(path))
	require.Contains(t, path, filepath.Join(".config", "campus"))
}
