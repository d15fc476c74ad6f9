package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type savedFile struct {
	UI      map[string]any `yaml:"ui"`
	Catalog struct {
		Departments []struct {
			Name    string `yaml:"name"`
			Courses []struct {
				ID   int    `yaml:"id"`
				Name string `yaml:"name"`
			} `yaml:"courses"`
		} `yaml:"departments"`
	} `yaml:"catalog"`
}

func readSaved(t *testing.T, path string) savedFile {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out savedFile
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func TestSaveCatalog_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveCatalog(path, DefaultCatalogConfig()))

	saved := readSaved(t, path)
	require.Len(t, saved.Catalog.Departments, 3)
	require.Equal(t, "Computer Science", saved.Catalog.Departments[0].Name)
	require.Equal(t, 2, saved.Catalog.Departments[0].Courses[1].ID)
	require.Equal(t, "Database Systems", saved.Catalog.Departments[0].Courses[1].Name)
}

func TestSaveCatalog_ReplacesSectionAndKeepsOthers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	catalog := CatalogConfig{Departments: []DepartmentConfig{
		{Name: "Chemistry", Courses: []CourseConfig{{ID: 7, Name: "Organic Chemistry"}}},
	}}
	require.NoError(t, SaveCatalog(path, catalog))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Campus Configuration", "leading comment should survive")

	saved := readSaved(t, path)
	require.Equal(t, true, saved.UI["show_activity"])
	require.Len(t, saved.Catalog.Departments, 1)
	require.Equal(t, "Chemistry", saved.Catalog.Departments[0].Name)
	require.Equal(t, 7, saved.Catalog.Departments[0].Courses[0].ID)
}

func TestSaveCatalog_AppendsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  plain: true\n"), 0o600))

	require.NoError(t, SaveCatalog(path, DefaultCatalogConfig()))

	saved := readSaved(t, path)
	require.Equal(t, true, saved.UI["plain"])
	require.Len(t, saved.Catalog.Departments, 3)
}

func TestSaveCatalog_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveCatalog(path, CatalogConfig{Departments: []DepartmentConfig{{Name: ""}}})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "invalid catalog must not be written")
}
