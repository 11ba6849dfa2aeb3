package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
project:
  name: Flight Software
author:
  name: Ada
  email: ada@example.com
storage:
  backend: git
  path: ./flight-software
projects:
  - P1
  - P2
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Flight Software", c.Project.Name)
	assert.Equal(t, "Ada", c.Author.Name)
	assert.Equal(t, BackendGit, c.Storage.Backend)
	assert.Equal(t, "./flight-software", c.Storage.Path)
	assert.Equal(t, []string{"P1", "P2"}, c.Projects)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Default("./project")
	require.NoError(t, c.Validate())

	c.Storage.Backend = "postgres"
	assert.ErrorContains(t, c.Validate(), "unknown storage backend")

	c = Default("./project")
	c.Storage.Backend = BackendSQLite
	require.NoError(t, c.Validate())

	c.Storage.Path = ""
	assert.ErrorContains(t, c.Validate(), "storage path is required")
}

func TestSaveRoundTrip(t *testing.T) {
	c := Default("./project")
	c.Project.Name = "Flight Software"
	c.Projects = []string{"P1"}

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, c.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}
