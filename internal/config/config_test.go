package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"."}, cfg.Project.Roots)
	assert.Equal(t, "docs", cfg.Site.OutputDir)
	assert.Equal(t, "Reference", cfg.Site.Title)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matdoc.yaml")
	yaml := `project:
  roots:
    - src
    - toolbox
  exclude:
    - legacy
site:
  title: My Toolbox
  output_dir: build/docs
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "toolbox"}, cfg.Project.Roots)
	assert.Equal(t, []string{"legacy"}, cfg.Project.Exclude)
	assert.Equal(t, "My Toolbox", cfg.Site.Title)
	assert.Equal(t, "build/docs", cfg.Site.OutputDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MATDOC_OUTPUT", "elsewhere")
	t.Setenv("MATDOC_TITLE", "Overridden")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.Site.OutputDir)
	assert.Equal(t, "Overridden", cfg.Site.Title)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: [not: valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
