package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoConfigFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.Output.Dir)
	assert.False(t, cfg.Scan.Recursive)
	assert.Empty(t, cfg.Scan.Exclude)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".flowgen")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `output:
  dir: manifests
scan:
  recursive: true
  exclude:
    - "*_test.go"
    - "vendor/**"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "manifests", cfg.Output.Dir)
	assert.True(t, cfg.Scan.Recursive)
	assert.Equal(t, []string{"*_test.go", "vendor/**"}, cfg.Scan.Exclude)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".flowgen")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("output:\n  dir: from-file\n"), 0o644))

	t.Setenv("FLOWGEN_OUTPUT_DIR", "from-env")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.Dir)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".flowgen")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("output: [unbalanced"), 0o644))

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
