package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".codelens", "graph.db"), cfg.DatabasePath)
	assert.Equal(t, "repos", cfg.TargetDir)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.False(t, cfg.Verbose)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codelens.yml"), []byte(`
databasePath: /data/graph
targetDir: checkouts
excludeDirs: [generated, migrations]
extraExternalModules: [vendored_sdk]
concurrency: 8
verbose: true
`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/data/graph", cfg.DatabasePath)
	assert.Equal(t, "checkouts", cfg.TargetDir)
	assert.Equal(t, []string{"generated", "migrations"}, cfg.ExcludeDirs)
	assert.Equal(t, []string{"vendored_sdk"}, cfg.ExtraExternalModules)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
	// Unset keys still get defaults.
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codelens.yml"), []byte("{{not yaml"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CODELENS_TEST_KEY=hello\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CODELENS_TEST_KEY") })

	_, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "hello", os.Getenv("CODELENS_TEST_KEY"))
}
