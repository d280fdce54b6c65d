package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func TestDiscover_SortedPythonFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"z_mod.py":        "",
		"app/main.py":     "",
		"app/utils.py":    "",
		"README.md":       "",
		"scripts/run.sh":  "",
		"app/data.json":   "",
	})

	files, err := Discover(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"app/main.py", "app/utils.py", "z_mod.py"}, files)
}

func TestDiscover_SkipsVendoredDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.py":                  "",
		".git/hook.py":             "",
		"__pycache__/cached.py":    "",
		"venv/lib/site.py":         "",
		"node_modules/pkg/gen.py":  "",
		"build/out.py":             "",
	})

	files, err := Discover(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.py"}, files)
}

func TestDiscover_ExtraDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.py":           "",
		"generated/gen.py":  "",
	})

	files, err := Discover(root, []string{"generated"})
	require.NoError(t, err)
	assert.Equal(t, []string{"main.py"}, files)
}

func TestDiscover_HonorsGitignore(t *testing.T) {
	root := writeTree(t, map[string]string{
		".gitignore":     "ignored/\nsecret.py\n",
		"main.py":        "",
		"secret.py":      "",
		"ignored/a.py":   "",
	})

	files, err := Discover(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.py"}, files)
}

func TestDiscover_EmptyTree(t *testing.T) {
	files, err := Discover(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
