package analyze

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

// writeRepo materializes the given path->source map under a temp directory.
func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, src := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(src), 0o644))
	}
	return root
}

func newRunner(store graph.Store) *Runner {
	return &Runner{
		Store:  store,
		Parser: graph.NewTreeSitterParser(),
		Filter: graph.DefaultFilter(),
	}
}

func TestRun_TwoFileRepo(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"app/main.py":  "import os\nimport utils\n",
		"app/utils.py": "def helper():\n    pass\n",
	})

	store := graph.NewMemStore()
	summary, err := newRunner(store).Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, summary.Edges)

	edges, err := store.Edges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{Source: "main.py", Target: "utils.py"}}, edges)

	inv, err := store.GetInventory(context.Background(), "app/utils.py")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, []string{"helper"}, inv.Functions)
}

func TestRun_BrokenFileCountedNotFatal(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"good.py": "import os\n",
		"bad.py":  "def broken(:\n",
	})

	store := graph.NewMemStore()
	summary, err := newRunner(store).Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Failed)

	inv, err := store.GetInventory(context.Background(), "bad.py")
	require.NoError(t, err)
	assert.Nil(t, inv, "broken files are not stored")
}

func TestRun_NothingProcessableIsFatal(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"only.py": "def broken(:\n",
	})

	_, err := newRunner(graph.NewMemStore()).Run(context.Background(), root)
	assert.Error(t, err)
}

func TestRun_EmptyRepo(t *testing.T) {
	root := t.TempDir()

	summary, err := newRunner(graph.NewMemStore()).Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 0, summary.Edges)
}

func TestRun_Reanalysis(t *testing.T) {
	// A second run over the same tree replaces inventories and rebuilds the
	// edge set without duplication.
	root := writeRepo(t, map[string]string{
		"app/main.py":  "import utils\n",
		"app/utils.py": "",
	})

	store := graph.NewMemStore()
	runner := newRunner(store)
	ctx := context.Background()

	_, err := runner.Run(ctx, root)
	require.NoError(t, err)
	summary, err := runner.Run(ctx, root)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Edges)

	edges, err := store.Edges(ctx)
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestRebuildEdges_EmptyStoreFails(t *testing.T) {
	runner := newRunner(graph.NewMemStore())

	_, err := runner.RebuildEdges(context.Background())
	assert.ErrorContains(t, err, "no inventories")
}

func TestRebuildEdges_FromPriorInventories(t *testing.T) {
	// Edge rebuilding is a pure function of the stored inventory set; no
	// file system access is needed.
	store := graph.NewMemStore()
	ctx := context.Background()
	require.NoError(t, store.PutInventory(ctx, graph.Inventory{
		Path: "a.py", Imports: []string{"b"},
	}))
	require.NoError(t, store.PutInventory(ctx, graph.Inventory{Path: "b.py"}))

	n, err := newRunner(store).RebuildEdges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
