package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEdges_EndToEnd(t *testing.T) {
	// Two-file repository: main imports the stdlib (suppressed) and a
	// sibling module. Exactly one edge comes out.
	inventories := []Inventory{
		{Path: "app/main.py", Imports: []string{"os", "utils"}},
		{Path: "app/utils.py"},
	}

	edges := BuildEdges(inventories, DefaultFilter())
	require.Len(t, edges, 1)
	assert.Equal(t, Edge{Source: "main.py", Target: "utils.py"}, edges[0])
}

func TestBuildEdges_ExternalSuppressed(t *testing.T) {
	inventories := []Inventory{
		{Path: "main.py", Imports: []string{"os", "json.decoder", "numpy"}},
		{Path: "json.py"}, // same name as a stdlib module: still suppressed
	}

	edges := BuildEdges(inventories, DefaultFilter())
	assert.Empty(t, edges)
}

func TestBuildEdges_NoSelfEdges(t *testing.T) {
	// A file importing itself by name produces no edge, and neither do two
	// same-named files in different directories (they share a basename key).
	inventories := []Inventory{
		{Path: "pkg/a.py", Imports: []string{"a"}},
		{Path: "first/x.py", Imports: []string{"second.x"}},
		{Path: "second/x.py"},
	}

	edges := BuildEdges(inventories, DefaultFilter())
	for _, e := range edges {
		assert.NotEqual(t, e.Source, e.Target)
	}
	assert.Empty(t, edges)
}

func TestBuildEdges_Deduplicated(t *testing.T) {
	// Two distinct refs resolving to the same target emit one edge.
	inventories := []Inventory{
		{Path: "app/main.py", Imports: []string{".utils", "utils"}},
		{Path: "app/utils.py"},
	}

	edges := BuildEdges(inventories, DefaultFilter())
	assert.Equal(t, []Edge{{Source: "main.py", Target: "utils.py"}}, edges)
}

func TestBuildEdges_Idempotent(t *testing.T) {
	inventories := []Inventory{
		{Path: "app/main.py", Imports: []string{".utils", ".config", "os"}},
		{Path: "app/utils.py", Imports: []string{".config"}},
		{Path: "app/config.py"},
	}
	filter := DefaultFilter()

	first := BuildEdges(inventories, filter)
	second := BuildEdges(inventories, filter)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestBuildEdges_UnresolvedRefSilent(t *testing.T) {
	inventories := []Inventory{
		{Path: "main.py", Imports: []string{"missing_module"}},
	}

	edges := BuildEdges(inventories, DefaultFilter())
	assert.Empty(t, edges)
}

func TestBuildEdges_BasenameCollapse(t *testing.T) {
	// Edges from same-named sources collapse onto one basename key.
	inventories := []Inventory{
		{Path: "a/worker.py", Imports: []string{"shared"}},
		{Path: "b/worker.py", Imports: []string{"shared"}},
		{Path: "lib/shared.py"},
	}

	edges := BuildEdges(inventories, DefaultFilter())
	assert.Equal(t, []Edge{{Source: "worker.py", Target: "shared.py"}}, edges)
}

func TestBuildEdges_EmptyInventorySet(t *testing.T) {
	assert.Empty(t, BuildEdges(nil, DefaultFilter()))
}
