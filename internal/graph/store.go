package graph

import (
	"context"
	"io"
)

// Store is the persistence boundary for the knowledge graph.
// Implementations: KuzuStore (production), MemStore (testing).
//
// Inventories are written once per file and never partially updated; the
// summarizer attaches its result as a whole. Edges are always replaced as a
// full set; the computation is pure and rerunnable, so there is no merge.
type Store interface {
	io.Closer

	// Schema setup, called once before any data is inserted.
	InitSchema(ctx context.Context) error

	// Inventory operations.
	PutInventory(ctx context.Context, inv Inventory) error
	GetInventory(ctx context.Context, path string) (*Inventory, error)
	Inventories(ctx context.Context) ([]Inventory, error)
	SetSummary(ctx context.Context, path string, summary Summary) error

	// Edge operations. ReplaceEdges clears the prior edge set for the
	// repository and bulk-inserts the new one.
	ReplaceEdges(ctx context.Context, edges []Edge) error
	Edges(ctx context.Context) ([]Edge, error)

	// Library metadata operations (upsert by library name).
	PutLibrary(ctx context.Context, lib LibraryMetadata) error
	Libraries(ctx context.Context) ([]LibraryMetadata, error)

	// Stats.
	Stats(ctx context.Context) (*GraphStats, error)
}
