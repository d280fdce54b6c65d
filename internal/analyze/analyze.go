// Package analyze runs the batch pipeline: discover source files, extract
// inventories, persist them, and rebuild the import edge set.
package analyze

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
	"github.com/portfolioshweta98-sys/CodeLens/internal/ingest"
)

// RunSummary is the user-visible outcome of one analysis run.
type RunSummary struct {
	Processed int `json:"processed"` // inventories extracted and stored
	Skipped   int `json:"skipped"`   // files that could not be read
	Failed    int `json:"failed"`    // files that could not be decoded or parsed
	Edges     int `json:"edges"`     // edges in the rebuilt set
}

// Runner wires the extractor, filter, and store into the batch pipeline.
// The core computation is synchronous and single-threaded: all inventories
// are extracted and stored before edge building starts, and the edge set is
// a pure function of the stored inventories.
type Runner struct {
	Store       graph.Store
	Parser      graph.Parser
	Filter      *graph.Filter
	ExcludeDirs []string
	Verbose     bool
}

// Run analyzes the repository at root: every discovered source file is
// parsed into an inventory and stored, then the edge set is rebuilt from the
// full stored inventory set. Per-file failures are logged and counted but do
// not abort the batch; only store errors and a fully unreadable repository
// are fatal.
func (r *Runner) Run(ctx context.Context, root string) (*RunSummary, error) {
	files, err := ingest.Discover(root, r.ExcludeDirs)
	if err != nil {
		return nil, fmt.Errorf("discover source files: %w", err)
	}

	summary := &RunSummary{}
	if len(files) == 0 {
		return summary, nil
	}

	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			summary.Skipped++
			if r.Verbose {
				fmt.Fprintf(os.Stderr, "skip %s: %v\n", rel, err)
			}
			continue
		}

		inv, err := r.Parser.Parse(ctx, rel, data)
		if err != nil {
			summary.Failed++
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", rel, err)
			continue
		}

		if err := r.Store.PutInventory(ctx, *inv); err != nil {
			return nil, fmt.Errorf("store inventory %s: %w", rel, err)
		}
		summary.Processed++
	}

	if summary.Processed == 0 && len(files) > 0 {
		return nil, fmt.Errorf("no files could be processed (%d skipped, %d failed)",
			summary.Skipped, summary.Failed)
	}

	edges, err := r.RebuildEdges(ctx)
	if err != nil {
		return nil, err
	}
	summary.Edges = edges

	return summary, nil
}

// RebuildEdges recomputes the edge set from all stored inventories (prior
// runs included) and replaces the stored edges wholesale. It does not
// re-parse any file.
func (r *Runner) RebuildEdges(ctx context.Context) (int, error) {
	inventories, err := r.Store.Inventories(ctx)
	if err != nil {
		return 0, fmt.Errorf("load inventories: %w", err)
	}
	if len(inventories) == 0 {
		return 0, fmt.Errorf("no inventories stored; run analyze first")
	}

	edges := graph.BuildEdges(inventories, r.Filter)
	if err := r.Store.ReplaceEdges(ctx, edges); err != nil {
		return 0, fmt.Errorf("replace edges: %w", err)
	}
	return len(edges), nil
}
