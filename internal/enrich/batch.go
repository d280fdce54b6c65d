package enrich

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

// Searcher is the lookup surface Run depends on; *BraveClient satisfies it.
type Searcher interface {
	Lookup(ctx context.Context, library string) (*graph.LibraryMetadata, error)
}

// BatchSummary reports the outcome of one enrichment pass.
type BatchSummary struct {
	Fetched int `json:"fetched"`
	Skipped int `json:"skipped"` // already fetched successfully in a prior pass
	Failed  int `json:"failed"`
}

// Run looks up every library from requirementsPath and upserts the results.
// Libraries with stored results from a prior pass are skipped; failed
// lookups are recorded with an error marker so later passes retry them.
// delay spaces out API calls (the search API is rate limited).
func Run(ctx context.Context, store graph.Store, searcher Searcher, requirementsPath string, delay time.Duration) (*BatchSummary, error) {
	f, err := os.Open(requirementsPath)
	if err != nil {
		return nil, fmt.Errorf("enrich: open %s: %w", requirementsPath, err)
	}
	defer f.Close()

	libraries, err := ParseRequirements(f)
	if err != nil {
		return nil, fmt.Errorf("enrich: parse %s: %w", requirementsPath, err)
	}

	existing, err := store.Libraries(ctx)
	if err != nil {
		return nil, fmt.Errorf("enrich: load stored libraries: %w", err)
	}
	fetched := make(map[string]bool, len(existing))
	for _, lib := range existing {
		fetched[lib.Name] = lib.Error == ""
	}

	summary := &BatchSummary{}
	for i, name := range libraries {
		if fetched[name] {
			summary.Skipped++
			continue
		}
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		meta, err := searcher.Lookup(ctx, name)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			fmt.Fprintf(os.Stderr, "enrich %s: %v\n", name, err)
			meta = &graph.LibraryMetadata{
				Name:      name,
				Error:     err.Error(),
				FetchedAt: time.Now().Unix(),
			}
			summary.Failed++
		} else {
			summary.Fetched++
		}

		if err := store.PutLibrary(ctx, *meta); err != nil {
			return nil, fmt.Errorf("enrich: store %s: %w", name, err)
		}
	}
	return summary, nil
}
