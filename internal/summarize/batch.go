package summarize

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

// BatchSummary reports the outcome of one summarization pass.
type BatchSummary struct {
	Summarized int `json:"summarized"`
	Skipped    int `json:"skipped"` // already summarized in a prior pass
	Failed     int `json:"failed"`
}

// Run summarizes every stored inventory that does not yet carry a summary.
// Model calls fan out with at most concurrency in flight; per-file failures
// are counted and logged but do not abort the pass. Only store errors and
// context cancellation are fatal.
func Run(ctx context.Context, store graph.Store, client Client, concurrency int) (*BatchSummary, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	inventories, err := store.Inventories(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize: load inventories: %w", err)
	}

	summary := &BatchSummary{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, inv := range inventories {
		if inv.Summary != nil {
			summary.Skipped++
			continue
		}

		inv := inv
		g.Go(func() error {
			sum, err := client.Summarize(ctx, inv.Source)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprintf(os.Stderr, "summarize %s: %v\n", inv.Path, err)
				mu.Lock()
				summary.Failed++
				mu.Unlock()
				return nil
			}

			if err := store.SetSummary(ctx, inv.Path, *sum); err != nil {
				return fmt.Errorf("summarize: store summary for %s: %w", inv.Path, err)
			}
			mu.Lock()
			summary.Summarized++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
