package main

import (
	"context"
	"fmt"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

func runStats(ctx context.Context, store graph.Store) error {
	stats, err := store.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("files:      %d\n", stats.FileCount)
	fmt.Printf("edges:      %d\n", stats.EdgeCount)
	fmt.Printf("summarized: %d\n", stats.SummarizedCount)
	fmt.Printf("libraries:  %d\n", stats.LibraryCount)
	return nil
}
