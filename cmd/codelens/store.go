//go:build cgo

package main

import (
	"fmt"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

func openStore(dbPath string) (graph.Store, error) {
	store, err := graph.NewKuzuFileStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open graph database: %w", err)
	}
	return store, nil
}
