// Package export renders the stored knowledge graph for external consumers:
// a JSON document for the interactive visualization and a Mermaid diagram.
package export

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

// Node is one visualization node, keyed by file basename.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Size  int    `json:"size"`
}

// GraphEdge is one visualization edge between basename node IDs.
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the document the visualization consumes.
type Graph struct {
	Nodes []Node      `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Node colors: red for files with recorded risks, gold for API/database
// logic, green for everything else.
const (
	colorRisky   = "#FF4444"
	colorService = "#FFD700"
	colorPlain   = "#44FF44"
)

// BuildGraph assembles the visualization document from the store. Nodes are
// keyed by basename, so same-named files in different directories collapse
// to one node; edges referencing unknown nodes are dropped.
func BuildGraph(ctx context.Context, store graph.Store) (*Graph, error) {
	inventories, err := store.Inventories(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: load inventories: %w", err)
	}
	edges, err := store.Edges(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: load edges: %w", err)
	}

	byName := make(map[string]graph.Inventory, len(inventories))
	for _, inv := range inventories {
		byName[inv.Basename()] = inv
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := &Graph{}
	for _, name := range names {
		out.Nodes = append(out.Nodes, Node{
			ID:    name,
			Label: name,
			Color: nodeColor(byName[name].Summary),
			Size:  20,
		})
	}

	seen := make(map[graph.Edge]bool)
	for _, e := range edges {
		if _, ok := byName[e.Source]; !ok {
			continue
		}
		if _, ok := byName[e.Target]; !ok {
			continue
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		out.Edges = append(out.Edges, GraphEdge{From: e.Source, To: e.Target})
	}

	return out, nil
}

// nodeColor maps a file's summary to its display color.
func nodeColor(sum *graph.Summary) string {
	if sum == nil {
		return colorPlain
	}
	if len(sum.Risks) > 0 {
		return colorRisky
	}
	for _, tag := range sum.Tags {
		switch strings.ToLower(tag) {
		case "api", "database", "db":
			return colorService
		}
	}
	return colorPlain
}
