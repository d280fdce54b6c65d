package graph

import "path"

// BuildEdges drives the resolver over every inventory/import pair and emits
// the canonical edge list. It is pure: the result is a function of the
// inventory set and the filter, and persisting it is the caller's concern.
//
// External references are skipped before resolution. Successful resolutions
// where the target is a different file become basename-keyed edges; a
// (source, target) basename pair is emitted at most once per invocation, in
// insertion order (inventories outer, imports inner).
func BuildEdges(inventories []Inventory, filter *Filter) []Edge {
	paths := make([]string, 0, len(inventories))
	for _, inv := range inventories {
		if inv.Path != "" {
			paths = append(paths, inv.Path)
		}
	}
	resolver := NewResolver(paths)

	var edges []Edge
	seen := make(map[Edge]bool)

	for _, inv := range inventories {
		if inv.Path == "" {
			continue
		}
		for _, ref := range inv.Imports {
			if filter.External(RootSegment(ref)) {
				continue
			}

			target, ok := resolver.Resolve(ref, inv.Path)
			if !ok || target == inv.Path {
				continue
			}

			edge := Edge{
				Source: path.Base(inv.Path),
				Target: path.Base(target),
			}
			if edge.Source == edge.Target || seen[edge] {
				continue
			}
			seen[edge] = true
			edges = append(edges, edge)
		}
	}

	return edges
}
