package export

import (
	"fmt"
	"strings"
)

// GenerateMermaid produces a Mermaid "graph TD" diagram of the import graph.
// Node IDs must be alphanumeric, so basenames map to generated N<i> IDs with
// the basename as the label.
func GenerateMermaid(g *Graph) string {
	nodeIDs := make(map[string]string, len(g.Nodes))
	nextID := 0
	getID := func(name string) string {
		if id, ok := nodeIDs[name]; ok {
			return id
		}
		id := fmt.Sprintf("N%d", nextID)
		nextID++
		nodeIDs[name] = id
		return id
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, n := range g.Nodes {
		sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", getID(n.ID), n.Label))
	}
	for _, e := range g.Edges {
		sb.WriteString(fmt.Sprintf("  %s --> %s\n", getID(e.From), getID(e.To)))
	}

	return sb.String()
}
