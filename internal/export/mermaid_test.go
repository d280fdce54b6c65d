package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	g := &Graph{
		Nodes: []Node{
			{ID: "main.py", Label: "main.py"},
			{ID: "utils.py", Label: "utils.py"},
		},
		Edges: []GraphEdge{{From: "main.py", To: "utils.py"}},
	}

	out := GenerateMermaid(g)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `N0["main.py"]`)
	assert.Contains(t, out, `N1["utils.py"]`)
	assert.Contains(t, out, "N0 --> N1")
}

func TestGenerateMermaid_Empty(t *testing.T) {
	assert.Equal(t, "graph TD\n", GenerateMermaid(&Graph{}))
}
