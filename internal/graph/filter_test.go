package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_DefaultSets(t *testing.T) {
	f := DefaultFilter()

	assert.True(t, f.External("os"))
	assert.True(t, f.External("json"))
	assert.True(t, f.External("numpy"))
	assert.True(t, f.External("requests"))
	assert.False(t, f.External("myapp"))
	assert.False(t, f.External(""))
}

func TestFilter_ExtraRoots(t *testing.T) {
	f := DefaultFilter("internal_vendor", "")

	assert.True(t, f.External("internal_vendor"))
	assert.False(t, f.External(""), "empty extra roots are ignored")
}

func TestFilter_InjectedSets(t *testing.T) {
	f := NewFilter([]string{"os"}, []string{"numpy"})

	assert.True(t, f.External("os"))
	assert.True(t, f.External("numpy"))
	assert.False(t, f.External("json"), "only the injected roots are external")
}

func TestRootSegment(t *testing.T) {
	assert.Equal(t, "pkg", RootSegment("pkg.sub.mod"))
	assert.Equal(t, "pkg", RootSegment("pkg"))
	assert.Equal(t, "", RootSegment(".sibling"), "relative refs have an empty root")
	assert.Equal(t, "", RootSegment(""))
}
