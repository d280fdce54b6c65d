package graph

import "strings"

// Filter classifies import references as external (standard library or
// third-party, skip resolution) versus internal (attempt resolution). It is
// a heuristic membership test over two static sets, injected at construction
// so tests and embedders can substitute minimal or extended sets. An internal
// file that happens to share a name with a listed module is misclassified;
// that false negative is an accepted limitation.
type Filter struct {
	stdlib     map[string]struct{}
	thirdParty map[string]struct{}
}

// stdlibRoots are well-known standard library module roots.
var stdlibRoots = []string{
	"sys", "os", "json", "datetime", "collections", "itertools", "functools",
	"typing", "abc", "pathlib", "hashlib", "uuid", "random", "math",
	"re", "string", "io", "pickle", "copy", "enum", "dataclasses",
}

// thirdPartyRoots are common third-party package roots. Not exhaustive.
var thirdPartyRoots = []string{
	"numpy", "pandas", "requests", "flask", "django", "pymongo", "sqlalchemy",
	"pytest", "unittest", "setuptools", "wheel", "pip", "conda",
}

// NewFilter builds a Filter from explicit stdlib and third-party root sets.
func NewFilter(stdlib, thirdParty []string) *Filter {
	f := &Filter{
		stdlib:     make(map[string]struct{}, len(stdlib)),
		thirdParty: make(map[string]struct{}, len(thirdParty)),
	}
	for _, m := range stdlib {
		f.stdlib[m] = struct{}{}
	}
	for _, m := range thirdParty {
		f.thirdParty[m] = struct{}{}
	}
	return f
}

// DefaultFilter returns a Filter loaded with the maintained default sets,
// plus any extra roots (from project configuration).
func DefaultFilter(extra ...string) *Filter {
	f := NewFilter(stdlibRoots, thirdPartyRoots)
	for _, m := range extra {
		if m != "" {
			f.thirdParty[m] = struct{}{}
		}
	}
	return f
}

// External reports whether the root segment names a standard library or
// known third-party module.
func (f *Filter) External(root string) bool {
	if _, ok := f.stdlib[root]; ok {
		return true
	}
	_, ok := f.thirdParty[root]
	return ok
}

// RootSegment returns the first dot-separated segment of an import
// reference: "pkg" from "pkg.sub.mod". Relative references (leading dot)
// have an empty root segment and are never external.
func RootSegment(ref string) string {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return ref[:i]
	}
	return ref
}
