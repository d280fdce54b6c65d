// Package graph holds the knowledge-graph core: per-file inventories, the
// import-to-file resolution engine, the edge builder, and the storage layer.
package graph

import "path"

// --- Models ---

// Inventory is the structured extraction of one source file: its declared
// functions and classes plus the raw import references as written. One
// Inventory exists per successfully parsed file; it is never partially
// updated (a parse failure discards the file instead).
type Inventory struct {
	Path      string   `json:"path"` // repo-relative, forward-slash normalized
	Functions []string `json:"functions"`
	Classes   []string `json:"classes"`
	Imports   []string `json:"imports"` // raw references, e.g. "pkg.sub", ".sibling"
	LOC       int      `json:"loc"`
	Source    string   `json:"source,omitempty"`

	// Summary is attached by the summarizer after the initial parse pass.
	Summary *Summary `json:"summary,omitempty"`
}

// Basename returns the file name component of the inventory path.
func (inv Inventory) Basename() string {
	return path.Base(inv.Path)
}

// Summary holds the LLM-generated analysis of one file.
type Summary struct {
	Bullets []string `json:"summary"`
	Tags    []string `json:"tags"`
	Risks   []string `json:"risks"`
}

// Edge is a directed "source imports target" relationship between two files.
//
// Endpoints are file basenames, not full repo-relative paths: downstream
// graph nodes are keyed by file name only, so two files sharing a name in
// different directories collapse to one node. This is documented behavior,
// not an accident; the resolver itself works in full paths and the collapse
// happens only in the edge builder.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// WebResult is one search hit returned for a library lookup.
type WebResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Age         string `json:"age,omitempty"`
}

// LibraryMetadata holds external search metadata for one declared dependency.
// A failed lookup is recorded with Error set rather than dropped, so repeated
// enrichment runs can tell "never fetched" from "fetch failed".
type LibraryMetadata struct {
	Name      string      `json:"library_name"`
	Query     string      `json:"query"`
	Results   []WebResult `json:"web_results"`
	Error     string      `json:"error,omitempty"`
	FetchedAt int64       `json:"timestamp"`
}

// GraphStats summarizes the stored knowledge graph.
type GraphStats struct {
	FileCount       int `json:"fileCount"`
	EdgeCount       int `json:"edgeCount"`
	SummarizedCount int `json:"summarizedCount"`
	LibraryCount    int `json:"libraryCount"`
}
