package mcptools

import (
	"github.com/portfolioshweta98-sys/CodeLens/internal/analyze"
	"github.com/portfolioshweta98-sys/CodeLens/internal/export"
	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// AnalyzeRepoInput is the input for the analyze_repo MCP tool.
type AnalyzeRepoInput struct {
	RepoURL     string   `json:"repoUrl,omitempty" jsonschema:"git URL of the repository to clone and analyze"`
	RepoPath    string   `json:"repoPath,omitempty" jsonschema:"path to an already-checked-out repository (used when repoUrl is empty)"`
	ExcludeDirs []string `json:"excludeDirs,omitempty" jsonschema:"extra directory names to exclude from analysis"`
}

// AnalyzeRepoOutput is the result of the analyze_repo MCP tool.
type AnalyzeRepoOutput struct {
	Summary analyze.RunSummary `json:"summary"`
}

// GetGraphInput is the input for the get_graph MCP tool.
type GetGraphInput struct{}

// GetGraphOutput is the result of the get_graph MCP tool.
type GetGraphOutput struct {
	Graph export.Graph `json:"graph"`
}

// GetFileInput is the input for the get_file MCP tool.
type GetFileInput struct {
	Path string `json:"path" jsonschema:"repo-relative path of the file"`
}

// GetFileOutput is the result of the get_file MCP tool.
type GetFileOutput struct {
	File *graph.Inventory `json:"file"`
}

// SearchFilesInput is the input for the search_files MCP tool.
type SearchFilesInput struct {
	Query string `json:"query" jsonschema:"substring matched against file paths, declared names, summaries, and tags"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default: 10)"`
}

// SearchFilesOutput is the result of the search_files MCP tool.
type SearchFilesOutput struct {
	Files []graph.Inventory `json:"files"`
	Total int               `json:"total"`
}

// GetStatsInput is the input for the get_stats MCP tool.
type GetStatsInput struct{}

// GetStatsOutput is the result of the get_stats MCP tool.
type GetStatsOutput struct {
	Stats graph.GraphStats `json:"stats"`
}
