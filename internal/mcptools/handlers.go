package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/portfolioshweta98-sys/CodeLens/internal/analyze"
	"github.com/portfolioshweta98-sys/CodeLens/internal/export"
	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
	"github.com/portfolioshweta98-sys/CodeLens/internal/ingest"
)

// Service holds the store, parser, and filter used by MCP tool handlers.
type Service struct {
	store     graph.Store
	parser    graph.Parser
	filter    *graph.Filter
	targetDir string // where analyze_repo clones repositories
}

// NewService creates a Service with the given collaborators.
func NewService(store graph.Store, parser graph.Parser, filter *graph.Filter, targetDir string) *Service {
	return &Service{store: store, parser: parser, filter: filter, targetDir: targetDir}
}

// AnalyzeRepo clones (or reuses) a repository, extracts inventories, and
// rebuilds the import graph. Returns the run summary.
func (s *Service) AnalyzeRepo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeRepoInput,
) (*mcp.CallToolResult, AnalyzeRepoOutput, error) {
	root := input.RepoPath
	if input.RepoURL != "" {
		cloned, err := ingest.Clone(ctx, input.RepoURL, s.targetDir)
		if err != nil {
			return nil, AnalyzeRepoOutput{}, err
		}
		root = cloned
	}
	if root == "" {
		return nil, AnalyzeRepoOutput{}, fmt.Errorf("either repoUrl or repoPath is required")
	}

	if err := s.store.InitSchema(ctx); err != nil {
		return nil, AnalyzeRepoOutput{}, fmt.Errorf("init schema: %w", err)
	}

	runner := &analyze.Runner{
		Store:       s.store,
		Parser:      s.parser,
		Filter:      s.filter,
		ExcludeDirs: input.ExcludeDirs,
	}
	summary, err := runner.Run(ctx, root)
	if err != nil {
		return nil, AnalyzeRepoOutput{}, err
	}
	return nil, AnalyzeRepoOutput{Summary: *summary}, nil
}

// GetGraph returns the basename-keyed visualization graph.
func (s *Service) GetGraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetGraphInput,
) (*mcp.CallToolResult, GetGraphOutput, error) {
	g, err := export.BuildGraph(ctx, s.store)
	if err != nil {
		return nil, GetGraphOutput{}, err
	}
	return nil, GetGraphOutput{Graph: *g}, nil
}

// GetFile returns the stored inventory for one file path.
func (s *Service) GetFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetFileInput,
) (*mcp.CallToolResult, GetFileOutput, error) {
	if input.Path == "" {
		return nil, GetFileOutput{}, fmt.Errorf("path is required")
	}
	inv, err := s.store.GetInventory(ctx, input.Path)
	if err != nil {
		return nil, GetFileOutput{}, err
	}
	return nil, GetFileOutput{File: inv}, nil
}

// SearchFiles returns inventories matching the query substring in their
// path, declared names, summary bullets, or tags.
func (s *Service) SearchFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFilesInput,
) (*mcp.CallToolResult, SearchFilesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	inventories, err := s.store.Inventories(ctx)
	if err != nil {
		return nil, SearchFilesOutput{}, err
	}

	query := strings.ToLower(input.Query)
	var matches []graph.Inventory
	for _, inv := range inventories {
		if matchesQuery(inv, query) {
			// Source bodies can be large; the search surface returns
			// metadata only.
			inv.Source = ""
			matches = append(matches, inv)
			if len(matches) >= limit {
				break
			}
		}
	}
	return nil, SearchFilesOutput{Files: matches, Total: len(matches)}, nil
}

// GetStats returns stored graph statistics.
func (s *Service) GetStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetStatsInput,
) (*mcp.CallToolResult, GetStatsOutput, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, GetStatsOutput{}, err
	}
	return nil, GetStatsOutput{Stats: *stats}, nil
}

// matchesQuery reports whether the query substring occurs anywhere in the
// inventory's searchable fields. An empty query matches everything.
func matchesQuery(inv graph.Inventory, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(inv.Path), query) {
		return true
	}
	for _, set := range [][]string{inv.Functions, inv.Classes} {
		for _, name := range set {
			if strings.Contains(strings.ToLower(name), query) {
				return true
			}
		}
	}
	if inv.Summary != nil {
		for _, set := range [][]string{inv.Summary.Bullets, inv.Summary.Tags, inv.Summary.Risks} {
			for _, s := range set {
				if strings.Contains(strings.ToLower(s), query) {
					return true
				}
			}
		}
	}
	return false
}
