package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewServer creates an MCP server with all 5 knowledge-graph tools registered.
func NewServer(svc *Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "codelens",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_repo",
		Description: "Clone (or reuse) a repository and build its knowledge graph. Parses every Python file, stores per-file inventories, and resolves import statements into file-to-file edges.",
	}, svc.AnalyzeRepo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_graph",
		Description: "Return the import graph as nodes and edges keyed by file basename, colored by summary risk tags. Suitable for direct visualization.",
	}, svc.GetGraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_file",
		Description: "Return the stored inventory for one file: declared functions and classes, imports, line count, source, and AI summary if present.",
	}, svc.GetFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_files",
		Description: "Search stored files by substring match against paths, declared names, summary bullets, and tags. Returns inventories without source bodies.",
	}, svc.SearchFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_stats",
		Description: "Return counts of stored files, edges, summarized files, and enriched libraries.",
	}, svc.GetStats)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts an HTTP server exposing the MCP tools on the given address.
func RunHTTP(ctx context.Context, svc *Service, addr string) error {
	server := NewServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
