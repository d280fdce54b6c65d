package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/portfolioshweta98-sys/CodeLens/internal/config"
	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
	"github.com/portfolioshweta98-sys/CodeLens/internal/mcptools"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Verbose   bool
	ServeMCP  bool
	HTTPAddr  string
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("codelens", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory holding codelens.yml and .env")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server on stdio")
	fs.StringVar(&flags.HTTPAddr, "http", "", "run as MCP server on the given HTTP address")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: codelens [flags] <command> [args]\n\n")
		fmt.Fprintf(fs.Output(), "commands:\n")
		fmt.Fprintf(fs.Output(), "  analyze    build the knowledge graph from a repository\n")
		fmt.Fprintf(fs.Output(), "  summarize  generate AI summaries for stored files\n")
		fmt.Fprintf(fs.Output(), "  enrich     fetch web metadata for requirements.txt libraries\n")
		fmt.Fprintf(fs.Output(), "  export     print the graph as JSON or a Mermaid diagram\n")
		fmt.Fprintf(fs.Output(), "  stats      print stored graph statistics\n\n")
		fmt.Fprintf(fs.Output(), "flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.Verbose {
		cfg.Verbose = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.ServeMCP || flags.HTTPAddr != "" {
		return runServe(ctx, cfg, flags)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("no command given")
	}

	store, err := openStore(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	switch rest[0] {
	case "analyze":
		return runAnalyze(ctx, cfg, store, rest[1:])
	case "summarize":
		return runSummarize(ctx, cfg, store)
	case "enrich":
		return runEnrich(ctx, store, rest[1:])
	case "export":
		return runExport(ctx, store, rest[1:])
	case "stats":
		return runStats(ctx, store)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

// runServe exposes the knowledge graph as MCP tools, on stdio or HTTP.
func runServe(ctx context.Context, cfg *config.ProjectConfig, flags cliFlags) error {
	store, err := openStore(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	parser := graph.NewTreeSitterParser()
	defer parser.Close()

	filter := graph.DefaultFilter(cfg.ExtraExternalModules...)
	svc := mcptools.NewService(store, parser, filter, cfg.TargetDir)

	if flags.HTTPAddr != "" {
		return mcptools.RunHTTP(ctx, svc, flags.HTTPAddr)
	}
	return mcptools.RunStdio(ctx, mcptools.NewServer(svc))
}
