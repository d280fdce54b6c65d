package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/portfolioshweta98-sys/CodeLens/internal/analyze"
	"github.com/portfolioshweta98-sys/CodeLens/internal/config"
	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
	"github.com/portfolioshweta98-sys/CodeLens/internal/ingest"
)

func runAnalyze(ctx context.Context, cfg *config.ProjectConfig, store graph.Store, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	repoURL := fs.String("repo-url", "", "git URL to clone before analyzing")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: codelens analyze [-repo-url <url>] [path]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}
	if *repoURL != "" {
		cloned, err := ingest.Clone(ctx, *repoURL, cfg.TargetDir)
		if err != nil {
			return fmt.Errorf("clone repository: %w", err)
		}
		root = cloned
	}

	parser := graph.NewTreeSitterParser()
	defer parser.Close()

	runner := &analyze.Runner{
		Store:       store,
		Parser:      parser,
		Filter:      graph.DefaultFilter(cfg.ExtraExternalModules...),
		ExcludeDirs: cfg.ExcludeDirs,
		Verbose:     cfg.Verbose,
	}
	summary, err := runner.Run(ctx, root)
	if err != nil {
		return err
	}

	fmt.Printf("analyzed %s: %d files, %d edges (%d skipped, %d failed)\n",
		root, summary.Processed, summary.Edges, summary.Skipped, summary.Failed)
	return nil
}
