package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/portfolioshweta98-sys/CodeLens/internal/export"
	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

func runExport(ctx context.Context, store graph.Store, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	format := fs.String("format", "json", "output format: json or mermaid")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: codelens export [-format json|mermaid]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := export.BuildGraph(ctx, store)
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		out, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	case "mermaid":
		fmt.Print(export.GenerateMermaid(g))
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}
