package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/portfolioshweta98-sys/CodeLens/internal/enrich"
	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

func runEnrich(ctx context.Context, store graph.Store, args []string) error {
	fs := flag.NewFlagSet("enrich", flag.ContinueOnError)
	delay := fs.Duration("delay", time.Second, "pause between web searches")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: codelens enrich [-delay <dur>] [requirements.txt]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	requirementsPath := "requirements.txt"
	if fs.NArg() > 0 {
		requirementsPath = fs.Arg(0)
	}

	apiKey := os.Getenv("BRAVE_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("BRAVE_API_KEY is not set")
	}

	searcher := enrich.NewBraveClient(apiKey)
	summary, err := enrich.Run(ctx, store, searcher, requirementsPath, *delay)
	if err != nil {
		return err
	}

	fmt.Printf("enriched %d libraries (%d already done, %d failed)\n",
		summary.Fetched, summary.Skipped, summary.Failed)
	return nil
}
