package main

import (
	"context"
	"fmt"
	"os"

	"github.com/portfolioshweta98-sys/CodeLens/internal/config"
	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
	"github.com/portfolioshweta98-sys/CodeLens/internal/summarize"
)

func runSummarize(ctx context.Context, cfg *config.ProjectConfig, store graph.Store) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := summarize.NewGeminiClient(ctx, apiKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("create Gemini client: %w", err)
	}

	summary, err := summarize.Run(ctx, store, client, cfg.Concurrency)
	if err != nil {
		return err
	}

	fmt.Printf("summarized %d files (%d already done, %d failed)\n",
		summary.Summarized, summary.Skipped, summary.Failed)
	return nil
}
