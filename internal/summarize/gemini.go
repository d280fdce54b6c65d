// Package summarize generates per-file summaries, tags, and risk notes with
// the Gemini API and attaches them to stored inventories.
package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

// ErrInvalidResponse marks a model reply that contained no usable JSON.
var ErrInvalidResponse = errors.New("summarize: no valid JSON in model response")

// Client produces a Summary for one file's source code.
// Implementations: GeminiClient (production), fakes in tests.
type Client interface {
	Summarize(ctx context.Context, code string) (*graph.Summary, error)
}

// summaryPrompt asks for exactly the JSON shape of graph.Summary.
const summaryPrompt = `You are a senior software engineer.

Analyze the following Python code and provide:

1. A summary of this file in exactly 3 bullet points.

2. Identify if it handles: authentication, database, API, or configuration.
   Provide relevant tags from: ["auth", "database", "api", "config", "utils", "model", "view", "service", "handler"]

3. List potential security risks (e.g., eval, SQL injection, hardcoded secrets, insecure random, missing input validation).

Return your response as valid JSON in this exact format:
{
  "summary": ["bullet point 1", "bullet point 2", "bullet point 3"],
  "tags": ["tag1", "tag2"],
  "risks": ["risk1", "risk2"]
}

Code:
`

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient creates a GeminiClient for the given API key and model.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: create genai client: %w", err)
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

// Summarize sends one file's code to the model and parses the JSON reply.
func (g *GeminiClient) Summarize(ctx context.Context, code string) (*graph.Summary, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: summaryPrompt + code}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, fmt.Errorf("summarize: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrInvalidResponse
	}
	return ParseResponse(resp.Candidates[0].Content.Parts[0].Text)
}

// ParseResponse extracts a Summary from raw model output. Markdown code
// fences are stripped, and if the remainder still is not valid JSON the
// outermost brace window is retried before giving up.
func ParseResponse(text string) (*graph.Summary, error) {
	text = stripFences(strings.TrimSpace(text))

	var sum graph.Summary
	if err := json.Unmarshal([]byte(text), &sum); err == nil {
		return &sum, nil
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return nil, ErrInvalidResponse
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &sum); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &sum, nil
}

func stripFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
