package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/portfolioshweta98-sys/CodeLens/internal/graph"
)

// defaultEndpoint is the Brave Search web search API (v1).
const defaultEndpoint = "https://api.search.brave.com/res/v1/web/search"

// BraveClient queries the Brave Search API for library information.
type BraveClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewBraveClient creates a client with the given subscription token.
func NewBraveClient(apiKey string) *BraveClient {
	return &BraveClient{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// braveResponse models the subset of the search response we keep.
type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
			Age         string `json:"age"`
		} `json:"results"`
	} `json:"web"`
}

// Lookup queries for one library and converts the hits into metadata. HTTP
// and decode failures are returned as errors; the caller decides whether to
// record them on the metadata instead of failing the batch.
func (c *BraveClient) Lookup(ctx context.Context, library string) (*graph.LibraryMetadata, error) {
	query := fmt.Sprintf("What is python library %s?", library)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("enrich: build request: %w", err)
	}
	q := url.Values{
		"q":           {query},
		"count":       {strconv.Itoa(5)},
		"search_lang": {"en"},
		"country":     {"US"},
		"safesearch":  {"moderate"},
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrich: query %s: %w", library, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrich: query %s: HTTP %d", library, resp.StatusCode)
	}

	var body braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("enrich: decode response for %s: %w", library, err)
	}

	meta := &graph.LibraryMetadata{
		Name:      library,
		Query:     query,
		FetchedAt: time.Now().Unix(),
	}
	for _, r := range body.Web.Results {
		meta.Results = append(meta.Results, graph.WebResult{
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
			Age:         r.Age,
		})
	}
	return meta, nil
}
