// Package search provides the live web-search capability bound to roles
// that are allowed to refresh intelligence from the open web.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Searcher returns formatted text snippets for a query.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

const (
	defaultEndpoint = "https://google.serper.dev/search"
	defaultTimeout  = 20 * time.Second

	// maxSnippets bounds how many organic results are folded into a prompt.
	maxSnippets = 5
)

// SerperClient queries the Serper search API.
type SerperClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// SerperOption configures a SerperClient.
type SerperOption func(*SerperClient)

// WithEndpoint overrides the API endpoint, mainly for tests.
func WithEndpoint(url string) SerperOption {
	return func(c *SerperClient) {
		c.endpoint = url
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) SerperOption {
	return func(c *SerperClient) {
		c.httpClient = hc
	}
}

// NewSerperClient creates a search client authenticated with apiKey.
func NewSerperClient(apiKey string, opts ...SerperOption) *SerperClient {
	c := &SerperClient{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type serperRequest struct {
	Query string `json:"q"`
}

type serperResult struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Search issues the query and formats the top organic results as bulleted
// snippets suitable for prompt embedding.
func (c *SerperClient) Search(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(serperRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var result serperResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding search response: %w", err)
	}

	if len(result.Organic) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for i, hit := range result.Organic {
		if i >= maxSnippets {
			break
		}
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", hit.Title, hit.Snippet, hit.Link)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
