// Package sdk provides a Go client for the sitesearch HTTP API and an agent
// tool wrapper exposing the same search to conversational-assistant
// integrations.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client calls the sitesearch HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets a bearer token for authenticated deployments.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SearchParams are the search request parameters. Zero values are omitted
// and fall back to server-side defaults.
type SearchParams struct {
	Query   string   `json:"query"`
	Indices []string `json:"indices,omitempty"`
	Limit   int      `json:"limit,omitempty"`
	Locale  string   `json:"locale,omitempty"`
}

// SearchResult is a single hit as returned by the API.
type SearchResult struct {
	ID          string `json:"id"`
	Index       string `json:"index"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Href        string `json:"href"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	Company     string `json:"company,omitempty"`
	Department  string `json:"department,omitempty"`
}

// SearchResponse is the API response envelope.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Error   string         `json:"error,omitempty"`
}

// Search executes a federated search. Responses are never served from a
// cache: every call hits the live API.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal search params: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/search", bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		code := out.Error
		if code == "" {
			code = resp.Status
		}
		return nil, fmt.Errorf("search failed: %s", code)
	}

	return &out, nil
}
