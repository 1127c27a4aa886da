// Package scentsearch is the Go client for the scentsearch storefront
// search API.
package scentsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SearchResult is a single ranked hit, shaped for direct display.
type SearchResult struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Href        string   `json:"href"`
	Image       string   `json:"image,omitempty"`
	Badges      []string `json:"badges,omitempty"`
	Meta        string   `json:"meta,omitempty"`
	Type        string   `json:"type"`
	Score       float64  `json:"score"`
}

// ResultsSet holds both ranked buckets of one search call.
type ResultsSet struct {
	Products []SearchResult `json:"products"`
	Journal  []SearchResult `json:"journal"`
}

// SearchResponse is the full payload of the query endpoint.
type SearchResponse struct {
	Query   string     `json:"query"`
	Tokens  []string   `json:"tokens"`
	Results ResultsSet `json:"results"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scentsearch: %s (%s, http %d)", e.Message, e.Code, e.Status)
}

// Client is the scentsearch SDK entry point.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("scentsearch: base URL required")
	}

	cfg := &clientConfig{httpc: http.DefaultClient}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.timeout > 0 && cfg.httpc == http.DefaultClient {
		cfg.httpc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.apiKey,
		httpc:   cfg.httpc,
	}, nil
}

// Search runs a relevance query and returns the ranked result sets.
// An empty query is valid and returns the whole catalog unranked.
func (c *Client) Search(ctx context.Context, query string) (SearchResponse, error) {
	var resp SearchResponse
	params := url.Values{"q": {query}}
	if err := c.getJSON(ctx, "/v1/search", params, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

// Suggestions returns up to limit autocomplete strings derived from
// the catalog. limit <= 0 requests the server default.
func (c *Client) Suggestions(ctx context.Context, limit int) ([]string, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.getJSON(ctx, "/v1/suggestions", params, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("scentsearch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("scentsearch: do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("scentsearch: decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Code: "unknown", Message: resp.Status}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Code != "" {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}
	return apiErr
}
