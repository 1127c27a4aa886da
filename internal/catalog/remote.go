package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

const defaultRetryBackoff = 250 * time.Millisecond

// Remote fetches the catalog and journal from the commerce backend
// over HTTP, retrying transient failures with a linear backoff before
// giving up.
type Remote struct {
	baseURL string
	client  *http.Client
	retries int
	backoff time.Duration
	logger  *zap.Logger
}

// NewRemote creates a remote catalog source. timeout bounds each
// attempt; retries is the number of additional attempts after the
// first.
func NewRemote(baseURL string, timeout time.Duration, retries int, logger *zap.Logger) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		retries: retries,
		backoff: defaultRetryBackoff,
		logger:  logger,
	}
}

// Products fetches the full product catalog.
func (r *Remote) Products(ctx context.Context) ([]domain.Product, error) {
	var payload struct {
		Products []domain.Product `json:"products"`
	}
	if err := r.getJSON(ctx, "/v1/catalog/products", &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	return payload.Products, nil
}

// Entries fetches the journal entries.
func (r *Remote) Entries(ctx context.Context) ([]domain.JournalEntry, error) {
	var payload struct {
		Entries []domain.JournalEntry `json:"entries"`
	}
	if err := r.getJSON(ctx, "/v1/content/journal", &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrContentUnavailable, err)
	}
	return payload.Entries, nil
}

// getJSON performs a GET with retries, decoding the response into v.
func (r *Remote) getJSON(ctx context.Context, path string, v any) error {
	var lastErr error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.backoff * time.Duration(attempt)):
			}
		}
		if lastErr = r.getJSONOnce(ctx, path, v); lastErr == nil {
			return nil
		}
		r.logger.Warn("backend fetch failed",
			zap.String("path", path),
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr),
		)
	}
	return lastErr
}

func (r *Remote) getJSONOnce(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
