package baxus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/dramfinder/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the BAXUS listings search API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	pageSize    int
	maxRetries  int
	rateLimiter *rate.Limiter
	backoff     func(attempt int) time.Duration
	debug       bool
}

// NewClient creates a new listings API client.
// pageSize is the number of listings requested per page; maxRetries bounds
// the per-page retry budget for rate-limited or transient failures.
func NewClient(baseURL string, pageSize, maxRetries int) *Client {
	// Pace page requests to roughly two per second to stay under the
	// marketplace rate limit even before 429 responses come back.
	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		pageSize:    pageSize,
		maxRetries:  maxRetries,
		rateLimiter: limiter,
		backoff:     exponentialBackoff,
	}
}

// SetDebug toggles verbose per-page logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// exponentialBackoff returns the wait before retry n: 2s, 4s, 8s, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<attempt) * time.Second
}

// FetchAll retrieves the entire listed catalog page by page.
//
// Pagination advances the offset by the page size until a page returns zero
// items. Each page gets up to maxRetries attempts with exponential backoff on
// HTTP 429 and transient errors. If a page exhausts its budget, FetchAll
// returns every entry assembled so far together with the error - the caller
// decides whether a partial catalog is usable.
func (c *Client) FetchAll(ctx context.Context) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	seen := make(map[string]bool)
	from := 0

	for {
		page, err := c.fetchPage(ctx, from)
		if err != nil {
			log.Printf("[BAXUS] Stopping fetch at offset %d with %d entries: %v", from, len(entries), err)
			return entries, err
		}

		if len(page) == 0 {
			log.Printf("[BAXUS] Pagination complete: %d entries", len(entries))
			return entries, nil
		}

		for _, hit := range page {
			entry := mapListing(hit.Source)
			// Dedupe by id in case pagination windows overlap; first seen wins.
			if entry.ID != "" {
				if seen[entry.ID] {
					continue
				}
				seen[entry.ID] = true
			}
			entries = append(entries, entry)
		}

		if c.debug {
			log.Printf("[BAXUS] Fetched %d entries so far (offset %d)", len(entries), from)
		}

		from += c.pageSize
	}
}

// fetchPage requests one page of listings, retrying rate-limited and
// transient failures with exponential backoff.
func (c *Client) fetchPage(ctx context.Context, from int) ([]listingHit, error) {
	endpoint := fmt.Sprintf("%s/listings", c.baseURL)
	params := url.Values{}
	params.Add("from", fmt.Sprintf("%d", from))
	params.Add("size", fmt.Sprintf("%d", c.pageSize))
	params.Add("listed", "true")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		page, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return page, nil
		}
		lastErr = err

		log.Printf("[BAXUS] Page at offset %d failed (attempt %d/%d): %v", from, attempt, c.maxRetries, err)

		if attempt < c.maxRetries {
			wait := c.backoff(attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}
	}

	return nil, fmt.Errorf("retries exhausted for offset %d: %w", from, lastErr)
}

// doRequest executes a single page request and decodes the hit array
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]listingHit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Dramfinder/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrListingsAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return nil, domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrListingsAPIFailure, resp.StatusCode, string(body))
	}

	var page []listingHit
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return page, nil
}
