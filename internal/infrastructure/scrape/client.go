package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dramfinder/backend/internal/domain"
)

// Client calls the remote scrape-on-demand service, used for retail sites
// the extension has no selector schema for.
type Client struct {
	httpClient *http.Client
	serviceURL string
}

// NewClient creates a scrape service client. Timeout is generous because the
// service drives a headless browser per request.
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		serviceURL: serviceURL,
	}
}

type scrapeRequest struct {
	URL string `json:"url"`
}

type scrapeResponse struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// Scrape asks the service to extract the product name and price from the page
// at pageURL. A 400 means the service could not detect a product, which the
// coordinator treats the same as a missing scraped name.
func (c *Client) Scrape(ctx context.Context, pageURL string) (*domain.ScrapedProduct, error) {
	payload, err := json.Marshal(scrapeRequest{URL: pageURL})
	if err != nil {
		return nil, fmt.Errorf("encoding scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScrapeFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		io.Copy(io.Discard, resp.Body)
		return nil, domain.ErrInvalidProduct
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrScrapeFailure, resp.StatusCode, string(body))
	}

	var scraped scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&scraped); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &domain.ScrapedProduct{
		Name:  scraped.Name,
		Price: scraped.Price,
	}, nil
}
