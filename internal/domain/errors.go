package domain

import "errors"

var (
	// ErrCatalogUnavailable is returned when no catalog snapshot has ever been obtained
	ErrCatalogUnavailable = errors.New("catalog not available yet")

	// ErrInvalidProduct is returned when the scraped product is missing required fields
	ErrInvalidProduct = errors.New("invalid scraped product")

	// ErrNoMatch is returned when no catalog entry clears the score threshold
	ErrNoMatch = errors.New("no catalog entry matched")

	// ErrListingsAPIFailure is returned when a listings API request fails
	ErrListingsAPIFailure = errors.New("listings API request failed")

	// ErrRateLimited is returned when the listings API responds with HTTP 429
	ErrRateLimited = errors.New("listings API rate limit exceeded")

	// ErrSnapshotNotFound is returned when no persisted catalog snapshot exists
	ErrSnapshotNotFound = errors.New("catalog snapshot not found")

	// ErrScrapeFailure is returned when the remote scrape service fails
	ErrScrapeFailure = errors.New("scrape service request failed")
)
