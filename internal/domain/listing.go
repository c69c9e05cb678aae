package domain

import "time"

// CatalogEntry represents a single marketplace listing. Immutable once
// constructed; identity is the listing ID.
type CatalogEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Producer    string  `json:"producer,omitempty"`
	YearBottled string  `json:"yearBottled,omitempty"`
	ABV         string  `json:"abv,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Catalog is one complete snapshot of the marketplace listings. Snapshots are
// replaced wholesale on each successful sync; readers never see a half-built one.
type Catalog struct {
	Entries     []CatalogEntry `json:"entries"`
	LastUpdated time.Time      `json:"lastUpdated"`
}

// Len returns the number of entries in the snapshot. Safe on a nil catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// ScrapedProduct is the product extracted from the retail page being viewed.
// Supplied per request, never persisted.
type ScrapedProduct struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// Sentinel names the page scraper reports when it cannot extract a product.
// The coordinator must treat these as "cannot evaluate", not as "no match".
const (
	ScrapeNotSupported = "Not supported"
	ScrapeNotFound     = "Not found"
)

// MatchResult is the winning catalog entry for a query and its similarity score.
type MatchResult struct {
	Entry CatalogEntry `json:"entry"`
	Score int          `json:"score"`
}

// Alternative is a qualified catalog listing surfaced by the ranked filter,
// enriched with the marketplace link and a display detail line.
type Alternative struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Details  string  `json:"details"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Score    int     `json:"matchScore"`
}

// Comparison is the outcome of one end-to-end evaluation. A nil Match and a
// nil Savings are both valid, non-error results.
type Comparison struct {
	Product ScrapedProduct `json:"product"`
	Match   *MatchResult   `json:"match"`
	Savings *float64       `json:"savings"`
}

// CatalogState describes the synchronizer lifecycle.
type CatalogState string

const (
	CatalogStateEmpty   CatalogState = "empty"
	CatalogStateSyncing CatalogState = "syncing"
	CatalogStateReady   CatalogState = "ready"
)
