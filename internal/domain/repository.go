package domain

import "context"

// ListingsClient defines the interface for fetching the remote marketplace catalog.
// FetchAll may return partially assembled entries together with a non-nil error
// when the retry budget for a page is exhausted.
type ListingsClient interface {
	FetchAll(ctx context.Context) ([]CatalogEntry, error)
}

// SnapshotStore defines the interface for persisting catalog snapshots between runs
type SnapshotStore interface {
	Load(ctx context.Context) (*Catalog, error)
	Save(ctx context.Context, catalog *Catalog) error
}

// ScrapeClient defines the interface for the remote scrape-on-demand service,
// used for retail sites the extension has no selector schema for
type ScrapeClient interface {
	Scrape(ctx context.Context, pageURL string) (*ScrapedProduct, error)
}
