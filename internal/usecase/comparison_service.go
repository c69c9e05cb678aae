package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/dramfinder/backend/internal/domain"
)

// ComparisonService orchestrates one end-to-end comparison: take a scraped
// product, make sure a catalog snapshot exists, match, compute savings.
type ComparisonService struct {
	syncService        *SyncService
	matcher            *Matcher
	scraper            domain.ScrapeClient
	enableDebugLogging bool
}

// NewComparisonService creates a comparison service with dependencies
func NewComparisonService(
	syncService *SyncService,
	matcher *Matcher,
	scraper domain.ScrapeClient,
	enableDebugLogging bool,
) *ComparisonService {
	return &ComparisonService{
		syncService:        syncService,
		matcher:            matcher,
		scraper:            scraper,
		enableDebugLogging: enableDebugLogging,
	}
}

// Evaluate compares a scraped product against the catalog.
//
// A missing or sentinel product name yields ErrInvalidProduct. If no snapshot
// exists yet a synchronous sync runs first, so "no catalog yet" is never
// silently reported as "no match". A nil match and non-positive savings are
// both valid outcomes, not errors.
func (s *ComparisonService) Evaluate(ctx context.Context, product domain.ScrapedProduct) (*domain.Comparison, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	catalog, err := s.ensureCatalog(ctx)
	if err != nil {
		return nil, err
	}

	match, err := s.matcher.FindBestMatch(product.Name, catalog.Entries)
	if err != nil {
		if errors.Is(err, domain.ErrNoMatch) {
			return &domain.Comparison{Product: product}, nil
		}
		return nil, err
	}

	comparison := &domain.Comparison{
		Product: product,
		Match:   match,
	}

	if product.Price != nil {
		savings := *product.Price - match.Entry.Price
		comparison.Savings = &savings
	}

	if s.enableDebugLogging {
		log.Printf("[COMPARE] %q matched %q (score %d)", product.Name, match.Entry.Name, match.Score)
	}

	return comparison, nil
}

// Alternatives returns all acceptable catalog listings for the product,
// cheapest first.
func (s *ComparisonService) Alternatives(ctx context.Context, product domain.ScrapedProduct) ([]domain.Alternative, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	catalog, err := s.ensureCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.matcher.FilterAlternatives(product, catalog.Entries), nil
}

// EvaluateURL scrapes the page through the remote scrape service, then
// evaluates the result.
func (s *ComparisonService) EvaluateURL(ctx context.Context, pageURL string) (*domain.Comparison, error) {
	if s.scraper == nil {
		return nil, domain.ErrScrapeFailure
	}

	product, err := s.scraper.Scrape(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return s.Evaluate(ctx, *product)
}

// ensureCatalog returns the current snapshot, triggering a synchronous sync
// when none exists yet.
func (s *ComparisonService) ensureCatalog(ctx context.Context) (*domain.Catalog, error) {
	if catalog := s.syncService.Current(); catalog != nil {
		return catalog, nil
	}

	catalog, err := s.syncService.Sync(ctx)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return catalog, nil
}

// validateProduct rejects products the scraper could not extract. The
// scraper's sentinel names mean "cannot evaluate", not "no match".
func validateProduct(product domain.ScrapedProduct) error {
	switch product.Name {
	case "", domain.ScrapeNotSupported, domain.ScrapeNotFound:
		return domain.ErrInvalidProduct
	}
	return nil
}
