package usecase

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/dramfinder/backend/internal/domain"
)

// marketplaceAssetURL is the listing page for a catalog entry
const marketplaceAssetURL = "https://baxus.co/marketplace/asset/%s"

// MatchConfig holds configuration for the matcher
type MatchConfig struct {
	MinScore           int
	ProducerBoost      int
	YearBoost          int
	EnableDebugLogging bool
}

// Matcher scores scraped product names against catalog entries.
//
// Two modes exist. FindBestMatch picks the single best entry by whole-string
// Ratio with no boosts. FilterAlternatives keeps every entry whose boosted
// PartialRatio clears the threshold and orders them cheapest first. The boost
// asymmetry between the modes is deliberate and mirrors how each result set
// is consumed.
type Matcher struct {
	minScore           int
	producerBoost      int
	yearBoost          int
	enableDebugLogging bool
}

// NewMatcher creates a matcher with the given configuration
func NewMatcher(config MatchConfig) *Matcher {
	minScore := config.MinScore
	if minScore <= 0 {
		minScore = 75 // Default threshold
	}

	producerBoost := config.ProducerBoost
	if producerBoost <= 0 {
		producerBoost = 10
	}

	yearBoost := config.YearBoost
	if yearBoost <= 0 {
		yearBoost = 10
	}

	return &Matcher{
		minScore:           minScore,
		producerBoost:      producerBoost,
		yearBoost:          yearBoost,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// MinScore returns the configured acceptance threshold
func (m *Matcher) MinScore() int {
	return m.minScore
}

// FindBestMatch finds the catalog entry most similar to queryName.
//
// Entries are scored with Ratio over normalized names. A candidate is
// recorded only when it strictly beats the running maximum and meets the
// threshold, so the first entry reaching a given score wins ties. Returns
// ErrNoMatch when no entry qualifies.
func (m *Matcher) FindBestMatch(queryName string, entries []domain.CatalogEntry) (*domain.MatchResult, error) {
	normalizedQuery := Normalize(queryName)

	var best *domain.MatchResult
	highestScore := 0

	for _, entry := range entries {
		score := Ratio(normalizedQuery, Normalize(entry.Name))

		if m.enableDebugLogging {
			log.Printf("[MATCH] %q vs %q: %d", queryName, entry.Name, score)
		}

		if score > highestScore && score >= m.minScore {
			highestScore = score
			best = &domain.MatchResult{Entry: entry, Score: score}
		}
	}

	if best == nil {
		return nil, domain.ErrNoMatch
	}

	if m.enableDebugLogging {
		log.Printf("[MATCH] Best match for %q: %q (score %d)", queryName, best.Entry.Name, best.Score)
	}

	return best, nil
}

// FilterAlternatives returns every catalog entry acceptably similar to the
// scraped product, sorted ascending by price so the cheapest qualifying
// listing surfaces first.
//
// Scoring uses PartialRatio on normalized names, boosted when the entry's
// producer appears in the raw query name (case-insensitive) or its bottling
// year appears verbatim. Boosted scores are capped at 100.
func (m *Matcher) FilterAlternatives(product domain.ScrapedProduct, entries []domain.CatalogEntry) []domain.Alternative {
	normalizedQuery := Normalize(product.Name)
	rawName := product.Name
	rawNameLower := strings.ToLower(rawName)

	var alternatives []domain.Alternative
	for _, entry := range entries {
		score := PartialRatio(normalizedQuery, Normalize(entry.Name))

		if entry.Producer != "" && strings.Contains(rawNameLower, strings.ToLower(entry.Producer)) {
			score += m.producerBoost
		}
		if entry.YearBottled != "" && strings.Contains(rawName, entry.YearBottled) {
			score += m.yearBoost
		}
		if score > 100 {
			score = 100
		}

		if score <= m.minScore {
			continue
		}

		alternatives = append(alternatives, domain.Alternative{
			ID:       entry.ID,
			Name:     entry.Name,
			Details:  entryDetails(entry),
			Price:    entry.Price,
			URL:      fmt.Sprintf(marketplaceAssetURL, entry.ID),
			ImageURL: entry.ImageURL,
			Score:    score,
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Price < alternatives[j].Price
	})

	return alternatives
}

// entryDetails builds the display line shown under an alternative
func entryDetails(entry domain.CatalogEntry) string {
	var parts []string
	if entry.Producer != "" {
		parts = append(parts, entry.Producer)
	}
	if entry.YearBottled != "" {
		parts = append(parts, entry.YearBottled)
	}
	if entry.ABV != "" {
		parts = append(parts, entry.ABV+"% ABV")
	}
	return strings.Join(parts, " ")
}
