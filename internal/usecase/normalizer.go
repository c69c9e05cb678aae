package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	// Bracketed parenthetical content, brackets included: (...), [...], {...}
	bracketedRegex = regexp.MustCompile(`[(\[{][^)\]}]*[)\]}]`)

	// Category and volume vocabulary, removed with word boundaries so
	// substrings inside other words survive ("Scotchman" keeps its name).
	// Multi-word phrases come first so they win over their single-word parts.
	categoryTermsRegex = regexp.MustCompile(
		`\b(?:limited edition|special release|single malt|red wine|white wine|` +
			`whisky|whiskey|scotch|bourbon|blended|wine|bottle|liter|` +
			`750ml|700ml|1l|ml|cl|l)\b`,
	)

	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// normalizeStopWords are removed as exact whole tokens only, never as
// substrings, to avoid mangling proper nouns ("Yearly" keeps its "year").
var normalizeStopWords = map[string]bool{
	// Articles and prepositions
	"the": true, "a": true, "an": true, "in": true, "for": true,
	"of": true, "and": true, "with": true, "on": true, "at": true,
	"to": true, "by": true, "from": true,
	// Domain filler terms
	"bottled": true, "distillery": true, "cask": true, "barrel": true,
	"aged": true, "limited": true, "edition": true, "release": true,
	"collection": true, "series": true, "blend": true, "batch": true,
	"year": true, "years": true, "old": true,
}

// Normalize converts a raw product name to its canonical comparison form.
//
// The transform is total and idempotent: lowercase, strip bracketed content,
// strip category/volume vocabulary on word boundaries, collapse punctuation
// to spaces, then drop stop-word tokens. An empty result is a valid key.
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	normalized := strings.ToLower(name)
	normalized = bracketedRegex.ReplaceAllString(normalized, " ")
	normalized = categoryTermsRegex.ReplaceAllString(normalized, " ")
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, " ")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")

	words := strings.Fields(normalized)
	kept := words[:0]
	for _, word := range words {
		if normalizeStopWords[word] {
			continue
		}
		kept = append(kept, word)
	}

	return strings.TrimSpace(strings.Join(kept, " "))
}
