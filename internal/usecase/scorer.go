package usecase

import (
	"math"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Ratio computes the normalized edit similarity of two whole strings on a
// 0-100 scale: 100 * (1 - editDistance/maxLen). Symmetric, deterministic,
// and total; identical strings (including two empty strings) score 100,
// strings with no character overlap score 0.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 100
	}

	dist := fuzzy.LevenshteinDistance(a, b)
	score := int(math.Round(100 * (1 - float64(dist)/float64(maxLen))))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// PartialRatio scores the best alignment of the shorter string against every
// contiguous window of its length in the longer string. Used when one side is
// expected to contain the other, such as a verbose page title against a short
// catalog name. Not symmetric in the roles the arguments play, though swapping
// them yields the same value because window scores use the symmetric Ratio.
func PartialRatio(a, b string) int {
	shorter := []rune(a)
	longer := []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}
	if len(shorter) == len(longer) {
		return Ratio(string(shorter), string(longer))
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if score := Ratio(string(shorter), window); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}

	return best
}
