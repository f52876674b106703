package cdl

import (
	"github.com/adrg/strutil/metrics"
)

// suggestionDistance bounds how far a candidate may be from the input
// before it stops being a useful "did you mean" hint.
const suggestionDistance = 2

// Suggest returns the candidate closest to input by edit distance, or
// "" when nothing is within range. Candidates are scanned in sorted
// order so ties resolve alphabetically.
func Suggest(input string, candidates []string) string {
	if input == "" {
		return ""
	}
	lev := metrics.NewLevenshtein()
	best := ""
	bestDist := suggestionDistance + 1
	for _, cand := range candidates {
		if d := lev.Distance(input, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

// SuggestSet is Suggest over a lookup table's keys.
func SuggestSet(input string, set map[string]bool) string {
	return Suggest(input, sortedKeys(set))
}
