// Package fuzzy provides normalized edit-distance string similarity on
// a 0-100 scale, tolerant of minor spelling and phrasing differences.
package fuzzy

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// Ratio returns the normalized Levenshtein similarity between a and b:
// 100 for equal strings, 0 for entirely dissimilar or empty input.
func Ratio(a, b string) int {
	if a == b {
		if a == "" {
			return 0
		}
		return 100
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}

	longer := la
	if lb > longer {
		longer = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round((1.0 - float64(dist)/float64(longer)) * 100))
}

// Matcher adapts Ratio to the matcher interfaces consumed by the
// scoring pipeline, keeping the algorithm swappable.
type Matcher struct{}

// Ratio implements the fuzzy-matching capability.
func (Matcher) Ratio(a, b string) int {
	return Ratio(a, b)
}
