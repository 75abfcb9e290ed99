// Package similarity scores how close two strings are using Levenshtein
// edit distance over Unicode code points.
package similarity

import (
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Distance returns the Levenshtein distance between a and b, where insertion,
// deletion and substitution each cost 1.
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// Score returns 1 - Distance(a, b) / max(len(a), len(b)), with lengths counted
// in runes. Two empty strings score 1.
func Score(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return 1 - float64(Distance(a, b))/float64(longest)
}
