// Package suggest finds the known name closest to a mistyped one, for
// "did you mean" hints in error messages.
package suggest

import (
	"strings"
	"unicode"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.6

// Closest returns the candidate most similar to name. The second result is
// false when no candidate reaches MinSimilarity. Ties keep the earlier
// candidate.
func Closest(name string, candidates []string) (string, bool) {
	var (
		best  string
		score float64
	)

	for _, c := range candidates {
		if s := Similarity(name, c); s > score {
			best, score = c, s
		}
	}

	return best, score >= MinSimilarity
}

// Similarity scores two names from 0 (nothing in common) to 1 (equal once
// case and separators are ignored).
func Similarity(a, b string) float64 {
	a, b = fold(a), fold(b)

	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}

// Distance is the number of single byte insertions, deletions and
// substitutions turning a into b.
func Distance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			up := row[i]
			row[i] = min(row[i]+1, row[i-1]+1, diag+cost)
			diag = up
		}
	}

	return row[len(a)]
}

// fold lowercases s and drops separators, so "createdAt", "created_at" and
// "Created-At" compare equal.
func fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
