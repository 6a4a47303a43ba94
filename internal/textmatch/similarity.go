// Package textmatch provides normalized text comparison for grading
// learner input against expected phrases.
package textmatch

import "strings"

// punctuation is the fixed set stripped during normalization. It covers the
// inverted Spanish marks alongside the usual sentence punctuation.
const punctuation = "¿?¡!.,;:"

// Normalize lowercases s, strips punctuation, and trims surrounding
// whitespace. All comparisons in this package operate on normalized text.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// Similarity returns a score in [0,1] measuring how close two strings are
// after normalization. Identical strings score exactly 1; otherwise the score
// is 1 - editDistance/maxLen over Unicode code points.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == nb {
		return 1
	}

	ra := []rune(na)
	rb := []rune(nb)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	return 1 - float64(editDistance(ra, rb))/float64(longest)
}

// editDistance computes the Levenshtein distance between two rune slices,
// with unit cost for insert, delete, and substitute.
func editDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(prev[j-1], min(prev[j], curr[j-1]))
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
