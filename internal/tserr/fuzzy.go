package tserr

import (
	"fmt"
	"strings"
)

// editDistance is a single-row Levenshtein over ASCII-lowered strings.
func editDistance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 0
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			sub := diag
			if a[i-1] != b[j-1] {
				sub++
			}
			diag = row[j]
			best := sub
			if d := diag + 1; d < best {
				best = d
			}
			if d := row[j-1] + 1; d < best {
				best = d
			}
			row[j] = best
		}
	}

	return row[len(b)]
}

// closest picks the candidate nearest to input. The cutoff scales with
// input length so short tokens don't match everything.
func closest(input string, candidates []string) (string, bool) {
	cutoff := (len(input) + 1) / 2
	if cutoff > 3 {
		cutoff = 3
	}

	best, bestDist := "", cutoff+1
	for _, c := range candidates {
		if d := editDistance(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= cutoff
}

// SuggestSimilar returns a "did you mean 'X'?" hint when input is a
// near miss of one of the candidates, or "" when nothing is close.
func SuggestSimilar(input string, candidates []string) string {
	if match, ok := closest(input, candidates); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}
