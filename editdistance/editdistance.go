// Package editdistance implements alignment based metrics over token sequences.
//
// Every function accepts two sequences of comparable units (runes or words
// produced by the preprocess package) and is safe for concurrent use since no
// state is kept between calls. Shared conventions:
//
//   - both sequences empty: distance 0, similarity 1
//   - exactly one sequence empty: distance is the length of the other, similarity 0
//   - Hamming additionally requires sequences of equal length
package editdistance

import (
	"fmt"

	"github.com/projectdiscovery/utils/errkit"
)

var (
	ErrLengthMismatch        = errkit.New("hamming distance requires sequences of equal length")
	ErrInvalidParameterRange = errkit.New("jaro-winkler scaling factor must be within (0, 0.25)")
)

// newTable allocates a (rows+1)x(cols+1) alignment table. When seeded the
// first row and column hold the cost of editing from the empty prefix.
func newTable(rows, cols int, seeded bool) [][]int {
	table := make([][]int, rows+1)
	for i := range table {
		table[i] = make([]int, cols+1)
	}
	if seeded {
		for i := 0; i <= rows; i++ {
			table[i][0] = i
		}
		for j := 0; j <= cols; j++ {
			table[0][j] = j
		}
	}
	return table
}

// emptyDistance handles the shared early exit. ok is false when both
// sequences are non-empty and the caller has to compute the distance.
func emptyDistance(a, b []string) (distance int, ok bool) {
	if len(a) == 0 || len(b) == 0 {
		return max(len(a), len(b)), true
	}
	return 0, false
}

// emptySimilarity is the similarity counterpart of emptyDistance
func emptySimilarity(a, b []string) (similarity float64, ok bool) {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 1, true
	case len(a) == 0 || len(b) == 0:
		return 0, true
	}
	return 0, false
}

// Levenshtein returns the minimum number of insertions, deletions and
// substitutions needed to turn a into b.
func Levenshtein(a, b []string) int {
	if d, ok := emptyDistance(a, b); ok {
		return d
	}
	table := newTable(len(a), len(b), true)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			table[i][j] = min(
				table[i-1][j-1]+cost, // substitution
				table[i-1][j]+1,      // deletion
				table[i][j-1]+1,      // insertion
			)
		}
	}
	return table[len(a)][len(b)]
}

// LevenshteinSimilarity returns 1 - distance / max(len(a), len(b))
func LevenshteinSimilarity(a, b []string) float64 {
	if s, ok := emptySimilarity(a, b); ok {
		return s
	}
	return 1 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}

// DamerauLevenshtein is Levenshtein with transposition of two adjacent units
// as an extra operation of cost 1 (optimal string alignment variant).
func DamerauLevenshtein(a, b []string) int {
	if d, ok := emptyDistance(a, b); ok {
		return d
	}
	table := newTable(len(a), len(b), true)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := min(table[i-1][j-1]+cost, table[i-1][j]+1, table[i][j-1]+1)
			// transposition only competes when the units are actually swapped
			if i >= 2 && j >= 2 && a[i-2] == b[j-1] && a[i-1] == b[j-2] {
				best = min(best, table[i-2][j-2]+1)
			}
			table[i][j] = best
		}
	}
	return table[len(a)][len(b)]
}

// DamerauLevenshteinSimilarity returns 1 - distance / max(len(a), len(b))
func DamerauLevenshteinSimilarity(a, b []string) float64 {
	if s, ok := emptySimilarity(a, b); ok {
		return s
	}
	return 1 - float64(DamerauLevenshtein(a, b))/float64(max(len(a), len(b)))
}

// LCS returns the length of the longest common subsequence of a and b
func LCS(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	table := newTable(len(a), len(b), false)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i][j-1], table[i-1][j])
			}
		}
	}
	return table[len(a)][len(b)]
}

// LCSDistance counts the units on both sides that are not part of the
// longest common subsequence, i.e. insertions plus deletions.
func LCSDistance(a, b []string) int {
	if d, ok := emptyDistance(a, b); ok {
		return d
	}
	return len(a) + len(b) - 2*LCS(a, b)
}

// LCSSimilarity returns 1 - distance / (len(a) + len(b))
func LCSSimilarity(a, b []string) float64 {
	if s, ok := emptySimilarity(a, b); ok {
		return s
	}
	return 1 - float64(LCSDistance(a, b))/float64(len(a)+len(b))
}

// Hamming counts positions holding different units. Sequences of different
// length are rejected with ErrLengthMismatch, they are never padded or truncated.
func Hamming(a, b []string) (int, error) {
	if d, ok := emptyDistance(a, b); ok {
		return d, nil
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: got %d and %d units", ErrLengthMismatch, len(a), len(b))
	}
	distance := 0
	for i := range a {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance, nil
}

// HammingSimilarity returns 1 - distance / len(a)
func HammingSimilarity(a, b []string) (float64, error) {
	if s, ok := emptySimilarity(a, b); ok {
		return s, nil
	}
	distance, err := Hamming(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - float64(distance)/float64(len(a)), nil
}
