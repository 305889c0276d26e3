package editdistance

import "fmt"

const (
	// DefaultWinklerScale is the common prefix scaling factor used by Winkler
	DefaultWinklerScale = 0.1
	// maxPrefix bounds the prefix bonus, with p < 0.25 the score stays below 1
	maxPrefix = 4
)

// jaroMatch holds the outcome of the matching phase
type jaroMatch struct {
	matches        int
	transpositions float64
}

// match runs the windowed matching phase of Jaro.
//
// ALGORITHM:
//  1. window = max(max(len(a), len(b))/2 - 1, 0)
//  2. every unit of a (left to right) claims the first unused equal unit
//     of b within [i-window, i+window]; claims are never revisited
//  3. matched units of both sides are read back in index order and every
//     position where they differ counts as half a transposition
//
// The greedy claim is intentionally not a maximum matching.
func match(a, b []string) jaroMatch {
	window := max(max(len(a), len(b))/2-1, 0)

	matchedA := make([]bool, len(a))
	matchedB := make([]bool, len(b))
	var result jaroMatch
	for i, unit := range a {
		lo, hi := max(i-window, 0), min(i+window+1, len(b))
		for j := lo; j < hi; j++ {
			if !matchedB[j] && b[j] == unit {
				matchedA[i], matchedB[j] = true, true
				result.matches++
				break
			}
		}
	}
	if result.matches == 0 {
		return result
	}

	mismatched, j := 0, 0
	for i := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if a[i] != b[j] {
			mismatched++
		}
		j++
	}
	result.transpositions = float64(mismatched) / 2
	return result
}

// Jaro returns the Jaro similarity of a and b
func Jaro(a, b []string) float64 {
	if s, ok := emptySimilarity(a, b); ok {
		return s
	}
	m := match(a, b)
	if m.matches == 0 {
		return 0
	}
	matches := float64(m.matches)
	return (matches/float64(len(a)) + matches/float64(len(b)) + (matches-m.transpositions)/matches) / 3
}

// CommonPrefix returns the number of leading units a and b share, up to limit
func CommonPrefix(a, b []string, limit int) int {
	n := 0
	for n < limit && n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// JaroWinkler boosts the Jaro similarity of sequences sharing a common prefix:
// jaro + l*p*(1-jaro) where l is the shared prefix length (at most 4).
// p must lie in the open interval (0, 0.25).
func JaroWinkler(a, b []string, p float64) (float64, error) {
	if !(p > 0 && p < 0.25) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidParameterRange, p)
	}
	jaro := Jaro(a, b)
	if len(a) == 0 || len(b) == 0 {
		return jaro, nil
	}
	prefix := CommonPrefix(a, b, maxPrefix)
	return jaro + float64(prefix)*p*(1-jaro), nil
}
