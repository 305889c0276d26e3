// Package vector implements set and vector similarity over n-gram histograms.
//
// All formulas expect non-empty histograms, which NewHistogram guarantees by
// rejecting sequences shorter than the n-gram size.
package vector

import "math"

// SimilarityFunc scores a pair of histograms
type SimilarityFunc func(h1, h2 Histogram) float64

// Cosine returns the dot product of both histograms divided by the product
// of their norms. Counts are never negative so the result lies in [0, 1].
func Cosine(h1, h2 Histogram) float64 {
	var dot float64
	for _, key := range Intersection(h1, h2) {
		dot += float64(h1[key]) * float64(h2[key])
	}
	// a single square root keeps identical histograms at exactly 1
	return dot / math.Sqrt(h1.squaredNorm()*h2.squaredNorm())
}

// Jaccard returns |K1 ∩ K2| / |K1 ∪ K2| where K are the distinct n-grams
func Jaccard(h1, h2 Histogram) float64 {
	shared := len(Intersection(h1, h2))
	return float64(shared) / float64(len(h1)+len(h2)-shared)
}

// SorensenDice returns 2|K1 ∩ K2| / (|K1| + |K2|)
func SorensenDice(h1, h2 Histogram) float64 {
	return 2 * float64(len(Intersection(h1, h2))) / float64(len(h1)+len(h2))
}

// QGram returns one minus the L1 distance of both histograms normalized by
// the sum of the per n-gram maximum counts. Missing n-grams count as zero.
func QGram(h1, h2 Histogram) float64 {
	var diff, total int
	for _, key := range Union(h1, h2) {
		c1, c2 := h1[key], h2[key]
		if c1 > c2 {
			diff += c1 - c2
		} else {
			diff += c2 - c1
		}
		total += max(c1, c2)
	}
	return 1 - float64(diff)/float64(total)
}

// Compare builds the histograms of both sequences and scores them with fn
func Compare(a, b []string, n int, fn SimilarityFunc) (float64, error) {
	h1, err := NewHistogram(a, n)
	if err != nil {
		return 0, err
	}
	h2, err := NewHistogram(b, n)
	if err != nil {
		return 0, err
	}
	return fn(h1, h2), nil
}
