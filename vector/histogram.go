package vector

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/projectdiscovery/utils/errkit"
	mapsutil "github.com/projectdiscovery/utils/maps"
)

// Separator joins the tokens of an n-gram
const Separator = " "

var (
	ErrInvalidArgument    = errkit.New("invalid argument")
	ErrInsufficientLength = errkit.New("sequence is shorter than the n-gram size")
)

// Histogram maps every n-gram of a sequence to its number of occurrences
type Histogram map[string]int

// NewHistogram slides a window of n tokens over the sequence (stride 1) and
// counts every n-gram. The sequence must hold at least n tokens.
//
// EXAMPLE:
//
//	NewHistogram([]string{"to", "be", "or", "not", "to", "be"}, 2)
//	→ {"to be": 2, "be or": 1, "or not": 1, "not to": 1}
func NewHistogram(tokens []string, n int) (Histogram, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n-gram size must be at least 1, got %d", ErrInvalidArgument, n)
	}
	if len(tokens) < n {
		return nil, fmt.Errorf("%w: %d tokens for n=%d", ErrInsufficientLength, len(tokens), n)
	}
	h := make(Histogram, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		h[strings.Join(tokens[i:i+n], Separator)]++
	}
	return h, nil
}

// Keys returns the distinct n-grams in lexical order
func (h Histogram) Keys() []string {
	keys := mapsutil.GetKeys(map[string]int(h))
	sort.Strings(keys)
	return keys
}

// Total returns the number of n-grams counted
func (h Histogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

// Norm returns the euclidean norm of the histogram seen as a vector
func (h Histogram) Norm() float64 {
	return math.Sqrt(h.squaredNorm())
}

func (h Histogram) squaredNorm() float64 {
	var sum float64
	for _, count := range h {
		sum += float64(count) * float64(count)
	}
	return sum
}

// Intersection returns the n-grams present in both histograms
func Intersection(h1, h2 Histogram) []string {
	if len(h2) < len(h1) {
		h1, h2 = h2, h1
	}
	shared := make([]string, 0, len(h1))
	for key := range h1 {
		if _, ok := h2[key]; ok {
			shared = append(shared, key)
		}
	}
	return shared
}

// Union returns the n-grams present in at least one histogram
func Union(h1, h2 Histogram) []string {
	keys := make([]string, 0, len(h1)+len(h2))
	for key := range h1 {
		keys = append(keys, key)
	}
	for key := range h2 {
		if _, ok := h1[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}
