package textdist_test

import (
	"fmt"

	"github.com/projectdiscovery/textdist"
	"github.com/projectdiscovery/textdist/preprocess"
)

func ExampleLevenshteinDistance() {
	d, err := textdist.LevenshteinDistance("bededqowd", "beeddqpdw", nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 5
}

func ExampleJaroWinklerSimilarity() {
	s, err := textdist.JaroWinklerSimilarity("bededqowd", "beeddqpdw", &textdist.Options{P: 0.1})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", s)
	// Output: 0.87
}

func ExampleCosineSimilarity() {
	s, err := textdist.CosineSimilarity("night", "nacht", &textdist.Options{Grain: preprocess.CharGrain, N: 2})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", s)
	// Output: 0.25
}

func ExampleGetMetric() {
	m, err := textdist.GetMetric("damerau-levenshtein-distance")
	if err != nil {
		panic(err)
	}
	score, _ := m.Score("abcd", "acbd", nil)
	fmt.Println(m.Name, m.Kind, score)
	// Output: damerau_levenshtein_distance distance 1
}
