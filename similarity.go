package textdist

import (
	"github.com/projectdiscovery/textdist/preprocess"
	"github.com/projectdiscovery/textdist/vector"
)

// vectorSimilarity preprocesses both phrases (word grain unless set), builds
// their n-gram histograms and scores them with fn
func vectorSimilarity(metric, phrase1, phrase2 string, opts *Options, fn vector.SimilarityFunc) (float64, error) {
	resolved := opts.withDefaults(preprocess.WordGrain)
	a, b, err := resolved.tokenize(phrase1, phrase2)
	if err != nil {
		return 0, wrapError(metric, err)
	}
	similarity, err := vector.Compare(a, b, resolved.N, fn)
	if err != nil {
		return 0, wrapError(metric, err)
	}
	return similarity, nil
}

// CosineSimilarity returns the cosine of the angle between the n-gram count
// vectors of both phrases.
func CosineSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	return vectorSimilarity(MetricCosineSimilarity, phrase1, phrase2, opts, vector.Cosine)
}

// JaccardSimilarity returns shared distinct n-grams over all distinct n-grams
func JaccardSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	return vectorSimilarity(MetricJaccardSimilarity, phrase1, phrase2, opts, vector.Jaccard)
}

// SorensenDiceSimilarity returns twice the shared distinct n-grams over the
// sum of distinct n-grams of each phrase.
func SorensenDiceSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	return vectorSimilarity(MetricSorensenDiceSimilarity, phrase1, phrase2, opts, vector.SorensenDice)
}

// QGramSimilarity returns 1 - normalized L1 distance of the n-gram counts
func QGramSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	return vectorSimilarity(MetricQGramSimilarity, phrase1, phrase2, opts, vector.QGram)
}
