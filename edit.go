package textdist

import (
	"github.com/projectdiscovery/textdist/editdistance"
	"github.com/projectdiscovery/textdist/preprocess"
)

// editDistance preprocesses both phrases (char grain unless set) and applies fn
func editDistance(metric, phrase1, phrase2 string, opts *Options, fn func(a, b []string) int) (int, error) {
	resolved := opts.withDefaults(preprocess.CharGrain)
	a, b, err := resolved.tokenize(phrase1, phrase2)
	if err != nil {
		return 0, wrapError(metric, err)
	}
	return fn(a, b), nil
}

// editSimilarity is the similarity counterpart of editDistance
func editSimilarity(metric, phrase1, phrase2 string, opts *Options, fn func(a, b []string) float64) (float64, error) {
	resolved := opts.withDefaults(preprocess.CharGrain)
	a, b, err := resolved.tokenize(phrase1, phrase2)
	if err != nil {
		return 0, wrapError(metric, err)
	}
	return fn(a, b), nil
}

// LevenshteinDistance returns the number of insertions, deletions and
// substitutions needed to turn phrase1 into phrase2.
func LevenshteinDistance(phrase1, phrase2 string, opts *Options) (int, error) {
	return editDistance(MetricLevenshteinDistance, phrase1, phrase2, opts, editdistance.Levenshtein)
}

// LevenshteinSimilarity returns 1 - (levenshtein distance / longest length)
func LevenshteinSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	return editSimilarity(MetricLevenshteinSimilarity, phrase1, phrase2, opts, editdistance.LevenshteinSimilarity)
}

// DamerauLevenshteinDistance is LevenshteinDistance with adjacent transpositions
func DamerauLevenshteinDistance(phrase1, phrase2 string, opts *Options) (int, error) {
	return editDistance(MetricDamerauLevenshteinDistance, phrase1, phrase2, opts, editdistance.DamerauLevenshtein)
}

// DamerauLevenshteinSimilarity returns 1 - (damerau-levenshtein distance / longest length)
func DamerauLevenshteinSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	return editSimilarity(MetricDamerauLevenshteinSimilarity, phrase1, phrase2, opts, editdistance.DamerauLevenshteinSimilarity)
}

// LCSDistance returns the number of units of both phrases outside their
// longest common subsequence.
func LCSDistance(phrase1, phrase2 string, opts *Options) (int, error) {
	return editDistance(MetricLCSDistance, phrase1, phrase2, opts, editdistance.LCSDistance)
}

// LCSSimilarity returns 1 - (lcs distance / sum of lengths)
func LCSSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	return editSimilarity(MetricLCSSimilarity, phrase1, phrase2, opts, editdistance.LCSSimilarity)
}

// HammingDistance counts mismatching positions. Phrases that differ in length
// after preprocessing fail with ErrLengthMismatch.
func HammingDistance(phrase1, phrase2 string, opts *Options) (int, error) {
	resolved := opts.withDefaults(preprocess.CharGrain)
	a, b, err := resolved.tokenize(phrase1, phrase2)
	if err != nil {
		return 0, wrapError(MetricHammingDistance, err)
	}
	distance, err := editdistance.Hamming(a, b)
	return distance, wrapError(MetricHammingDistance, err)
}

// HammingSimilarity returns 1 - (hamming distance / length)
func HammingSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	resolved := opts.withDefaults(preprocess.CharGrain)
	a, b, err := resolved.tokenize(phrase1, phrase2)
	if err != nil {
		return 0, wrapError(MetricHammingSimilarity, err)
	}
	similarity, err := editdistance.HammingSimilarity(a, b)
	return similarity, wrapError(MetricHammingSimilarity, err)
}

// JaroSimilarity returns the jaro similarity of both phrases
func JaroSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	return editSimilarity(MetricJaroSimilarity, phrase1, phrase2, opts, editdistance.Jaro)
}

// JaroWinklerSimilarity returns the jaro similarity boosted by the length of
// the common prefix, scaled by opts.P.
func JaroWinklerSimilarity(phrase1, phrase2 string, opts *Options) (float64, error) {
	resolved := opts.withDefaults(preprocess.CharGrain)
	// the scaling factor is validated before any preprocessing happens
	if _, err := editdistance.JaroWinkler(nil, nil, resolved.P); err != nil {
		return 0, wrapError(MetricJaroWinklerSimilarity, err)
	}
	a, b, err := resolved.tokenize(phrase1, phrase2)
	if err != nil {
		return 0, wrapError(MetricJaroWinklerSimilarity, err)
	}
	similarity, err := editdistance.JaroWinkler(a, b, resolved.P)
	return similarity, wrapError(MetricJaroWinklerSimilarity, err)
}
