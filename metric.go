package textdist

import (
	"fmt"
	"strings"
)

// Metric names as accepted by GetMetric, the config file and the cli
const (
	MetricLevenshteinDistance          = "levenshtein_distance"
	MetricLevenshteinSimilarity        = "levenshtein_similarity"
	MetricDamerauLevenshteinDistance   = "damerau_levenshtein_distance"
	MetricDamerauLevenshteinSimilarity = "damerau_levenshtein_similarity"
	MetricLCSDistance                  = "lcs_distance"
	MetricLCSSimilarity                = "lcs_similarity"
	MetricHammingDistance              = "hamming_distance"
	MetricHammingSimilarity            = "hamming_similarity"
	MetricJaroSimilarity               = "jaro_similarity"
	MetricJaroWinklerSimilarity        = "jaro_winkler_similarity"
	MetricCosineSimilarity             = "cosine_similarity"
	MetricJaccardSimilarity            = "jaccard_similarity"
	MetricSorensenDiceSimilarity       = "sorensen_dice_similarity"
	MetricQGramSimilarity              = "qgram_similarity"
)

// Kind tells whether a score is a distance or a similarity
type Kind string

const (
	// Distance scores are non-negative integers, 0 means identical
	Distance Kind = "distance"
	// Similarity scores lie in [0, 1], 1 means identical
	Similarity Kind = "similarity"
)

// Engine groups metrics by the family of algorithms they belong to
type Engine string

const (
	EditEngine   Engine = "edit"
	VectorEngine Engine = "vector"
)

// ScoreFunc computes a metric for two raw phrases
type ScoreFunc func(phrase1, phrase2 string, opts *Options) (float64, error)

// Metric describes a registered metric
type Metric struct {
	Name   string
	Kind   Kind
	Engine Engine
	score  ScoreFunc
}

// Score computes the metric for two phrases. Distances are returned as
// whole numbers converted to float64.
func (m *Metric) Score(phrase1, phrase2 string, opts *Options) (float64, error) {
	return m.score(phrase1, phrase2, opts)
}

func fromDistance(fn func(phrase1, phrase2 string, opts *Options) (int, error)) ScoreFunc {
	return func(phrase1, phrase2 string, opts *Options) (float64, error) {
		d, err := fn(phrase1, phrase2, opts)
		return float64(d), err
	}
}

// registry in display order
var registry = []*Metric{
	{Name: MetricLevenshteinDistance, Kind: Distance, Engine: EditEngine, score: fromDistance(LevenshteinDistance)},
	{Name: MetricLevenshteinSimilarity, Kind: Similarity, Engine: EditEngine, score: LevenshteinSimilarity},
	{Name: MetricDamerauLevenshteinDistance, Kind: Distance, Engine: EditEngine, score: fromDistance(DamerauLevenshteinDistance)},
	{Name: MetricDamerauLevenshteinSimilarity, Kind: Similarity, Engine: EditEngine, score: DamerauLevenshteinSimilarity},
	{Name: MetricLCSDistance, Kind: Distance, Engine: EditEngine, score: fromDistance(LCSDistance)},
	{Name: MetricLCSSimilarity, Kind: Similarity, Engine: EditEngine, score: LCSSimilarity},
	{Name: MetricHammingDistance, Kind: Distance, Engine: EditEngine, score: fromDistance(HammingDistance)},
	{Name: MetricHammingSimilarity, Kind: Similarity, Engine: EditEngine, score: HammingSimilarity},
	{Name: MetricJaroSimilarity, Kind: Similarity, Engine: EditEngine, score: JaroSimilarity},
	{Name: MetricJaroWinklerSimilarity, Kind: Similarity, Engine: EditEngine, score: JaroWinklerSimilarity},
	{Name: MetricCosineSimilarity, Kind: Similarity, Engine: VectorEngine, score: CosineSimilarity},
	{Name: MetricJaccardSimilarity, Kind: Similarity, Engine: VectorEngine, score: JaccardSimilarity},
	{Name: MetricSorensenDiceSimilarity, Kind: Similarity, Engine: VectorEngine, score: SorensenDiceSimilarity},
	{Name: MetricQGramSimilarity, Kind: Similarity, Engine: VectorEngine, score: QGramSimilarity},
}

// Metrics returns every registered metric
func Metrics() []*Metric {
	all := make([]*Metric, len(registry))
	copy(all, registry)
	return all
}

// MetricNames returns the names of every registered metric
func MetricNames() []string {
	names := make([]string, 0, len(registry))
	for _, m := range registry {
		names = append(names, m.Name)
	}
	return names
}

// GetMetric looks a metric up by name. Names are case insensitive and
// dashes are accepted in place of underscores.
func GetMetric(name string) (*Metric, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, m := range registry {
		if m.Name == normalized {
			return m, nil
		}
	}
	return nil, wrapError(name, fmt.Errorf("%w: unknown metric, expected one of %s", ErrInvalidArgument, strings.Join(MetricNames(), ", ")))
}
