package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projectdiscovery/textdist"
	"github.com/projectdiscovery/textdist/preprocess"
	"github.com/stretchr/testify/require"
)

func TestValidateOptions(t *testing.T) {
	testcases := []struct {
		name  string
		opts  Options
		valid bool
	}{
		{"pair", Options{Phrase1: "a", Phrase2: "b"}, true},
		{"half-pair", Options{Phrase1: "a"}, false},
		{"list", Options{List: "pairs.txt", Format: FormatYAML}, true},
		{"exclusive", Options{Phrase1: "a", Phrase2: "b", Matrix: "phrases.txt"}, false},
		{"negative-n", Options{List: "pairs.txt", N: -1}, false},
		{"format", Options{List: "pairs.txt", Format: "json"}, false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.validate()
			if tc.valid {
				require.Nil(t, err)
			} else {
				require.NotNil(t, err)
			}
		})
	}
}

func TestParseScale(t *testing.T) {
	p, err := parseScale(" 0.2 ")
	require.Nil(t, err)
	require.Equal(t, 0.2, p)

	_, err = parseScale("0.25")
	require.NotNil(t, err)
	_, err = parseScale("abc")
	require.NotNil(t, err)
}

func TestMetricOptions(t *testing.T) {
	opts := &Options{Grain: "WORD", N: 2, KeepCase: true, KeepNumeric: true}
	resolved, err := opts.metricOptions(textdist.Options{P: 0.2})
	require.Nil(t, err)
	require.Equal(t, preprocess.WordGrain, resolved.Grain)
	require.Equal(t, 2, resolved.N)
	require.Equal(t, 0.2, resolved.P)
	require.Equal(t, &preprocess.Options{StripNonAlphanumeric: true, StripSpace: true}, resolved.Preprocess)

	base := textdist.Options{Preprocess: &preprocess.Options{Lowercase: true}}
	resolved, err = (&Options{KeepCase: true}).metricOptions(base)
	require.Nil(t, err)
	require.False(t, resolved.Preprocess.Lowercase)
	// the config options are left untouched
	require.True(t, base.Preprocess.Lowercase)

	_, err = (&Options{Grain: "sentence"}).metricOptions(textdist.Options{})
	require.ErrorIs(t, err, textdist.ErrInvalidGrain)
}

func TestResolveFormat(t *testing.T) {
	var buff bytes.Buffer
	require.Equal(t, FormatYAML, resolveFormat(FormatYAML, "", &buff))
	require.Equal(t, FormatTemplate, resolveFormat("", "{{value}}", &buff))
	require.Equal(t, FormatTemplate, resolveFormat("", "", &buff))
}

func TestWriteResults(t *testing.T) {
	s, err := textdist.NewScorer(&textdist.ScorerOptions{
		Metrics: []string{textdist.MetricLevenshteinDistance, textdist.MetricLevenshteinSimilarity},
		Workers: 1,
	})
	require.Nil(t, err)
	results := append(
		s.ScorePair(textdist.Pair{ID: 2, Phrase1: "kitten", Phrase2: "sitting"}),
		s.ScorePair(textdist.Pair{ID: 1, Phrase1: "martha", Phrase2: "marhta"})...,
	)
	sortResults(results, s.Metrics())
	require.Equal(t, 1, results[0].PairID)
	require.Equal(t, textdist.MetricLevenshteinDistance, results[0].Metric)
	require.Equal(t, 2, results[3].PairID)
	require.Equal(t, textdist.MetricLevenshteinSimilarity, results[3].Metric)

	var buff bytes.Buffer
	require.Nil(t, writeResultsTable(&buff, results))
	require.Contains(t, buff.String(), "levenshtein_distance")
	require.Contains(t, buff.String(), "METRIC")

	buff.Reset()
	require.Nil(t, writeResultsYAML(&buff, results))
	require.Contains(t, buff.String(), "metric: levenshtein_distance")
	require.Contains(t, buff.String(), "phrase1: kitten")
	require.NotContains(t, buff.String(), "err")
}

func TestWriteMatrices(t *testing.T) {
	mx, err := textdist.NewMatrix(textdist.MetricLevenshteinDistance, []string{"martha", "marhta", "kitten"}, nil)
	require.Nil(t, err)
	matrices := []*textdist.Matrix{mx}

	var buff bytes.Buffer
	require.Nil(t, writeMatricesTemplate(&buff, matrices, "{{pair}} {{phrase1}} {{phrase2}} {{value}}"))
	lines := strings.Split(strings.TrimSpace(buff.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "2 martha marhta 2", lines[0])

	buff.Reset()
	require.Nil(t, writeMatricesYAML(&buff, matrices))
	require.Contains(t, buff.String(), "metric: levenshtein_distance")

	buff.Reset()
	require.Nil(t, writeMatricesTable(&buff, matrices))
	require.Contains(t, buff.String(), "1 martha")
}

func TestReadPhrases(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "phrases.txt")
	require.Nil(t, os.WriteFile(file, []byte("martha\n\n  marhta \n"), 0600))
	phrases, err := readPhrases(file)
	require.Nil(t, err)
	require.Equal(t, []string{"martha", "marhta"}, phrases)

	single := filepath.Join(dir, "single.txt")
	require.Nil(t, os.WriteFile(single, []byte("martha\n"), 0600))
	_, err = readPhrases(single)
	require.NotNil(t, err)

	_, err = readPhrases(filepath.Join(dir, "missing.txt"))
	require.NotNil(t, err)
}
