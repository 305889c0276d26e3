package runner

import (
	"context"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/textdist"
	"github.com/projectdiscovery/textdist/preprocess"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Runner scores the pairs or phrases selected by the cli options
type Runner struct {
	options *Options
	scorer  *textdist.Scorer
	output  io.WriteCloser
	format  string
}

// New resolves metric options from the metric config and the cli flags
func New(options *Options) (*Runner, error) {
	cfg, err := loadMetricConfig(options.MetricConfig)
	if err != nil {
		return nil, errorutil.NewWithTag("textdist", "failed to read metric config got %v", err)
	}
	metricOpts, err := options.metricOptions(cfg.Options)
	if err != nil {
		return nil, err
	}
	metrics := []string(options.Metrics)
	if len(metrics) == 0 {
		metrics = cfg.Metrics
	}
	scorer, err := textdist.NewScorer(&textdist.ScorerOptions{
		Metrics:  metrics,
		Options:  metricOpts,
		Workers:  options.Workers,
		Template: options.Template,
	})
	if err != nil {
		return nil, err
	}
	output, err := openOutput(options.Output)
	if err != nil {
		return nil, err
	}
	return &Runner{
		options: options,
		scorer:  scorer,
		output:  output,
		format:  resolveFormat(options.Format, options.Template, output),
	}, nil
}

// metricOptions overrides the config options with the flags that were set
func (o *Options) metricOptions(base textdist.Options) (*textdist.Options, error) {
	resolved := base
	if o.Grain != "" {
		grain, err := preprocess.ParseGrain(o.Grain)
		if err != nil {
			return nil, err
		}
		resolved.Grain = grain
	}
	if o.N > 0 {
		resolved.N = o.N
	}
	if o.JaroWinklerP > 0 {
		resolved.P = o.JaroWinklerP
	}
	flags := preprocess.DefaultOptions()
	if base.Preprocess != nil {
		copied := *base.Preprocess
		flags = &copied
	}
	if o.KeepPunct {
		flags.StripNonAlphanumeric = false
	}
	if o.KeepSpace {
		flags.StripSpace = false
	}
	if o.KeepNumeric {
		flags.StripNumeric = false
	}
	if o.KeepCase {
		flags.Lowercase = false
	}
	resolved.Preprocess = flags
	return &resolved, resolved.Validate()
}

// Run scores the input and writes results
func (r *Runner) Run() error {
	if r.options.Matrix != "" {
		phrases, err := readPhrases(r.options.Matrix)
		if err != nil {
			return err
		}
		return r.runMatrix(phrases)
	}
	pairs, err := r.readPairs()
	if err != nil {
		return err
	}
	gologger.Verbose().Msgf("scoring %d pairs with %d metrics", len(pairs), len(r.scorer.Metrics()))
	return r.runPairs(pairs)
}

// Close closes the output file
func (r *Runner) Close() {
	if r.output != nil {
		_ = r.output.Close()
	}
}

func (r *Runner) readPairs() ([]textdist.Pair, error) {
	switch {
	case r.options.Phrase1 != "":
		return []textdist.Pair{{ID: 1, Phrase1: r.options.Phrase1, Phrase2: r.options.Phrase2}}, nil
	case r.options.List != "":
		if !fileutil.FileExists(r.options.List) {
			return nil, errorutil.NewWithTag("textdist", "list file %v does not exist", r.options.List)
		}
		f, err := os.Open(r.options.List)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return textdist.ParsePairs(f)
	case fileutil.HasStdin():
		return textdist.ParsePairs(os.Stdin)
	}
	return nil, errorutil.NewWithTag("textdist", "no input found")
}

func (r *Runner) runPairs(pairs []textdist.Pair) error {
	ctx := context.Background()
	stream := textdist.StreamPairs(ctx, pairs)
	if r.options.Dedupe {
		byteLen := 0
		for _, pair := range pairs {
			byteLen += len(pair.Phrase1) + len(pair.Phrase2)
		}
		stream = textdist.NewDedupe(stream, byteLen).Pairs()
	}
	if r.format == FormatTemplate {
		return r.scorer.ExecuteWithWriter(r.output, stream)
	}
	var results []*textdist.Result
	for result := range r.scorer.Execute(ctx, stream) {
		if result.Err != nil {
			gologger.Warning().Msgf("skipping %v for pair %v: %v", result.Metric, result.PairID, result.Err)
			continue
		}
		results = append(results, result)
	}
	sortResults(results, r.scorer.Metrics())
	if r.format == FormatYAML {
		return writeResultsYAML(r.output, results)
	}
	return writeResultsTable(r.output, results)
}

func (r *Runner) runMatrix(phrases []string) error {
	var matrices []*textdist.Matrix
	for _, metric := range r.scorer.Metrics() {
		mx, err := textdist.NewMatrix(metric.Name, phrases, r.scorer.Options.Options)
		if err != nil {
			return err
		}
		if err := mx.PrecomputeParallel(context.Background(), r.scorer.Options.Workers); err != nil {
			gologger.Warning().Msgf("skipping %v: %v", metric.Name, err)
			continue
		}
		matrices = append(matrices, mx)
	}
	switch r.format {
	case FormatYAML:
		return writeMatricesYAML(r.output, matrices)
	case FormatTemplate:
		return writeMatricesTemplate(r.output, matrices, r.scorer.Options.Template)
	}
	return writeMatricesTable(r.output, matrices)
}

// sortResults orders results by pair then by metric registration order
func sortResults(results []*textdist.Result, metrics []*textdist.Metric) {
	order := make(map[string]int, len(metrics))
	for i, m := range metrics {
		order[m.Name] = i
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].PairID != results[j].PairID {
			return results[i].PairID < results[j].PairID
		}
		return order[results[i].Metric] < order[results[j].Metric]
	})
}

func readPhrases(path string) ([]string, error) {
	if !fileutil.FileExists(path) {
		return nil, errorutil.NewWithTag("textdist", "matrix file %v does not exist", path)
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var phrases []string
	for _, line := range strings.Split(string(bin), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			phrases = append(phrases, line)
		}
	}
	if len(phrases) < 2 {
		return nil, errorutil.NewWithTag("textdist", "matrix file %v needs at least 2 phrases", path)
	}
	return phrases, nil
}
