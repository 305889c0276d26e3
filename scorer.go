package textdist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Pair of raw phrases scored together
type Pair struct {
	// ID is the position of the pair in its input (1-based line number for ParsePairs)
	ID      int
	Phrase1 string
	Phrase2 string
}

// Result of one metric for one pair
type Result struct {
	PairID  int     `yaml:"pair"`
	Metric  string  `yaml:"metric"`
	Kind    Kind    `yaml:"kind"`
	Value   float64 `yaml:"value"`
	Phrase1 string  `yaml:"phrase1"`
	Phrase2 string  `yaml:"phrase2"`
	Err     error   `yaml:"-"`
}

// FormatValue renders distances as integers and similarities with full precision
func (r *Result) FormatValue() string {
	if r.Kind == Distance {
		return strconv.Itoa(int(r.Value))
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Map returns the template variables of the result
func (r *Result) Map() map[string]interface{} {
	return map[string]interface{}{
		"metric":  r.Metric,
		"value":   r.FormatValue(),
		"phrase1": r.Phrase1,
		"phrase2": r.Phrase2,
		"kind":    string(r.Kind),
		"pair":    r.PairID,
	}
}

// Scorer Options
type ScorerOptions struct {
	// Metrics to compute, if empty DefaultConfig.Metrics is used
	Metrics []string
	// Options passed to every metric, if nil DefaultConfig.Options is used
	Options *Options
	// Workers scoring pairs concurrently (0 = number of cpus)
	Workers int
	// Template used by ExecuteWithWriter, if empty DefaultTemplate is used
	Template string
}

// Scorer computes a set of metrics over a stream of pairs
type Scorer struct {
	Options *ScorerOptions
	metrics []*Metric
}

// NewScorer validates opts and returns a scorer ready to execute
func NewScorer(opts *ScorerOptions) (*Scorer, error) {
	if opts == nil {
		opts = &ScorerOptions{}
	}
	if len(opts.Metrics) == 0 {
		if len(DefaultConfig.Metrics) == 0 {
			return nil, errorutil.NewWithTag("textdist", "something went wrong, `DefaultConfig.Metrics` and input metrics are empty")
		}
		opts.Metrics = DefaultConfig.Metrics
	}
	if opts.Options == nil {
		defaults := DefaultConfig.Options
		opts.Options = &defaults
	}
	if err := opts.Options.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if err := ValidateTemplate(opts.Template); err != nil {
		return nil, errorutil.NewWithTag("textdist", "invalid output template %q: %v", opts.Template, err)
	}

	s := &Scorer{Options: opts}
	names := make([]string, 0, len(opts.Metrics))
	for _, name := range opts.Metrics {
		m, err := GetMetric(name)
		if err != nil {
			return nil, err
		}
		names = append(names, m.Name)
	}
	// purge duplicates if any
	dedupe := sliceutil.Dedupe(names)
	if len(names) != len(dedupe) {
		gologger.Warning().Msgf("%v duplicate metrics found. purging them..", len(names)-len(dedupe))
	}
	for _, name := range dedupe {
		m, _ := GetMetric(name)
		s.metrics = append(s.metrics, m)
	}
	return s, nil
}

// Metrics returns the metrics computed by the scorer
func (s *Scorer) Metrics() []*Metric {
	return s.metrics
}

// ScorePair computes every metric for a single pair. Failing metrics
// carry their error in Result.Err.
func (s *Scorer) ScorePair(pair Pair) []*Result {
	results := make([]*Result, 0, len(s.metrics))
	for _, m := range s.metrics {
		value, err := m.Score(pair.Phrase1, pair.Phrase2, s.Options.Options)
		results = append(results, &Result{
			PairID:  pair.ID,
			Metric:  m.Name,
			Kind:    m.Kind,
			Value:   value,
			Phrase1: pair.Phrase1,
			Phrase2: pair.Phrase2,
			Err:     err,
		})
	}
	return results
}

// Execute scores all pairs read from the channel with a pool of workers and
// streams results. Results of a pair are sent together, pairs may finish out
// of order when more than one worker is used.
func (s *Scorer) Execute(ctx context.Context, pairs <-chan Pair) <-chan *Result {
	results := make(chan *Result, len(s.metrics)*s.Options.Workers)
	var wg sync.WaitGroup
	for w := 0; w < s.Options.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case pair, ok := <-pairs:
					if !ok {
						return
					}
					for _, result := range s.ScorePair(pair) {
						select {
						case <-ctx.Done():
							return
						case results <- result:
						}
					}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	return results
}

// ExecuteWithWriter executes Scorer and writes rendered results directly to type that implements io.Writer interface
func (s *Scorer) ExecuteWithWriter(Writer io.Writer, pairs <-chan Pair) error {
	if Writer == nil {
		return errorutil.NewWithTag("textdist", "writer destination cannot be nil")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for result := range s.Execute(ctx, pairs) {
		if result.Err != nil {
			gologger.Verbose().Msgf("skipping %v for pair %v: %v", result.Metric, result.PairID, result.Err)
			continue
		}
		if _, err := Writer.Write([]byte(Replace(s.Options.Template, result.Map()) + "\n")); err != nil {
			return err
		}
	}
	return nil
}

// StreamPairs sends pairs to the returned channel until all are sent or ctx is done
func StreamPairs(ctx context.Context, pairs []Pair) <-chan Pair {
	ch := make(chan Pair)
	go func() {
		defer close(ch)
		for _, pair := range pairs {
			select {
			case <-ctx.Done():
				return
			case ch <- pair:
			}
		}
	}()
	return ch
}

// ParsePairs reads one pair per line, phrases separated by a tab.
// Blank lines and lines starting with # are ignored.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, "\t")
		if len(parts) != 2 {
			return nil, wrapError("", fmt.Errorf("%w: line %d: expected 2 tab separated phrases, got %d fields", ErrInvalidArgument, line, len(parts)))
		}
		pairs = append(pairs, Pair{ID: line, Phrase1: parts[0], Phrase2: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
