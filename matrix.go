package textdist

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Matrix provides memoized pairwise scores of a fixed list of phrases.
// Every metric is symmetric so (i, j) and (j, i) share one entry and only
// n*(n-1)/2 scores are ever computed. Memory usage is O(n²).
type Matrix struct {
	metric  *Metric
	opts    *Options
	phrases []string

	memo map[cell]float64 // lower index first
	mu   sync.RWMutex
}

type cell struct {
	i, j int
}

// makeCell orders indexes so (i, j) and (j, i) use same key
func makeCell(i, j int) cell {
	if i <= j {
		return cell{i, j}
	}
	return cell{j, i}
}

// NewMatrix creates a matrix of phrases scored with metric
func NewMatrix(metric string, phrases []string, opts *Options) (*Matrix, error) {
	m, err := GetMetric(metric)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Matrix{
		metric:  m,
		opts:    opts,
		phrases: phrases,
		memo:    make(map[cell]float64),
	}, nil
}

// Metric returns the metric used to fill the matrix
func (mx *Matrix) Metric() *Metric {
	return mx.metric
}

// Phrases returns the phrases indexing rows and columns
func (mx *Matrix) Phrases() []string {
	return mx.phrases
}

// Score returns the score of phrases i and j, computing and caching it on first use.
// Out of range indexes panic like slice access does.
func (mx *Matrix) Score(i, j int) (float64, error) {
	key := makeCell(i, j)

	mx.mu.RLock()
	if value, exists := mx.memo[key]; exists {
		mx.mu.RUnlock()
		return value, nil
	}
	mx.mu.RUnlock()

	value, err := mx.metric.Score(mx.phrases[key.i], mx.phrases[key.j], mx.opts)
	if err != nil {
		return 0, err
	}

	mx.mu.Lock()
	mx.memo[key] = value
	mx.mu.Unlock()
	return value, nil
}

// Size returns the number of cached scores
func (mx *Matrix) Size() int {
	mx.mu.RLock()
	defer mx.mu.RUnlock()
	return len(mx.memo)
}

// Clear removes all cached scores
func (mx *Matrix) Clear() {
	mx.mu.Lock()
	defer mx.mu.Unlock()
	mx.memo = make(map[cell]float64)
}

// Precompute fills the upper triangle of the matrix including the diagonal
func (mx *Matrix) Precompute() error {
	for i := range mx.phrases {
		for j := i; j < len(mx.phrases); j++ {
			if _, err := mx.Score(i, j); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrecomputeParallel is Precompute spread over workers goroutines, one row per task.
// It stops at the first error.
func (mx *Matrix) PrecomputeParallel(ctx context.Context, workers int) error {
	if workers <= 0 {
		workers = 4
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range mx.phrases {
		row := i
		g.Go(func() error {
			for j := row; j < len(mx.phrases); j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := mx.Score(row, j); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Rows returns the full n×n matrix
func (mx *Matrix) Rows() ([][]float64, error) {
	if err := mx.Precompute(); err != nil {
		return nil, err
	}
	n := len(mx.phrases)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			// cached by Precompute
			rows[i][j], _ = mx.Score(i, j)
		}
	}
	return rows, nil
}
