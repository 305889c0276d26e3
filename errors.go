package textdist

import (
	"fmt"

	"github.com/projectdiscovery/textdist/editdistance"
	"github.com/projectdiscovery/textdist/preprocess"
	"github.com/projectdiscovery/textdist/vector"
)

// Errors returned by the metrics, match them with errors.Is
var (
	// ErrInvalidArgument is returned for out of domain arguments such as n < 1 or an unknown metric
	ErrInvalidArgument = vector.ErrInvalidArgument
	// ErrInvalidGrain is returned when grain is neither char nor word
	ErrInvalidGrain = preprocess.ErrInvalidGrain
	// ErrLengthMismatch is returned by hamming metrics for phrases of different length
	ErrLengthMismatch = editdistance.ErrLengthMismatch
	// ErrInsufficientLength is returned when a phrase has fewer tokens than the n-gram size
	ErrInsufficientLength = vector.ErrInsufficientLength
	// ErrInvalidParameterRange is returned when the jaro-winkler scaling factor is outside (0, 0.25)
	ErrInvalidParameterRange = editdistance.ErrInvalidParameterRange
)

// MetricError wraps a failure with the metric that produced it
type MetricError struct {
	Metric string
	Err    error
}

// Error implements the error interface
func (e *MetricError) Error() string {
	if e.Metric == "" {
		return fmt.Sprintf("textdist: %v", e.Err)
	}
	return fmt.Sprintf("textdist: %s: %v", e.Metric, e.Err)
}

// Unwrap returns the underlying error
func (e *MetricError) Unwrap() error {
	return e.Err
}

func wrapError(metric string, err error) error {
	if err == nil {
		return nil
	}
	return &MetricError{Metric: metric, Err: err}
}
