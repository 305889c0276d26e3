package textdist

import (
	"github.com/projectdiscovery/textdist/editdistance"
	"github.com/projectdiscovery/textdist/preprocess"
)

// Options shared by all metrics. Zero values select the defaults.
type Options struct {
	// Grain of comparison, when empty edit metrics use char and vector metrics use word
	Grain preprocess.Grain `yaml:"grain,omitempty"`
	// Preprocess flags, when nil every normalization step is enabled
	Preprocess *preprocess.Options `yaml:"preprocess,omitempty"`
	// N is the n-gram size of vector metrics (default 1)
	N int `yaml:"n,omitempty"`
	// P is the jaro-winkler prefix scaling factor (default 0.1)
	P float64 `yaml:"p,omitempty"`
}

// DefaultOptions returns options with every default spelled out
func DefaultOptions() *Options {
	return &Options{
		Preprocess: preprocess.DefaultOptions(),
		N:          1,
		P:          editdistance.DefaultWinklerScale,
	}
}

// withDefaults returns a copy of opts with unset fields filled in
func (o *Options) withDefaults(grain preprocess.Grain) Options {
	resolved := Options{}
	if o != nil {
		resolved = *o
	}
	if resolved.Grain == "" {
		resolved.Grain = grain
	}
	if resolved.Preprocess == nil {
		resolved.Preprocess = preprocess.DefaultOptions()
	}
	if resolved.N == 0 {
		resolved.N = 1
	}
	if resolved.P == 0 {
		resolved.P = editdistance.DefaultWinklerScale
	}
	return resolved
}

// tokenize preprocesses both phrases with the resolved options
func (o Options) tokenize(phrase1, phrase2 string) ([]string, []string, error) {
	a, err := preprocess.Phrase(phrase1, o.Grain, o.Preprocess)
	if err != nil {
		return nil, nil, err
	}
	b, err := preprocess.Phrase(phrase2, o.Grain, o.Preprocess)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
