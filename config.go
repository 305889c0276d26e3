package textdist

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/projectdiscovery/textdist/preprocess"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var DefaultConfigBin []byte

// DefaultConfig is loaded from the embedded config.yaml and may be replaced
// by the user config at startup
var DefaultConfig Config

func init() {
	if err := yaml.Unmarshal(DefaultConfigBin, &DefaultConfig); err != nil {
		panic(fmt.Sprintf("textdist: invalid embedded config: %v", err))
	}
}

type Config struct {
	Metrics []string `yaml:"metrics"`
	Options Options  `yaml:"options"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks metric names and option ranges. Duplicate metric names are
// purged.
func (c *Config) Validate() error {
	for i, name := range c.Metrics {
		m, err := GetMetric(name)
		if err != nil {
			return err
		}
		c.Metrics[i] = m.Name
	}
	c.Metrics = sliceutil.Dedupe(c.Metrics)
	return c.Options.Validate()
}

// Validate checks option values without running a metric
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if o.Grain != "" && o.Grain != preprocess.CharGrain && o.Grain != preprocess.WordGrain {
		return wrapError("", fmt.Errorf("%w: got %q", ErrInvalidGrain, o.Grain))
	}
	if o.N < 0 {
		return wrapError("", fmt.Errorf("%w: n must be at least 1, got %d", ErrInvalidArgument, o.N))
	}
	if o.P != 0 && !(o.P > 0 && o.P < 0.25) {
		return wrapError("", fmt.Errorf("%w: p must be within (0, 0.25), got %v", ErrInvalidParameterRange, o.P))
	}
	return nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	cfg := Config{
		Metrics: MetricNames(),
		Options: *DefaultOptions(),
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
