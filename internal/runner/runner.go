package runner

import (
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/textdist"
	errorutil "github.com/projectdiscovery/utils/errors"
)

type Options struct {
	Phrase1      string              // first phrase of a single pair
	Phrase2      string              // second phrase of a single pair
	List         string              // file of tab separated pairs
	Matrix       string              // file of phrases compared all against all
	Metrics      goflags.StringSlice // metrics to compute
	Grain        string
	N            int
	JaroWinklerP float64
	KeepPunct    bool
	KeepSpace    bool
	KeepNumeric  bool
	KeepCase     bool
	Output       string
	Format       string
	Template     string
	Config       string
	MetricConfig string
	Workers      int
	Dedupe       bool
	Verbose      bool
	Silent       bool
}

func ParseFlags() *Options {
	var jaroWinklerP string
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compute edit distance and vector similarity metrics between phrases.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVar(&opts.Phrase1, "p1", "", "first phrase to compare"),
		flagSet.StringVar(&opts.Phrase2, "p2", "", "second phrase to compare"),
		flagSet.StringVarP(&opts.List, "list", "l", "", "file of tab separated phrase pairs, one pair per line (stdin)"),
		flagSet.StringVar(&opts.Matrix, "matrix", "", "file of phrases, one per line, to compare all against all"),
		flagSet.BoolVarP(&opts.Dedupe, "dedupe", "dd", false, "score duplicate pairs only once (swapped phrases are duplicates)"),
	)

	flagSet.CreateGroup("metric", "Metric",
		flagSet.StringSliceVarP(&opts.Metrics, "metric", "m", nil, "metrics to compute (comma-separated, file) (default all)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Grain, "grain", "g", "", "compare phrases by char or word (default char for edit metrics, word for vector metrics)"),
		flagSet.IntVar(&opts.N, "n", 0, "n-gram size of vector metrics (default 1)"),
		flagSet.StringVar(&jaroWinklerP, "jw-p", "", "jaro-winkler prefix scaling factor within (0, 0.25) (default 0.1)"),
		flagSet.BoolVar(&opts.KeepPunct, "keep-punct", false, "keep punctuation and other non alphanumeric characters"),
		flagSet.BoolVar(&opts.KeepSpace, "keep-space", false, "keep whitespace when comparing by char"),
		flagSet.BoolVar(&opts.KeepNumeric, "keep-numeric", false, "keep numeric characters"),
		flagSet.BoolVar(&opts.KeepCase, "keep-case", false, "compare case sensitively"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write results"),
		flagSet.StringVarP(&opts.Format, "format", "f", "", "output format (table, yaml, template) (default table on terminal, template otherwise)"),
		flagSet.StringVarP(&opts.Template, "template", "t", "", "output template, variables: {{metric}} {{value}} {{kind}} {{phrase1}} {{phrase2}} {{pair}}"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display textdist version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `textdist cli config file (default '$HOME/.config/textdist/cli.yaml')`),
		flagSet.StringVar(&opts.MetricConfig, "mc", "", `textdist metric config file (default '$HOME/.config/textdist/config.yaml')`),
		flagSet.IntVarP(&opts.Workers, "workers", "c", 0, "number of pairs scored concurrently (default number of cpus)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if len(jaroWinklerP) > 0 {
		p, err := parseScale(jaroWinklerP)
		if err != nil {
			gologger.Fatal().Msgf("Could not parse jw-p: %s\n", err)
		}
		opts.JaroWinklerP = p
	}

	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("textdist: %s", err)
	}
	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

func parseScale(value string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errorutil.NewWithTag("textdist", "%v: %q is not a number", textdist.ErrInvalidArgument, value)
	}
	if !(p > 0 && p < 0.25) {
		return 0, errorutil.NewWithTag("textdist", "%v: got %v", textdist.ErrInvalidParameterRange, p)
	}
	return p, nil
}

// validate checks that exactly one input mode is selected
func (o *Options) validate() error {
	modes := 0
	if o.Phrase1 != "" || o.Phrase2 != "" {
		if o.Phrase1 == "" || o.Phrase2 == "" {
			return errorutil.NewWithTag("textdist", "both -p1 and -p2 are required")
		}
		modes++
	}
	if o.List != "" {
		modes++
	}
	if o.Matrix != "" {
		modes++
	}
	if modes > 1 {
		return errorutil.NewWithTag("textdist", "-p1/-p2, -list and -matrix are mutually exclusive")
	}
	if o.N < 0 {
		return errorutil.NewWithTag("textdist", "%v: n must be at least 1, got %d", textdist.ErrInvalidArgument, o.N)
	}
	switch o.Format {
	case "", FormatTable, FormatYAML, FormatTemplate:
	default:
		return errorutil.NewWithTag("textdist", "%v: unknown format %q, expected one of table, yaml, template", textdist.ErrInvalidArgument, o.Format)
	}
	return nil
}
