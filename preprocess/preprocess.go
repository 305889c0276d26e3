package preprocess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/projectdiscovery/utils/errkit"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Grain is the unit a phrase is split into before comparison
type Grain string

const (
	// CharGrain compares phrases rune by rune
	CharGrain Grain = "char"
	// WordGrain compares phrases word by word
	WordGrain Grain = "word"
)

var (
	ErrInvalidGrain = errkit.New("invalid grain, expected char or word")
)

// Options controls which classes of characters are removed or transformed
// before a phrase is split into units.
type Options struct {
	// StripNonAlphanumeric removes everything that is not a letter, number or space
	StripNonAlphanumeric bool `yaml:"strip_non_alphanumeric"`
	// StripSpace removes all whitespace (char grain only)
	StripSpace bool `yaml:"strip_space"`
	// StripNumeric removes all numeric characters
	StripNumeric bool `yaml:"strip_numeric"`
	// Lowercase folds letters to lower case
	Lowercase bool `yaml:"lowercase"`
}

// DefaultOptions returns options with every normalization step enabled
func DefaultOptions() *Options {
	return &Options{
		StripNonAlphanumeric: true,
		StripSpace:           true,
		StripNumeric:         true,
		Lowercase:            true,
	}
}

// ParseGrain converts user input into a Grain
func ParseGrain(value string) (Grain, error) {
	switch g := Grain(strings.ToLower(strings.TrimSpace(value))); g {
	case CharGrain, WordGrain:
		return g, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidGrain, value)
}

// Word normalizes a single string. Steps run in a fixed order:
// non-alphanumeric removal, space removal, numeric removal and lowercasing.
//
// EXAMPLE:
//
//	"They have 5 length-2 common subsequences" → "theyhavelengthcommonsubsequences"
func Word(word string, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.StripNonAlphanumeric {
		word = strings.Map(func(r rune) rune {
			if isAlphanumeric(r) || unicode.IsSpace(r) {
				return r
			}
			return -1
		}, word)
	}
	if opts.StripSpace {
		word = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, word)
	}
	if opts.StripNumeric {
		word = strings.Map(func(r rune) rune {
			if unicode.IsNumber(r) {
				return -1
			}
			return r
		}, word)
	}
	if opts.Lowercase {
		// a Caser keeps state between calls so it is never shared
		word = cases.Lower(language.Und).String(word)
	}
	return word
}

// Sentence splits a string on whitespace and normalizes every word,
// dropping words that end up empty. Space stripping does not apply
// since words never contain whitespace after the split.
func Sentence(sentence string, opts *Options) []string {
	if opts == nil {
		opts = DefaultOptions()
	}
	wordOpts := *opts
	wordOpts.StripSpace = false

	fields := strings.Fields(sentence)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if w := Word(field, &wordOpts); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Phrase converts a raw phrase into the token sequence used by the metrics.
// Char grain yields one token per rune of the normalized phrase, word grain
// yields the normalized words.
func Phrase(phrase string, grain Grain, opts *Options) ([]string, error) {
	switch grain {
	case CharGrain:
		normalized := Word(phrase, opts)
		tokens := make([]string, 0, len(normalized))
		for _, r := range normalized {
			tokens = append(tokens, string(r))
		}
		return tokens, nil
	case WordGrain:
		return Sentence(phrase, opts), nil
	}
	return nil, fmt.Errorf("%w: got %q", ErrInvalidGrain, string(grain))
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
