package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	symbolChars = "!@#$%&*?+="

	MinWordCount     = 3
	MaxWordCount     = 8
	DefaultWordCount = 4

	DefaultSeparator = "-"
)

// Separators lists the supported separators in their menu order.
var Separators = []string{"-", ".", " ", ""}

var (
	ErrWordListUnavailable     = errors.New("word list unavailable")
	ErrRandomSourceUnavailable = errors.New("random source unavailable")
	ErrConfigOutOfRange        = errors.New("configuration out of range")

	ErrWordCountOutOfRange = fmt.Errorf("%w: word count must be between %d and %d", ErrConfigOutOfRange, MinWordCount, MaxWordCount)
	ErrInvalidSeparator    = fmt.Errorf("%w: separator must be one of \"-\", \".\", \" \" or \"\"", ErrConfigOutOfRange)
)

// WordSource is the read-only view of a word list the generator needs.
type WordSource interface {
	Len() int
	Word(i int) string
}

// GenerationConfig configures a single passphrase.
type GenerationConfig struct {
	WordCount  int
	Separator  string
	Capitalize bool
	AddNumber  bool
	AddSymbol  bool
}

// DefaultConfig returns four lowercase words joined by "-" with no suffixes.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		WordCount: DefaultWordCount,
		Separator: DefaultSeparator,
	}
}

// Validate reports ErrWordCountOutOfRange or ErrInvalidSeparator, both of
// which match ErrConfigOutOfRange.
func (c GenerationConfig) Validate() error {
	if c.WordCount < MinWordCount || c.WordCount > MaxWordCount {
		return ErrWordCountOutOfRange
	}
	if !IsValidSeparator(c.Separator) {
		return ErrInvalidSeparator
	}
	return nil
}

// Clamp pulls the word count into range and replaces an unsupported
// separator with DefaultSeparator.
func (c GenerationConfig) Clamp() GenerationConfig {
	c.WordCount = min(max(c.WordCount, MinWordCount), MaxWordCount)
	if !IsValidSeparator(c.Separator) {
		c.Separator = DefaultSeparator
	}
	return c
}

// IsValidSeparator reports whether sep is one of Separators.
func IsValidSeparator(sep string) bool {
	for _, s := range Separators {
		if s == sep {
			return true
		}
	}
	return false
}

// Result is a generated passphrase together with its strength estimate.
type Result struct {
	Passphrase  string
	EntropyBits float64
	Strength    Strength
	CrackTime   string
}

// Percent returns the strength-bar fill for the result, 0 to 100.
func (r Result) Percent() float64 { return StrengthPercent(r.EntropyBits) }

// Indicator returns the strength-bar colour for the result.
func (r Result) Indicator() string { return Indicator(r.EntropyBits) }

// Generate draws cfg.WordCount words from words with replacement and builds
// a passphrase from them.
//
// Each word index is a 32-bit value from src reduced modulo the list size.
// The slight bias toward low indices for sizes that do not divide 2^32 is
// accepted. The optional number and symbol are appended without a separator.
func Generate(words WordSource, cfg GenerationConfig, src RandomSource) (Result, error) {
	if words == nil || words.Len() == 0 {
		return Result{}, ErrWordListUnavailable
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if src == nil {
		return Result{}, ErrRandomSourceUnavailable
	}

	n := uint32(words.Len())
	selected := make([]string, cfg.WordCount)
	for i := range selected {
		v, err := src.Uint32()
		if err != nil {
			return Result{}, randomErr(err)
		}

		word := words.Word(int(v % n))
		if cfg.Capitalize {
			word = capitalize(word)
		}
		selected[i] = word
	}

	var b strings.Builder
	b.WriteString(strings.Join(selected, cfg.Separator))

	if cfg.AddNumber {
		v, err := src.Uint32()
		if err != nil {
			return Result{}, randomErr(err)
		}
		fmt.Fprintf(&b, "%02d", v%100)
	}

	if cfg.AddSymbol {
		v, err := src.Uint32()
		if err != nil {
			return Result{}, randomErr(err)
		}
		b.WriteByte(symbolChars[v%uint32(len(symbolChars))])
	}

	bits := Entropy(cfg, words.Len())

	return Result{
		Passphrase:  b.String(),
		EntropyBits: bits,
		Strength:    Rate(bits),
		CrackTime:   CrackTime(bits),
	}, nil
}

// capitalize uppercases the first byte of word if it is an ASCII letter.
func capitalize(word string) string {
	if word == "" || word[0] < 'a' || word[0] > 'z' {
		return word
	}
	return string(word[0]-('a'-'A')) + word[1:]
}

func randomErr(err error) error {
	if errors.Is(err, ErrRandomSourceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
}
