package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/wordpass/wordpass-go/internal/crypto"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/wordlist"
)

// MaxBatch is the largest number of passphrases one request may ask for.
const MaxBatch = 20

var ErrCountOutOfRange = fmt.Errorf("%w: count must be between 1 and %d", crypto.ErrConfigOutOfRange, MaxBatch)

// DefaultsProvider supplies the configuration used for fields a request omits.
type DefaultsProvider interface {
	GenerationDefaults(ctx context.Context) (crypto.GenerationConfig, error)
}

// Recorder receives generation outcomes. *metrics.Metrics satisfies it.
type Recorder interface {
	RecordGeneration(strength string, bits float64)
	RecordGenerationError(reason string)
}

// GeneratorService handles passphrase generation business logic.
type GeneratorService struct {
	words    wordlist.WordList
	src      crypto.RandomSource
	defaults DefaultsProvider
	rec      Recorder
}

// NewGeneratorService creates a new GeneratorService. defaults and rec may
// be nil.
func NewGeneratorService(words wordlist.WordList, src crypto.RandomSource, defaults DefaultsProvider, rec Recorder) *GeneratorService {
	return &GeneratorService{
		words:    words,
		src:      src,
		defaults: defaults,
		rec:      rec,
	}
}

// Generate produces req.Count passphrases (one when unset) from the same
// resolved configuration.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxBatch {
		s.recordError(ErrCountOutOfRange)
		return model.GenerateResponse{}, ErrCountOutOfRange
	}

	cfg := s.resolve(ctx, req.WordCount, req.Separator, req.Capitalize, req.AddNumber, req.AddSymbol)

	resp := model.GenerateResponse{Passphrases: make([]string, 0, count)}
	for i := 0; i < count; i++ {
		result, err := crypto.Generate(s.words, cfg, s.src)
		if err != nil {
			s.recordError(err)
			return model.GenerateResponse{}, err
		}
		if s.rec != nil {
			s.rec.RecordGeneration(result.Strength.String(), result.EntropyBits)
		}
		resp.Passphrases = append(resp.Passphrases, result.Passphrase)
	}

	resp.Estimate = newEstimate(crypto.Entropy(cfg, s.words.Len()), s.words.Len())
	return resp, nil
}

// Estimate rates a configuration without generating a passphrase.
func (s *GeneratorService) Estimate(ctx context.Context, req model.GenerateRequest) (model.Estimate, error) {
	cfg := s.resolve(ctx, req.WordCount, req.Separator, req.Capitalize, req.AddNumber, req.AddSymbol)
	if err := cfg.Validate(); err != nil {
		return model.Estimate{}, err
	}
	if s.words.Len() == 0 {
		return model.Estimate{}, crypto.ErrWordListUnavailable
	}

	return newEstimate(crypto.Entropy(cfg, s.words.Len()), s.words.Len()), nil
}

// WordList describes the loaded word list.
func (s *GeneratorService) WordList() model.WordListResponse {
	resp := model.WordListResponse{
		Source: s.words.Source(),
		Size:   s.words.Len(),
	}
	if resp.Size > 0 {
		resp.BitsPerWord = math.Log2(float64(resp.Size))
	}
	return resp
}

// resolve starts from the stored defaults (or crypto.DefaultConfig when none
// are available) and applies every field the request sets.
func (s *GeneratorService) resolve(ctx context.Context, wordCount *int, sep *string, capitalize, number, symbol *bool) crypto.GenerationConfig {
	cfg := crypto.DefaultConfig()
	if s.defaults != nil {
		d, err := s.defaults.GenerationDefaults(ctx)
		if err != nil {
			slog.Warn("stored preferences unavailable, using defaults", "error", err)
		} else {
			cfg = d
		}
	}

	if wordCount != nil {
		cfg.WordCount = *wordCount
	}
	if sep != nil {
		cfg.Separator = *sep
	}
	if capitalize != nil {
		cfg.Capitalize = *capitalize
	}
	if number != nil {
		cfg.AddNumber = *number
	}
	if symbol != nil {
		cfg.AddSymbol = *symbol
	}

	return cfg
}

func (s *GeneratorService) recordError(err error) {
	if s.rec == nil {
		return
	}
	s.rec.RecordGenerationError(errorReason(err))
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, crypto.ErrConfigOutOfRange):
		return "config_out_of_range"
	case errors.Is(err, crypto.ErrWordListUnavailable):
		return "wordlist_unavailable"
	case errors.Is(err, crypto.ErrRandomSourceUnavailable):
		return "random_source_unavailable"
	default:
		return "internal"
	}
}

func newEstimate(bits float64, size int) model.Estimate {
	return model.Estimate{
		EntropyBits:     bits,
		Strength:        crypto.Rate(bits).String(),
		CrackTime:       crypto.CrackTime(bits),
		StrengthPercent: crypto.StrengthPercent(bits),
		Indicator:       crypto.Indicator(bits),
		WordListSize:    size,
	}
}
