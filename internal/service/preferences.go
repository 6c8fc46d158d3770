package service

import (
	"context"
	"errors"

	"github.com/wordpass/wordpass-go/internal/crypto"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/repository"
)

// PreferencesStore is the persistence used by PreferencesService.
// *repository.PreferencesRepository satisfies it.
type PreferencesStore interface {
	Get(ctx context.Context) (*model.Preferences, error)
	Save(ctx context.Context, p *model.Preferences) error
}

// PreferencesService handles reading and updating operator preferences.
type PreferencesService struct {
	store PreferencesStore
}

// NewPreferencesService creates a new PreferencesService.
func NewPreferencesService(store PreferencesStore) *PreferencesService {
	return &PreferencesService{store: store}
}

// DefaultPreferences returns the factory preferences.
func DefaultPreferences() model.Preferences {
	d := crypto.DefaultConfig()
	return model.Preferences{
		WordCount:  d.WordCount,
		Separator:  d.Separator,
		Capitalize: d.Capitalize,
		AddNumber:  d.AddNumber,
		AddSymbol:  d.AddSymbol,
	}
}

// Get returns the stored preferences, or the defaults if none were saved.
func (s *PreferencesService) Get(ctx context.Context) (model.Preferences, error) {
	p, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return DefaultPreferences(), nil
		}
		return model.Preferences{}, err
	}
	return *p, nil
}

// Update applies the set fields of req to the stored preferences. The
// result must be a valid generation config.
func (s *PreferencesService) Update(ctx context.Context, req model.PreferencesRequest) (model.Preferences, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return model.Preferences{}, err
	}

	if req.WordCount != nil {
		p.WordCount = *req.WordCount
	}
	if req.Separator != nil {
		p.Separator = *req.Separator
	}
	if req.Capitalize != nil {
		p.Capitalize = *req.Capitalize
	}
	if req.AddNumber != nil {
		p.AddNumber = *req.AddNumber
	}
	if req.AddSymbol != nil {
		p.AddSymbol = *req.AddSymbol
	}
	if req.DarkTheme != nil {
		p.DarkTheme = *req.DarkTheme
	}

	if err := generationConfig(p).Validate(); err != nil {
		return model.Preferences{}, err
	}

	if err := s.store.Save(ctx, &p); err != nil {
		return model.Preferences{}, err
	}
	return p, nil
}

// Reset stores and returns the defaults.
func (s *PreferencesService) Reset(ctx context.Context) (model.Preferences, error) {
	p := DefaultPreferences()
	if err := s.store.Save(ctx, &p); err != nil {
		return model.Preferences{}, err
	}
	return p, nil
}

// GenerationDefaults returns the stored preferences as a generation config.
func (s *PreferencesService) GenerationDefaults(ctx context.Context) (crypto.GenerationConfig, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return crypto.GenerationConfig{}, err
	}

	cfg := generationConfig(p)
	if err := cfg.Validate(); err != nil {
		return crypto.GenerationConfig{}, err
	}
	return cfg, nil
}

func generationConfig(p model.Preferences) crypto.GenerationConfig {
	return crypto.GenerationConfig{
		WordCount:  p.WordCount,
		Separator:  p.Separator,
		Capitalize: p.Capitalize,
		AddNumber:  p.AddNumber,
		AddSymbol:  p.AddSymbol,
	}
}
