package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wordpass/wordpass-go/internal/model"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

// preferencesRowID is the only row in the table: there is a single operator.
const preferencesRowID = 1

const preferencesSchema = `
	CREATE TABLE IF NOT EXISTS preferences (
		id             TINYINT UNSIGNED NOT NULL PRIMARY KEY,
		word_count     TINYINT UNSIGNED NOT NULL,
		word_separator VARCHAR(1)       NOT NULL,
		capitalize     BOOLEAN          NOT NULL DEFAULT FALSE,
		add_number     BOOLEAN          NOT NULL DEFAULT FALSE,
		add_symbol     BOOLEAN          NOT NULL DEFAULT FALSE,
		dark_theme     BOOLEAN          NOT NULL DEFAULT FALSE,
		updated_at     TIMESTAMP        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

const upsertPreferencesQuery = `
	INSERT INTO preferences (id, word_count, word_separator, capitalize, add_number, add_symbol, dark_theme)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		word_count     = VALUES(word_count),
		word_separator = VALUES(word_separator),
		capitalize     = VALUES(capitalize),
		add_number     = VALUES(add_number),
		add_symbol     = VALUES(add_symbol),
		dark_theme     = VALUES(dark_theme)`

// PreferencesRepository persists the operator's generation preferences.
type PreferencesRepository struct {
	db *sql.DB
}

// NewPreferencesRepository creates a new PreferencesRepository.
func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// EnsureSchema creates the preferences table if it does not exist yet.
func (r *PreferencesRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, preferencesSchema)
	return err
}

// Get returns the stored preferences or ErrPreferencesNotFound.
func (r *PreferencesRepository) Get(ctx context.Context) (*model.Preferences, error) {
	query := `SELECT word_count, word_separator, capitalize, add_number, add_symbol, dark_theme, updated_at
		FROM preferences WHERE id = ?`

	p := &model.Preferences{}
	err := r.db.QueryRowContext(ctx, query, preferencesRowID).Scan(
		&p.WordCount, &p.Separator, &p.Capitalize, &p.AddNumber, &p.AddSymbol, &p.DarkTheme, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}

	return p, nil
}

// Save inserts or replaces the stored preferences and stamps UpdatedAt.
func (r *PreferencesRepository) Save(ctx context.Context, p *model.Preferences) error {
	_, err := r.db.ExecContext(ctx, upsertPreferencesQuery,
		preferencesRowID,
		p.WordCount,
		p.Separator,
		p.Capitalize,
		p.AddNumber,
		p.AddSymbol,
		p.DarkTheme,
	)
	if err != nil {
		return err
	}

	p.UpdatedAt = time.Now().UTC()
	return nil
}
