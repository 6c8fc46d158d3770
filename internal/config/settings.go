package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wordpass/wordpass-go/internal/crypto"
)

const settingsName = "wordpass"

var ErrInvalidSeparator = errors.New("unknown separator")

// Settings are the CLI preferences persisted between runs.
type Settings struct {
	WordCount    int    `mapstructure:"word_count" yaml:"word_count"`
	Separator    string `mapstructure:"separator" yaml:"separator"`
	Capitalize   bool   `mapstructure:"capitalize" yaml:"capitalize"`
	AddNumber    bool   `mapstructure:"add_number" yaml:"add_number"`
	AddSymbol    bool   `mapstructure:"add_symbol" yaml:"add_symbol"`
	DarkTheme    bool   `mapstructure:"dark_theme" yaml:"dark_theme"`
	WordListPath string `mapstructure:"wordlist" yaml:"wordlist,omitempty"`
}

// DefaultSettings mirrors crypto.DefaultConfig with the light theme.
func DefaultSettings() Settings {
	d := crypto.DefaultConfig()
	return Settings{
		WordCount:  d.WordCount,
		Separator:  d.Separator,
		Capitalize: d.Capitalize,
		AddNumber:  d.AddNumber,
		AddSymbol:  d.AddSymbol,
	}
}

// GenerationConfig returns the engine config these settings describe.
func (s Settings) GenerationConfig() crypto.GenerationConfig {
	return crypto.GenerationConfig{
		WordCount:  s.WordCount,
		Separator:  s.Separator,
		Capitalize: s.Capitalize,
		AddNumber:  s.AddNumber,
		AddSymbol:  s.AddSymbol,
	}
}

// settingsFlags maps settings keys to the cobra flag that overrides them.
var settingsFlags = map[string]string{
	"word_count": "words",
	"separator":  "separator",
	"capitalize": "capitalize",
	"add_number": "number",
	"add_symbol": "symbol",
	"wordlist":   "wordlist",
}

// SettingsPath returns the per-user settings file location.
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, settingsName, settingsName+".yaml"), nil
}

// LoadSettings resolves settings from defaults, the settings file, WORDPASS_*
// environment variables and changed flags on cmd, in increasing precedence.
// An explicit path replaces the default file location. A missing file is not
// an error.
func LoadSettings(cmd *cobra.Command, path string) (Settings, error) {
	var s Settings
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("word_count", defaults.WordCount)
	v.SetDefault("separator", defaults.Separator)
	v.SetDefault("capitalize", defaults.Capitalize)
	v.SetDefault("add_number", defaults.AddNumber)
	v.SetDefault("add_symbol", defaults.AddSymbol)
	v.SetDefault("dark_theme", defaults.DarkTheme)
	v.SetDefault("wordlist", "")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(settingsName)
		if p, err := SettingsPath(); err == nil {
			v.AddConfigPath(filepath.Dir(p))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("read settings: %w", err)
		}
	}

	v.SetEnvPrefix(settingsName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if cmd != nil {
		for key, name := range settingsFlags {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return s, err
				}
			}
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}

	sep, err := ParseSeparator(s.Separator)
	if err != nil {
		return s, err
	}
	s.Separator = sep

	return s, nil
}

// SaveSettings writes s as YAML to path, or to SettingsPath when path is
// empty. The file is created with mode 0600.
func SaveSettings(s Settings, path string) error {
	if path == "" {
		p, err := SettingsPath()
		if err != nil {
			return err
		}
		path = p
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", dir, err)
	}

	return os.WriteFile(path, data, 0600)
}

// ParseSeparator accepts a separator name (dash, dot, space, none) or the
// literal separator and returns the literal.
func ParseSeparator(s string) (string, error) {
	switch strings.ToLower(s) {
	case "dash", "hyphen":
		return "-", nil
	case "dot", "period":
		return ".", nil
	case "space":
		return " ", nil
	case "none", "":
		return "", nil
	}
	if crypto.IsValidSeparator(s) {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q (want dash, dot, space or none)", ErrInvalidSeparator, s)
}
