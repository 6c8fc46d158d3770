package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/wordpass/wordpass-go/internal/config"
	"github.com/wordpass/wordpass-go/internal/crypto"
	"github.com/wordpass/wordpass-go/internal/model"
	"github.com/wordpass/wordpass-go/internal/service"
	"github.com/wordpass/wordpass-go/internal/wordlist"
)

type generateOptions struct {
	words      int
	separator  string
	capitalize bool
	number     bool
	symbol     bool
	count      int
	copy       bool
	qr         bool
	json       bool
	save       bool
	seed       string
}

func runGenerate(cmd *cobra.Command, ropts *rootOptions, opts *generateOptions) error {
	settings, err := loadSettings(cmd, ropts)
	if err != nil {
		return err
	}

	cfg := settings.GenerationConfig()
	if clamped := cfg.Clamp(); clamped.WordCount != cfg.WordCount {
		slog.Warn("word count out of range, clamped", "requested", cfg.WordCount, "using", clamped.WordCount)
		cfg = clamped
		settings.WordCount = cfg.WordCount
	}

	src, err := randomSource(opts.seed)
	if err != nil {
		return err
	}

	words := loadWords(settings.WordListPath)
	svc := service.NewGeneratorService(words, src, nil, nil)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		WordCount:  &cfg.WordCount,
		Separator:  &cfg.Separator,
		Capitalize: &cfg.Capitalize,
		AddNumber:  &cfg.AddNumber,
		AddSymbol:  &cfg.AddSymbol,
		Count:      opts.count,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
	} else {
		newRenderer(isTerminal(out), settings.DarkTheme).result(out, resp)
	}

	if opts.qr {
		for _, p := range resp.Passphrases {
			if err := renderQR(out, p, settings.DarkTheme); err != nil {
				return fmt.Errorf("render QR code: %w", err)
			}
		}
	}

	if opts.copy {
		if err := clipboard.WriteAll(strings.Join(resp.Passphrases, "\n")); err != nil {
			slog.Warn("could not copy to clipboard", "error", err)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		}
	}

	if opts.save {
		if err := config.SaveSettings(settings, ropts.configPath); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		slog.Debug("settings saved", "path", ropts.configPath)
	}

	return nil
}

// randomSource returns the system source, or a deterministic one when a
// seed is given.
func randomSource(seed string) (crypto.RandomSource, error) {
	if seed != "" {
		slog.Warn("using a seeded random source; output is reproducible and not secret")
		return crypto.NewSeededSource([]byte(seed)), nil
	}
	return crypto.NewSystemSource()
}

func loadWords(path string) wordlist.WordList {
	var words wordlist.WordList
	if path != "" {
		words = wordlist.LoadFile(path)
	} else {
		words = wordlist.Load()
	}
	slog.Debug("word list loaded", "source", words.Source(), "size", words.Len())
	return words
}
