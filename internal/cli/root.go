// Package cli implements the wordpass command line host.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wordpass/wordpass-go/internal/config"
)

type rootOptions struct {
	configPath string
	wordlist   string
	theme      string
	verbose    bool
}

// NewRootCmd builds the command tree. Running it without a subcommand
// generates passphrases.
func NewRootCmd(version string) *cobra.Command {
	ropts := &rootOptions{}
	gopts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "wordpass",
		Short: "Generate memorable passphrases from a word list",
		Long: `wordpass joins random dictionary words into a passphrase and estimates
its strength in bits of entropy.

Preferences are read from wordpass.yaml in the user config directory,
WORDPASS_* environment variables and flags, in increasing precedence.
Use --save to keep the current flags as the new defaults.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), ropts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ropts, gopts)
		},
	}

	defaults := config.DefaultSettings()

	cmd.PersistentFlags().StringVar(&ropts.configPath, "config", "", "settings file (default is wordpass/wordpass.yaml in the user config directory)")
	cmd.PersistentFlags().StringVar(&ropts.wordlist, "wordlist", "", "word list file, one word per line (default is the bundled list)")
	cmd.PersistentFlags().StringVar(&ropts.theme, "theme", "light", `output theme ("dark", "light")`)
	cmd.PersistentFlags().BoolVarP(&ropts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.Flags().IntVarP(&gopts.words, "words", "w", defaults.WordCount, "number of words (3-8)")
	cmd.Flags().StringVarP(&gopts.separator, "separator", "s", defaults.Separator, `word separator ("dash", "dot", "space", "none" or the character itself)`)
	cmd.Flags().BoolVar(&gopts.capitalize, "capitalize", defaults.Capitalize, "capitalize each word")
	cmd.Flags().BoolVar(&gopts.number, "number", defaults.AddNumber, "append a two digit number")
	cmd.Flags().BoolVar(&gopts.symbol, "symbol", defaults.AddSymbol, "append a symbol")
	cmd.Flags().IntVarP(&gopts.count, "count", "n", 1, "number of passphrases to generate")
	cmd.Flags().BoolVar(&gopts.copy, "copy", false, "copy the passphrase to the clipboard")
	cmd.Flags().BoolVar(&gopts.qr, "qr", false, "print the passphrase as a QR code")
	cmd.Flags().BoolVar(&gopts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&gopts.save, "save", false, "save the current options as defaults")
	cmd.Flags().StringVar(&gopts.seed, "seed", "", "seed for deterministic output (not for real passphrases)")
	cmd.Flags().MarkHidden("seed")

	cmd.AddCommand(newResetCmd(ropts))
	cmd.AddCommand(newInfoCmd(ropts))
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}

// Execute runs the command tree against os.Args.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadSettings resolves settings for cmd and applies the persistent flags
// that do not map one to one onto a settings key.
func loadSettings(cmd *cobra.Command, ropts *rootOptions) (config.Settings, error) {
	s, err := config.LoadSettings(cmd, ropts.configPath)
	if err != nil {
		return s, err
	}

	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		switch ropts.theme {
		case "dark":
			s.DarkTheme = true
		case "light":
			s.DarkTheme = false
		default:
			return s, fmt.Errorf("unknown theme %q (want dark or light)", ropts.theme)
		}
	}

	return s, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordpass %s\n", version)
		},
	}
}
