package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wordpass/wordpass-go/internal/config"
	"github.com/wordpass/wordpass-go/internal/crypto"
	"github.com/wordpass/wordpass-go/internal/service"
)

const entropyInfo = `Entropy is a measure of passphrase strength in bits.

The calculation is based on:
  - the size of the word dictionary
  - the number of words in the passphrase
  - additional variations (capitalization, numbers, symbols)

Higher entropy means a stronger passphrase:
`

var ratingBands = []struct {
	band  string
	rate  crypto.Strength
	note  string
}{
	{"<45 bits", crypto.Weak, "vulnerable to fast attacks"},
	{"45-60 bits", crypto.Moderate, "resistant to online attacks"},
	{"60-80 bits", crypto.Strong, "difficult for most attackers"},
	{"80-100 bits", crypto.VeryStrong, "resistant to state-level attackers"},
	{">100 bits", crypto.ExtremelyStrong, "theoretically uncrackable"},
}

func newInfoCmd(ropts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Explain how passphrase strength is estimated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, ropts)
			if err != nil {
				return err
			}

			svc := service.NewGeneratorService(loadWords(settings.WordListPath), nil, nil, nil)
			printInfo(cmd.OutOrStdout(), svc)
			return nil
		},
	}
}

func printInfo(w io.Writer, svc *service.GeneratorService) {
	fmt.Fprint(w, entropyInfo)
	for _, b := range ratingBands {
		fmt.Fprintf(w, "  %-12s %-17s %s\n", b.band, b.rate, b.note)
	}

	wl := svc.WordList()
	fmt.Fprintf(w, "\nDictionary: %d words (%s), %.1f bits per word\n", wl.Size, wl.Source, wl.BitsPerWord)
}

func newResetCmd(ropts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveSettings(config.DefaultSettings(), ropts.configPath); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Preferences reset to defaults.")
			return nil
		},
	}
}
