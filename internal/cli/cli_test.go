package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordpass/wordpass-go/internal/config"
	"github.com/wordpass/wordpass-go/internal/model"
)

// run executes the command tree with a private settings file.
func run(t *testing.T, configPath string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func newConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "wordpass.yaml")
}

func TestGenerateJSON(t *testing.T) {
	out, _, err := run(t, newConfigPath(t), "--seed", "demo", "--json", "-w", "5", "-s", "dot", "--number", "-n", "3")
	require.NoError(t, err)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Passphrases, 3)
	for _, p := range resp.Passphrases {
		assert.Len(t, strings.Split(p[:len(p)-2], "."), 5, p)
	}
	assert.Equal(t, 2048, resp.WordListSize)
	assert.InDelta(t, 55+6.644, resp.EntropyBits, 0.001)
	assert.Equal(t, "Strong", resp.Strength)
}

func TestGenerateSeedIsDeterministic(t *testing.T) {
	path := newConfigPath(t)

	first, _, err := run(t, path, "--seed", "repeat", "--json")
	require.NoError(t, err)
	second, _, err := run(t, path, "--seed", "repeat", "--json")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratePlainOutput(t *testing.T) {
	out, _, err := run(t, newConfigPath(t), "--seed", "plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Len(t, strings.Split(lines[0], "-"), 4)
	assert.Equal(t, "Entropy:    44.0 bits", lines[2])
	assert.Equal(t, "Strength:   Weak", lines[3])
	assert.Equal(t, "Crack time: Could take hours to months to crack", lines[4])
	assert.Equal(t, "["+strings.Repeat("█", 7)+strings.Repeat("░", 13)+"] 34%", lines[5])
	assert.NotContains(t, out, "\x1b[", "plain output must not contain escape codes")
}

func TestGenerateClampsWordCount(t *testing.T) {
	out, errOut, err := run(t, newConfigPath(t), "--seed", "clamp", "--json", "--words", "12")
	require.NoError(t, err)
	assert.Contains(t, errOut, "word count out of range")

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, strings.Split(resp.Passphrases[0], "-"), 8)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown separator", args: []string{"--separator", "tab"}},
		{name: "count too large", args: []string{"--count", "21"}},
		{name: "unknown theme", args: []string{"--theme", "neon"}},
		{name: "positional argument", args: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, newConfigPath(t), append([]string{"--seed", "x"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestGenerateSaveAndReset(t *testing.T) {
	path := newConfigPath(t)

	_, _, err := run(t, path, "--seed", "save", "-w", "6", "-s", "space", "--capitalize", "--theme", "dark", "--save")
	require.NoError(t, err)

	saved, err := config.LoadSettings(nil, path)
	require.NoError(t, err)
	assert.Equal(t, config.Settings{WordCount: 6, Separator: " ", Capitalize: true, DarkTheme: true}, saved)

	// Saved settings become the defaults of the next run.
	out, _, err := run(t, path, "--seed", "save", "--json")
	require.NoError(t, err)
	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, strings.Split(resp.Passphrases[0], " "), 6)
	assert.Equal(t, 72.0, resp.EntropyBits)

	out, _, err = run(t, path, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "reset to defaults")

	reset, err := config.LoadSettings(nil, path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), reset)
}

func TestGenerateCustomWordList(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "words.txt")

	var b strings.Builder
	for i := 0; i < 256; i++ {
		b.WriteString("word")
		b.WriteByte(byte('a' + i%26))
		b.WriteByte(byte('a' + i/26))
		b.WriteByte('\n')
	}
	require.NoError(t, os.WriteFile(listPath, []byte(b.String()), 0600))

	out, _, err := run(t, filepath.Join(dir, "wordpass.yaml"), "--seed", "custom", "--json", "--wordlist", listPath)
	require.NoError(t, err)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 256, resp.WordListSize)
	assert.Equal(t, 32.0, resp.EntropyBits)
	for _, w := range strings.Split(resp.Passphrases[0], "-") {
		assert.True(t, strings.HasPrefix(w, "word"), w)
	}
}

func TestGenerateQR(t *testing.T) {
	out, _, err := run(t, newConfigPath(t), "--seed", "qr", "--qr")
	require.NoError(t, err)

	// Report lines plus at least the 21 module rows of the smallest code.
	assert.Greater(t, strings.Count(out, "\n"), 6+21/2)
	assert.Contains(t, out, "▀")
}

func TestRenderQR(t *testing.T) {
	var light, dark bytes.Buffer
	require.NoError(t, renderQR(&light, "correct-horse-battery-staple", false))
	require.NoError(t, renderQR(&dark, "correct-horse-battery-staple", true))

	lines := strings.Split(strings.TrimSuffix(light.String(), "\n"), "\n")
	// Two module rows per text line, quiet zone included.
	width := len([]rune(lines[0]))
	assert.Equal(t, (width+1)/2, len(lines))
	assert.NotEqual(t, light.String(), dark.String())
}

func TestFilledCells(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{percent: 0, want: 0},
		{percent: 34.375, want: 7},
		{percent: 50, want: 10},
		{percent: 100, want: 20},
		{percent: 150, want: 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, filledCells(tt.percent), "percent %v", tt.percent)
	}
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, newConfigPath(t), "info")
	require.NoError(t, err)

	assert.Contains(t, out, "Entropy is a measure of passphrase strength in bits.")
	for _, label := range []string{"Weak", "Moderate", "Strong", "Very Strong", "Extremely Strong"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "Dictionary: 2048 words (bundled), 11.0 bits per word")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, newConfigPath(t), "version")
	require.NoError(t, err)
	assert.Equal(t, "wordpass test\n", out)
}
