// Package wordlist supplies the candidate words passphrases are built from.
package wordlist

import (
	_ "embed"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	MinWordLength = 3
	MaxWordLength = 8

	// MinWords is the smallest parsed list accepted before the fallback is used.
	MinWords = 100

	SourceBundled  = "bundled"
	SourceFallback = "fallback"
)

//go:embed wordlist.txt
var bundled string

// WordList is an immutable, ordered list of lowercase words. Duplicates are allowed.
type WordList struct {
	words  []string
	source string
}

// Load returns the bundled word list, or the fallback list if the bundled
// resource yields fewer than MinWords usable words.
func Load() WordList {
	return fromWords(Parse(strings.NewReader(bundled)), SourceBundled)
}

// LoadFile reads a newline-delimited word list from path. Read failures and
// undersized lists are recovered by substituting the fallback list.
func LoadFile(path string) WordList {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("word list file unreadable, using fallback list", "path", path, "error", err)
		return fallback()
	}
	defer f.Close()

	return fromWords(Parse(f), path)
}

// Parse splits r on CR and LF, trims and lowercases every token and keeps
// those between MinWordLength and MaxWordLength characters long.
func Parse(r io.Reader) []string {
	data, err := io.ReadAll(r)
	if err != nil {
		slog.Warn("word list read failed", "error", err)
		return nil
	}

	lines := strings.FieldsFunc(string(data), func(c rune) bool {
		return c == '\r' || c == '\n'
	})

	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.ToLower(strings.TrimSpace(line))
		n := utf8.RuneCountInString(w)
		if n < MinWordLength || n > MaxWordLength {
			continue
		}
		words = append(words, w)
	}

	return words
}

// New builds a WordList from words as given, without filtering or fallback.
// It exists for callers that bring their own vetted list, mostly tests.
func New(words []string, source string) WordList {
	return WordList{words: append([]string(nil), words...), source: source}
}

// Len returns the number of words in the list.
func (l WordList) Len() int { return len(l.words) }

// Word returns the word at index i.
func (l WordList) Word(i int) string { return l.words[i] }

// Words returns a copy of the list.
func (l WordList) Words() []string { return append([]string(nil), l.words...) }

// Source reports where the list came from: "bundled", "fallback" or a file path.
func (l WordList) Source() string { return l.source }

// IsFallback reports whether the fallback list was substituted.
func (l WordList) IsFallback() bool { return l.source == SourceFallback }

func fromWords(words []string, source string) WordList {
	if len(words) < MinWords {
		slog.Warn("word list too small, using fallback list", "source", source, "words", len(words), "min", MinWords)
		return fallback()
	}
	return WordList{words: words, source: source}
}

func fallback() WordList {
	return WordList{words: append([]string(nil), Fallback...), source: SourceFallback}
}
