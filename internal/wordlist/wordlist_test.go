package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLoadBundled(t *testing.T) {
	list := Load()

	if list.Source() != SourceBundled {
		t.Fatalf("Load() source = %q, want %q", list.Source(), SourceBundled)
	}
	if list.Len() != 2048 {
		t.Errorf("Load() len = %d, want 2048", list.Len())
	}
	if list.IsFallback() {
		t.Error("Load() should not use the fallback list")
	}

	for i := 0; i < list.Len(); i++ {
		w := list.Word(i)
		n := utf8.RuneCountInString(w)
		if n < MinWordLength || n > MaxWordLength {
			t.Errorf("word %q has length %d, outside [%d,%d]", w, n, MinWordLength, MaxWordLength)
		}
		if w != strings.ToLower(w) {
			t.Errorf("word %q is not lowercase", w)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix newlines",
			input: "alpha\nbravo\ncharlie\n",
			want:  []string{"alpha", "bravo", "charlie"},
		},
		{
			name:  "windows newlines",
			input: "alpha\r\nbravo\r\ncharlie",
			want:  []string{"alpha", "bravo", "charlie"},
		},
		{
			name:  "trims and lowercases",
			input: "  Alpha \n\tBRAVO\t\n",
			want:  []string{"alpha", "bravo"},
		},
		{
			name:  "drops short and long words",
			input: "ab\nabc\nabcdefgh\nabcdefghi\n",
			want:  []string{"abc", "abcdefgh"},
		},
		{
			name:  "keeps duplicates",
			input: "echo\necho\n",
			want:  []string{"echo", "echo"},
		},
		{
			name:  "blank lines",
			input: "\n\n\r\n   \n",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(strings.NewReader(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("Parse() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	var b strings.Builder
	for i := 0; i < MinWords; i++ {
		b.WriteString("word")
		b.WriteByte(byte('a' + i%26))
		b.WriteByte(byte('a' + i/26))
		b.WriteString("\n")
	}
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	list := LoadFile(path)
	if list.Source() != path {
		t.Errorf("LoadFile() source = %q, want %q", list.Source(), path)
	}
	if list.Len() != MinWords {
		t.Errorf("LoadFile() len = %d, want %d", list.Len(), MinWords)
	}
}

func TestLoadFileFallsBack(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small.txt")
	if err := os.WriteFile(small, []byte("alpha\nbravo\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.txt")},
		{name: "undersized file", path: small},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := LoadFile(tt.path)
			if !list.IsFallback() {
				t.Fatalf("LoadFile(%q) source = %q, want fallback", tt.path, list.Source())
			}
			if list.Len() != len(Fallback) {
				t.Errorf("LoadFile() len = %d, want %d", list.Len(), len(Fallback))
			}
		})
	}
}

func TestFallbackKeepsDuplicates(t *testing.T) {
	counts := make(map[string]int)
	for _, w := range Fallback {
		counts[w]++
	}
	if counts["orange"] != 2 {
		t.Errorf("orange appears %d times, want 2", counts["orange"])
	}
	if counts["dance"] != 2 {
		t.Errorf("dance appears %d times, want 2", counts["dance"])
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	list := New([]string{"alpha", "bravo"}, "test")

	words := list.Words()
	words[0] = "mutated"

	if list.Word(0) != "alpha" {
		t.Errorf("Word(0) = %q after mutating Words(), want %q", list.Word(0), "alpha")
	}
}
