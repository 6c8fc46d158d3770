package crypto

import (
	"encoding/json"
	"math"
	"testing"

	"pgregory.net/rapid"
)

const epsilon = 1e-9

func TestEntropy(t *testing.T) {
	base := GenerationConfig{WordCount: 4, Separator: "-"}

	tests := []struct {
		name string
		cfg  GenerationConfig
		size int
		want float64
	}{
		{name: "four words from 2048", cfg: base, size: 2048, want: 44.0},
		{name: "capitalize adds a bit per word", cfg: withCapitalize(base), size: 2048, want: 48.0},
		{name: "number adds log2(100)", cfg: withNumber(base), size: 2048, want: 44.0 + math.Log2(100)},
		{name: "symbol adds log2(10)", cfg: withSymbol(base), size: 2048, want: 44.0 + math.Log2(10)},
		{name: "number and symbol are additive", cfg: withSymbol(withNumber(base)), size: 2048, want: 44.0 + math.Log2(100) + math.Log2(10)},
		{name: "empty list", cfg: base, size: 0, want: 0},
		{name: "no words", cfg: GenerationConfig{WordCount: 0, AddNumber: true}, size: 2048, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entropy(tt.cfg, tt.size)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Entropy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntropyExactForPowerOfTwo(t *testing.T) {
	if got := Entropy(GenerationConfig{WordCount: 4}, 2048); got != 44.0 {
		t.Errorf("Entropy() = %v, want exactly 44.0", got)
	}
}

func TestEntropySuffixIncrements(t *testing.T) {
	base := GenerationConfig{WordCount: 5, Separator: "."}
	plain := Entropy(base, 2048)

	if d := Entropy(withNumber(base), 2048) - plain; math.Abs(d-6.643856189774724) > epsilon {
		t.Errorf("number increment = %v, want ~6.644", d)
	}
	if d := Entropy(withSymbol(base), 2048) - plain; math.Abs(d-3.321928094887362) > epsilon {
		t.Errorf("symbol increment = %v, want ~3.322", d)
	}
}

func TestEntropyMonotonicInWordCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(1, 1<<16).Draw(t, "size")
		cfg := GenerationConfig{
			WordCount:  rapid.IntRange(MinWordCount, MaxWordCount-1).Draw(t, "word_count"),
			Capitalize: rapid.Bool().Draw(t, "capitalize"),
			AddNumber:  rapid.Bool().Draw(t, "add_number"),
			AddSymbol:  rapid.Bool().Draw(t, "add_symbol"),
		}

		more := cfg
		more.WordCount++

		if Entropy(more, size) < Entropy(cfg, size) {
			t.Fatalf("entropy decreased from %d to %d words (size %d)", cfg.WordCount, more.WordCount, size)
		}
	})
}

func TestEntropyCapitalizeAddsWordCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(2, 1<<16).Draw(t, "size")
		cfg := GenerationConfig{WordCount: rapid.IntRange(MinWordCount, MaxWordCount).Draw(t, "word_count")}

		d := Entropy(withCapitalize(cfg), size) - Entropy(cfg, size)
		if math.Abs(d-float64(cfg.WordCount)) > epsilon {
			t.Fatalf("capitalize added %v bits, want %d", d, cfg.WordCount)
		}
	})
}

func TestRate(t *testing.T) {
	tests := []struct {
		bits float64
		want Strength
	}{
		{bits: 0, want: Weak},
		{bits: 44.9, want: Weak},
		{bits: 45.0, want: Moderate},
		{bits: 59.9, want: Moderate},
		{bits: 60.0, want: Strong},
		{bits: 79.9, want: Strong},
		{bits: 80.0, want: VeryStrong},
		{bits: 99.9, want: VeryStrong},
		{bits: 100.0, want: ExtremelyStrong},
		{bits: 256, want: ExtremelyStrong},
	}

	for _, tt := range tests {
		if got := Rate(tt.bits); got != tt.want {
			t.Errorf("Rate(%v) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestCrackTime(t *testing.T) {
	tests := []struct {
		bits float64
		want string
	}{
		{bits: 39.9, want: "Could be cracked quickly"},
		{bits: 40.0, want: "Could take hours to months to crack"},
		{bits: 44.9, want: "Could take hours to months to crack"},
		{bits: 59.9, want: "Could take hours to months to crack"},
		{bits: 60.0, want: "Could take years to crack"},
		{bits: 80.0, want: "Could take centuries to crack"},
		{bits: 99.9, want: "Could take centuries to crack"},
		{bits: 100.0, want: "Would take longer than the age of the universe to crack"},
	}

	for _, tt := range tests {
		if got := CrackTime(tt.bits); got != tt.want {
			t.Errorf("CrackTime(%v) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}

func TestStrengthPercent(t *testing.T) {
	tests := []struct {
		bits float64
		want float64
	}{
		{bits: 0, want: 0},
		{bits: 32, want: 25},
		{bits: 64, want: 50},
		{bits: 128, want: 100},
		{bits: 200, want: 100},
	}

	for _, tt := range tests {
		if got := StrengthPercent(tt.bits); math.Abs(got-tt.want) > epsilon {
			t.Errorf("StrengthPercent(%v) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestIndicator(t *testing.T) {
	tests := []struct {
		bits float64
		want string
	}{
		{bits: 44.9, want: "red"},
		{bits: 45, want: "orange"},
		{bits: 59.9, want: "orange"},
		{bits: 60, want: "green"},
		{bits: 120, want: "green"},
	}

	for _, tt := range tests {
		if got := Indicator(tt.bits); got != tt.want {
			t.Errorf("Indicator(%v) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}

func TestStrengthJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Strength{"strength": VeryStrong})
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	if string(b) != `{"strength":"Very Strong"}` {
		t.Errorf("json.Marshal() = %s", b)
	}
	if got := Strength(42).String(); got != "Strength(42)" {
		t.Errorf("String() = %q, want %q", got, "Strength(42)")
	}
}

func withCapitalize(c GenerationConfig) GenerationConfig {
	c.Capitalize = true
	return c
}

func withNumber(c GenerationConfig) GenerationConfig {
	c.AddNumber = true
	return c
}

func withSymbol(c GenerationConfig) GenerationConfig {
	c.AddSymbol = true
	return c
}
