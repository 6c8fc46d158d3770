package crypto

import (
	"fmt"
	"math"
)

// MaxScaleBits is the entropy shown as a full strength bar.
const MaxScaleBits = 128.0

// Strength is an ordinal rating of passphrase entropy.
type Strength int

const (
	Weak Strength = iota
	Moderate
	Strong
	VeryStrong
	ExtremelyStrong
)

var strengthNames = [...]string{
	Weak:            "Weak",
	Moderate:        "Moderate",
	Strong:          "Strong",
	VeryStrong:      "Very Strong",
	ExtremelyStrong: "Extremely Strong",
}

func (s Strength) String() string {
	if s < Weak || s > ExtremelyStrong {
		return fmt.Sprintf("Strength(%d)", int(s))
	}
	return strengthNames[s]
}

// MarshalText encodes the rating as its label, e.g. "Very Strong".
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Entropy estimates the bits of entropy of passphrases generated with cfg
// from a list of wordlistSize words. Each word contributes log2(size) bits,
// capitalization one bit per word, the number log2(100) and the symbol
// log2(10). An empty passphrase has zero entropy.
func Entropy(cfg GenerationConfig, wordlistSize int) float64 {
	if cfg.WordCount <= 0 || wordlistSize <= 0 {
		return 0
	}

	bits := float64(cfg.WordCount) * math.Log2(float64(wordlistSize))
	if cfg.Capitalize {
		bits += float64(cfg.WordCount)
	}
	if cfg.AddNumber {
		bits += math.Log2(100)
	}
	if cfg.AddSymbol {
		bits += math.Log2(float64(len(symbolChars)))
	}
	return bits
}

// Rate maps entropy bits to a Strength.
func Rate(bits float64) Strength {
	switch {
	case bits < 45:
		return Weak
	case bits < 60:
		return Moderate
	case bits < 80:
		return Strong
	case bits < 100:
		return VeryStrong
	default:
		return ExtremelyStrong
	}
}

// CrackTime describes how long an attacker would need. The lowest band ends
// at 40 bits, not at the 45 used by Rate.
func CrackTime(bits float64) string {
	switch {
	case bits < 40:
		return "Could be cracked quickly"
	case bits < 60:
		return "Could take hours to months to crack"
	case bits < 80:
		return "Could take years to crack"
	case bits < 100:
		return "Could take centuries to crack"
	default:
		return "Would take longer than the age of the universe to crack"
	}
}

// StrengthPercent maps entropy onto 0..100 with MaxScaleBits as full scale.
func StrengthPercent(bits float64) float64 {
	if bits <= 0 {
		return 0
	}
	return math.Min(100, bits/MaxScaleBits*100)
}

// Indicator returns the strength-bar colour: "red", "orange" or "green".
func Indicator(bits float64) string {
	switch {
	case bits < 45:
		return "red"
	case bits < 60:
		return "orange"
	default:
		return "green"
	}
}
