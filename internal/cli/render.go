package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wordpass/wordpass-go/internal/model"
)

const barWidth = 20

type palette struct {
	passphrase lipgloss.Color
	label      lipgloss.Color
	muted      lipgloss.Color
	red        lipgloss.Color
	orange     lipgloss.Color
	green      lipgloss.Color
}

var (
	lightPalette = palette{
		passphrase: lipgloss.Color("#1F2937"),
		label:      lipgloss.Color("#4B5563"),
		muted:      lipgloss.Color("#D1D5DB"),
		red:        lipgloss.Color("#DC2626"),
		orange:     lipgloss.Color("#EA580C"),
		green:      lipgloss.Color("#16A34A"),
	}
	darkPalette = palette{
		passphrase: lipgloss.Color("#F9FAFB"),
		label:      lipgloss.Color("#9CA3AF"),
		muted:      lipgloss.Color("#374151"),
		red:        lipgloss.Color("#F87171"),
		orange:     lipgloss.Color("#FB923C"),
		green:      lipgloss.Color("#4ADE80"),
	}
)

// renderer prints generation results, styled for a terminal or plain.
type renderer struct {
	styled bool
	p      palette
}

func newRenderer(styled, dark bool) renderer {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return renderer{styled: styled, p: p}
}

func (r renderer) style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func (r renderer) render(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r renderer) indicatorColor(indicator string) lipgloss.Color {
	switch indicator {
	case "red":
		return r.p.red
	case "orange":
		return r.p.orange
	default:
		return r.p.green
	}
}

func (r renderer) result(w io.Writer, resp model.GenerateResponse) {
	phrase := r.style(r.p.passphrase).Bold(true)
	label := r.style(r.p.label)
	rating := r.style(r.indicatorColor(resp.Indicator)).Bold(true)

	for _, p := range resp.Passphrases {
		fmt.Fprintln(w, r.render(phrase, p))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %.1f bits\n", r.render(label, "Entropy:   "), resp.EntropyBits)
	fmt.Fprintf(w, "%s %s\n", r.render(label, "Strength:  "), r.render(rating, resp.Strength))
	fmt.Fprintf(w, "%s %s\n", r.render(label, "Crack time:"), resp.CrackTime)
	fmt.Fprintf(w, "%s %.0f%%\n", r.bar(resp.StrengthPercent, resp.Indicator), resp.StrengthPercent)
}

// bar draws the strength meter as barWidth cells.
func (r renderer) bar(percent float64, indicator string) string {
	filled := filledCells(percent)
	on := strings.Repeat("█", filled)
	off := strings.Repeat("░", barWidth-filled)
	return "[" + r.render(r.style(r.indicatorColor(indicator)), on) + r.render(r.style(r.p.muted), off) + "]"
}

func filledCells(percent float64) int {
	n := int(math.Round(percent / 100 * barWidth))
	return max(0, min(barWidth, n))
}
