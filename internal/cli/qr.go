package cli

import (
	"io"
	"strings"

	"rsc.io/qr"
)

const qrQuietZone = 2

// renderQR prints text as a QR code using half block characters, two
// modules per character row. invert draws light modules instead of dark
// ones, which reads correctly on dark terminal backgrounds.
func renderQR(w io.Writer, text string, invert bool) error {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return err
	}

	dark := func(x, y int) bool {
		return code.Black(x, y) != invert
	}

	var b strings.Builder
	for y := -qrQuietZone; y < code.Size+qrQuietZone; y += 2 {
		for x := -qrQuietZone; x < code.Size+qrQuietZone; x++ {
			top, bottom := dark(x, y), dark(x, y+1)
			switch {
			case top && bottom:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bottom:
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}
