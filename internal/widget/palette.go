package widget

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	ColorBlue   = color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF}
	ColorRed    = color.NRGBA{R: 0xDB, G: 0x44, B: 0x37, A: 0xFF}
	ColorYellow = color.NRGBA{R: 0xF4, G: 0xB4, B: 0x00, A: 0xFF}
	ColorGreen  = color.NRGBA{R: 0x0F, G: 0x9D, B: 0x58, A: 0xFF}
)

// DefaultPalette returns blue, red, yellow, green.
func DefaultPalette() []color.NRGBA {
	return []color.NRGBA{ColorBlue, ColorRed, ColorYellow, ColorGreen}
}

// ParseHex parses "#RRGGBB" or "#AARRGGBB" into a straight-alpha colour.
// The leading '#' is optional.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("colour %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	a := uint8(0xFF)
	if len(h) == 8 {
		a = uint8(v >> 24)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
}

// ParsePalette parses every entry with ParseHex.
func ParsePalette(hex []string) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, 0, len(hex))
	for _, s := range hex {
		c, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// FormatHex renders c as "#RRGGBB", or "#AARRGGBB" when c is not opaque.
func FormatHex(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// Fade scales the alpha of c by f in [0,1].
func Fade(c color.NRGBA, f float64) color.NRGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.A = uint8(float64(c.A) * f)
	return c
}
