package backend

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseColor parses the CSS color forms used by datasets and themes: "#RGB",
// "#RRGGBB", "#RRGGBBAA", "rgb(r, g, b)" and "rgba(r, g, b, a)" with a in [0,1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s[len("rgba(") : len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s[len("rgb(") : len(s)-1], 3)
	}
	return color.NRGBA{}, fmt.Errorf("unsupported color %q", s)
}

func parseHex(h string) (color.NRGBA, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color #%s: %w", h, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseFunctional(args string, n int) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("expected %d color components, got %d", n, len(parts))
	}
	var c [3]uint8
	for i := range c {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color component %q: %w", parts[i], err)
		}
		c[i] = uint8(clamp(v, 0, 255))
	}
	alpha := uint8(255)
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha %q: %w", parts[3], err)
		}
		alpha = uint8(math.Round(clamp(a, 0, 1) * 255))
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: alpha}, nil
}

// ParseColorOr is like ParseColor but returns fallback on malformed input.
func ParseColorOr(s string, fallback color.NRGBA) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
