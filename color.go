package main

import (
	"image/color"

	"github.com/stivex001/energy-timeline/backend"
)

var (
	surfaceColor = color.NRGBA{R: 0x0b, G: 0x0f, B: 0x1a, A: 0xff}
	axisColor    = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	guideColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4d}
	white        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	tooltipColor = color.NRGBA{R: 0x16, G: 0x1b, B: 0x2b, A: 0xf0}
	errorColor   = color.NRGBA{R: 150, A: 255}
)

// palette memoizes parsed CSS colors, drawing malformed ones in the axis gray. It is only touched from the UI goroutine.
type palette map[string]color.NRGBA

func (p palette) get(css string) color.NRGBA {
	if c, ok := p[css]; ok {
		return c
	}
	c := backend.ParseColorOr(css, axisColor)
	p[css] = c
	return c
}

var colors = palette{}

// withAlpha scales c's alpha by a in [0,1].
func withAlpha(c color.NRGBA, a float32) color.NRGBA {
	c.A = uint8(float32(c.A) * a)
	return c
}
