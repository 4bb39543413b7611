package backend

import (
	"math"
	"time"
)

// Surface converts between the container's pixel space and the chart's intrinsic
// coordinate space.
type Surface interface {
	// ToChart maps a pointer position in container pixels to chart units.
	ToChart(pos Point) Point
	// ToContainer maps a chart-space point back to container pixels.
	ToContainer(p Point) Point
}

// Viewport is a Surface for a chart of intrinsic size Intrinsic drawn at size
// Displayed, with its origin at Offset within the container.
type Viewport struct {
	Intrinsic Point
	Displayed Point
	Offset    Point
}

var _ Surface = Viewport{}

func (v Viewport) scale() (sx, sy float64) {
	sx, sy = 1, 1
	if v.Intrinsic.X > 0 && v.Displayed.X > 0 {
		sx = v.Displayed.X / v.Intrinsic.X
	}
	if v.Intrinsic.Y > 0 && v.Displayed.Y > 0 {
		sy = v.Displayed.Y / v.Intrinsic.Y
	}
	return sx, sy
}

func (v Viewport) ToChart(pos Point) Point {
	sx, sy := v.scale()
	return Point{X: (pos.X - v.Offset.X) / sx, Y: (pos.Y - v.Offset.Y) / sy}
}

func (v Viewport) ToContainer(p Point) Point {
	sx, sy := v.scale()
	return Point{X: p.X*sx + v.Offset.X, Y: p.Y*sy + v.Offset.Y}
}

// HoveredPoint is the series point under the pointer, in both coordinate spaces.
type HoveredPoint struct {
	ChartX, ChartY   float64
	ScreenX, ScreenY float64
	Level            float64
	Time             time.Time
}

// ResolveHover finds the series point nearest in time to the pointer at pos.
func ResolveHover(f *Frame, s Surface, pos Point) (HoveredPoint, bool) {
	if f == nil || len(f.Series) == 0 {
		return HoveredPoint{}, false
	}
	chart := s.ToChart(pos)
	if math.IsNaN(chart.X) || math.IsInf(chart.X, 0) {
		return HoveredPoint{}, false
	}
	idx, ok := Closest(f.Series, f.X.Time(chart.X))
	if !ok {
		return HoveredPoint{}, false
	}
	p := f.Series[idx]
	at := Point{X: f.X.X(p.Date), Y: f.Y.Y(p.Level)}
	screen := s.ToContainer(at)
	return HoveredPoint{
		ChartX:  at.X,
		ChartY:  at.Y,
		ScreenX: screen.X,
		ScreenY: screen.Y,
		Level:   p.Level,
		Time:    p.Date,
	}, true
}

// Hover tracks the pointer over one chart. The zero value is ready to use.
type Hover struct {
	// pos is the pointer in container pixels.
	pos        Point
	point      HoveredPoint
	active     bool
	generation uint64
}

// Move recomputes the hover state for a pointer at pos.
func (h *Hover) Move(f *Frame, s Surface, pos Point) (HoveredPoint, bool) {
	h.pos = pos
	h.point, h.active = ResolveHover(f, s, pos)
	if f != nil {
		h.generation = f.Generation
	}
	return h.point, h.active
}

// Leave clears the hover state.
func (h *Hover) Leave() {
	h.point, h.active = HoveredPoint{}, false
}

// Current returns the hover state for f drawn through s. The last pointer position is
// resolved again so that a resize or layout change moves the hovered point with the
// chart. A state left over from a previous series is discarded.
func (h *Hover) Current(f *Frame, s Surface) (HoveredPoint, bool) {
	if !h.active {
		return HoveredPoint{}, false
	}
	if f == nil || f.Generation != h.generation {
		h.Leave()
		return HoveredPoint{}, false
	}
	h.point, h.active = ResolveHover(f, s, h.pos)
	return h.point, h.active
}

const (
	// TooltipTolerance is how close, in chart units, a highlight must be to the
	// hovered x to name the tooltip.
	TooltipTolerance = 30
	// TooltipLift raises the tooltip above the hovered point, in container pixels.
	TooltipLift = 80
	// FallbackTooltipTitle names points with no nearby highlight.
	FallbackTooltipTitle = "Energy Point"
)

// Tooltip is the content and placement of the hover tooltip. Anchor is the top
// center of the tooltip in container pixels.
type Tooltip struct {
	Title  string
	Color  string
	Focus  string
	Time   time.Time
	Anchor Point
}

// NewTooltip describes hp, naming it after the first highlight within
// TooltipTolerance of it.
func NewTooltip(hp HoveredPoint, highlights []HighlightWithPosition, bands BandPolicy) Tooltip {
	tip := Tooltip{
		Title:  FallbackTooltipTitle,
		Color:  bands.Color(hp.Level),
		Focus:  bands.FocusState(hp.Level),
		Time:   hp.Time,
		Anchor: Point{X: hp.ScreenX, Y: hp.ScreenY - TooltipLift},
	}
	for _, h := range highlights {
		if h.Valid && math.Abs(h.X-hp.ChartX) < TooltipTolerance {
			tip.Title = h.Label
			break
		}
	}
	return tip
}
