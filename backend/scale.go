package backend

import "time"

// Margins are the insets of the plot area inside the chart surface.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Layout is the intrinsic geometry of the chart surface, in chart units.
type Layout struct {
	Width, Height float64
	Margin        Margins
	// HighlightsOffset is extra room reserved right of the plot for highlight labels.
	HighlightsOffset float64
}

const (
	ChartWidth  = 800
	ChartHeight = 250
	// compactWidth is the width below which the chart drops its label column.
	compactWidth = 768
	// minChartWidth is the narrowest intrinsic width the chart will lay out at.
	minChartWidth = 280
)

// DefaultLayout is the nominal 800×250 chart.
var DefaultLayout = Layout{
	Width:            ChartWidth,
	Height:           ChartHeight,
	Margin:           Margins{Top: 40, Right: 200, Bottom: 50, Left: 60},
	HighlightsOffset: 20,
}

// ResponsiveLayout returns the layout for a chart of the given intrinsic width. Narrow
// charts use tighter horizontal margins and no highlight label column.
func ResponsiveLayout(width float64) Layout {
	l := DefaultLayout
	l.Width = clamp(width, minChartWidth, ChartWidth)
	if l.Width < compactWidth {
		l.Margin.Left = 40
		l.Margin.Right = 20
		l.HighlightsOffset = 0
	}
	return l
}

// PlotTop and PlotBottom bound the plot area vertically.
func (l Layout) PlotTop() float64    { return l.Margin.Top }
func (l Layout) PlotBottom() float64 { return l.Height - l.Margin.Bottom }

// TimeScale maps instants linearly onto the horizontal pixel range.
type TimeScale struct {
	Start, End time.Time
	Min, Max   float64
	// valid is false when the domain could not be determined.
	valid bool
}

// NewTimeScale builds the time scale for series under layout. The domain is the extent
// of the series' valid dates.
func NewTimeScale(series []ParsedPoint, layout Layout) TimeScale {
	start, end, ok := Extent(series)
	return TimeScale{
		Start: start,
		End:   end,
		Min:   layout.Margin.Left,
		Max:   layout.Width - layout.Margin.Right - layout.HighlightsOffset,
		valid: ok,
	}
}

// Degenerate reports whether the domain is empty or a single instant.
func (s TimeScale) Degenerate() bool {
	return !s.valid || !s.End.After(s.Start)
}

// X maps t to a horizontal position. A degenerate domain maps everything to the middle
// of the range.
func (s TimeScale) X(t time.Time) float64 {
	if s.Degenerate() {
		return (s.Min + s.Max) / 2
	}
	frac := float64(t.Sub(s.Start)) / float64(s.End.Sub(s.Start))
	return lerp(s.Min, s.Max, frac)
}

// Time maps a horizontal position back to an instant. A degenerate domain inverts
// everything to its start.
func (s TimeScale) Time(x float64) time.Time {
	if s.Degenerate() || s.Max == s.Min {
		return s.Start
	}
	frac := (x - s.Min) / (s.Max - s.Min)
	return s.Start.Add(time.Duration(frac * float64(s.End.Sub(s.Start))))
}

// Clamp limits t to the domain.
func (s TimeScale) Clamp(t time.Time) time.Time {
	if !s.valid {
		return t
	}
	if t.Before(s.Start) {
		return s.Start
	}
	if t.After(s.End) {
		return s.End
	}
	return t
}

// LevelScale maps energy levels in [0,1] onto the vertical pixel range, with level 0 at
// the bottom of the plot.
type LevelScale struct {
	Bottom, Top float64
}

// NewLevelScale builds the level scale for layout.
func NewLevelScale(layout Layout) LevelScale {
	return LevelScale{Bottom: layout.PlotBottom(), Top: layout.PlotTop()}
}

// Y maps level to a vertical position.
func (s LevelScale) Y(level float64) float64 {
	return lerp(s.Bottom, s.Top, level)
}

// Level maps a vertical position back to a level.
func (s LevelScale) Level(y float64) float64 {
	if s.Top == s.Bottom {
		return 0
	}
	return (y - s.Bottom) / (s.Top - s.Bottom)
}
