package backend

import (
	"slices"
	"time"
)

// Options configure how a Timeline derives its frames.
type Options struct {
	Bands    BandPolicy
	DayParts []DayPart
	// Interval is the spacing of interpolated points.
	Interval time.Duration
	// LabelStride is the spacing of time axis ticks, in hours.
	LabelStride int
	// Location is the zone used for day parts, ticks and the current time.
	Location *time.Location
}

// DefaultOptions returns the stock options in the local time zone.
func DefaultOptions() Options {
	return Options{
		Bands:       DefaultBands,
		DayParts:    slices.Clone(DefaultDayParts),
		Interval:    DefaultInterval,
		LabelStride: DefaultLabelStride,
		Location:    time.Local,
	}
}

// Input is everything a frame is derived from.
type Input struct {
	Points     []EnergyPoint
	Highlights []EnergyHighlight
	Layout     Layout
}

// Frame is the fully derived, render-ready state of the chart for one Input. Frames
// are immutable once built and may be shared.
type Frame struct {
	Input      Input
	Series     []ParsedPoint
	X          TimeScale
	Y          LevelScale
	Segments   []ChartSegment
	Labels     []TimeLabel
	Background []BackgroundSegment
	Highlights []HighlightWithPosition
	// Generation changes whenever the series does.
	Generation uint64

	bands BandPolicy
	loc   *time.Location
}

// Now projects the current-time marker for now.
func (f *Frame) Now(now time.Time) NowPosition {
	return ProjectNow(now, f.Series, f.X, f.Y, f.Input.Layout, f.loc)
}

// Insight resolves the current phase and energy level at now. Both are read at the
// same instant: now aligned onto the domain the way the current-time marker is.
func (f *Frame) Insight(now time.Time) Insight {
	at := AlignToDomain(now, f.X, f.loc)
	level := levelAt(f.Series, at)
	phase, ok := CurrentPhase(at, f.Input.Highlights)
	return Insight{
		Phase:    phase,
		HasPhase: ok,
		Level:    level,
		Band:     f.bands.Classify(level),
		Focus:    f.bands.FocusState(level),
		Color:    f.bands.Color(level),
	}
}

// Tooltip describes the hovered point hp.
func (f *Frame) Tooltip(hp HoveredPoint) Tooltip {
	return NewTooltip(hp, f.Highlights, f.bands)
}

// Location returns the zone the frame's ticks and day parts are laid out in.
func (f *Frame) Location() *time.Location {
	return f.loc
}

// Bands returns the band policy the frame was built with.
func (f *Frame) Bands() BandPolicy {
	return f.bands
}

// Timeline derives frames from inputs, reusing the previous frame's stages when their
// inputs have not changed. It is not safe for concurrent use.
type Timeline struct {
	opts       Options
	last       *Frame
	generation uint64
}

// NewTimeline builds a timeline with opts. A nil location means UTC.
func NewTimeline(opts Options) *Timeline {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Timeline{opts: opts}
}

// Options returns the timeline's options.
func (t *Timeline) Options() Options {
	return t.opts
}

// Frame returns the frame for in. Calling Frame again with an equal input returns the
// same *Frame.
func (t *Timeline) Frame(in Input) *Frame {
	prev := t.last
	samePoints := prev != nil && slices.Equal(prev.Input.Points, in.Points)
	sameLayout := prev != nil && prev.Input.Layout == in.Layout
	sameHighlights := prev != nil && slices.Equal(prev.Input.Highlights, in.Highlights)
	if samePoints && sameLayout && sameHighlights {
		return prev
	}

	f := &Frame{Input: in, bands: t.opts.Bands, loc: t.opts.Location}
	if samePoints {
		f.Series = prev.Series
		f.Generation = prev.Generation
	} else {
		t.generation++
		f.Series = Interpolate(in.Points, t.opts.Interval)
		f.Generation = t.generation
	}
	if samePoints && sameLayout {
		f.X, f.Y = prev.X, prev.Y
		f.Segments = prev.Segments
		f.Labels = prev.Labels
		f.Background = prev.Background
	} else {
		f.X = NewTimeScale(f.Series, in.Layout)
		f.Y = NewLevelScale(in.Layout)
		f.Segments = BuildSegments(f.Series, f.X, f.Y, t.opts.Bands)
		f.Labels = BuildTimeLabels(f.X, t.opts.LabelStride, t.opts.Location)
		f.Background = BuildBackgrounds(f.X, t.opts.DayParts, t.opts.Location)
	}
	f.Highlights = ProjectHighlights(in.Highlights, f.Series, f.X, f.Y, in.Layout)
	t.last = f
	return f
}
