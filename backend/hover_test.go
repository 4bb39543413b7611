package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identitySurface treats container pixels as chart units.
type identitySurface struct{}

func (identitySurface) ToChart(p Point) Point     { return p }
func (identitySurface) ToContainer(p Point) Point { return p }

func sampleFrame(t *testing.T) *Frame {
	t.Helper()
	ds := SampleDataset(testDay)
	return newTestTimeline().Frame(Input{Points: ds.Points, Highlights: ds.Highlights, Layout: DefaultLayout})
}

func TestViewport(t *testing.T) {
	v := Viewport{
		Intrinsic: Point{X: 800, Y: 250},
		Displayed: Point{X: 400, Y: 125},
		Offset:    Point{X: 10, Y: 20},
	}
	assert.Equal(t, Point{X: 400, Y: 100}, v.ToChart(Point{X: 210, Y: 70}))
	assert.Equal(t, Point{X: 210, Y: 70}, v.ToContainer(Point{X: 400, Y: 100}))

	unsized := Viewport{Offset: Point{X: 5}}
	assert.Equal(t, Point{X: 10, Y: 3}, unsized.ToChart(Point{X: 15, Y: 3}))
}

func TestResolveHover(t *testing.T) {
	frame := sampleFrame(t)
	x := frame.X.X(at(10, 7))

	hp, ok := ResolveHover(frame, identitySurface{}, Point{X: x, Y: 12})
	require.True(t, ok)
	assert.Equal(t, at(10, 0), hp.Time)
	assert.InDelta(t, 0.9, hp.Level, 1e-9)
	assert.InDelta(t, frame.X.X(at(10, 0)), hp.ChartX, 1e-9)
	assert.InDelta(t, frame.Y.Y(0.9), hp.ChartY, 1e-9)
	assert.Equal(t, hp.ChartX, hp.ScreenX)

	tip := frame.Tooltip(hp)
	assert.Equal(t, FallbackTooltipTitle, tip.Title)
	assert.Equal(t, "#256EFF", tip.Color)
	assert.Equal(t, "High focus", tip.Focus)
	assert.InDelta(t, hp.ScreenY-TooltipLift, tip.Anchor.Y, 1e-9)
}

func TestResolveHoverScaled(t *testing.T) {
	frame := sampleFrame(t)
	v := Viewport{
		Intrinsic: Point{X: 800, Y: 250},
		Displayed: Point{X: 400, Y: 125},
		Offset:    Point{X: 30},
	}
	target := Point{X: frame.X.X(at(8, 30)), Y: 100}
	hp, ok := ResolveHover(frame, v, v.ToContainer(target))
	require.True(t, ok)
	assert.Equal(t, at(8, 30), hp.Time)
	assert.InDelta(t, 0.775, hp.Level, 1e-9)
	assert.InDelta(t, hp.ChartX/2+30, hp.ScreenX, 1e-9)
	assert.InDelta(t, hp.ChartY/2, hp.ScreenY, 1e-9)

	tip := frame.Tooltip(hp)
	assert.Equal(t, "Morning Peak", tip.Title)
	assert.Equal(t, "#256EFF", tip.Color)
}

func TestResolveHoverEmpty(t *testing.T) {
	_, ok := ResolveHover(nil, identitySurface{}, Point{})
	assert.False(t, ok)
	empty := newTestTimeline().Frame(Input{Layout: DefaultLayout})
	_, ok = ResolveHover(empty, identitySurface{}, Point{X: 100})
	assert.False(t, ok)
}

func TestHoverLifecycle(t *testing.T) {
	tl := newTestTimeline()
	ds := SampleDataset(testDay)
	frame := tl.Frame(Input{Points: ds.Points, Highlights: ds.Highlights, Layout: DefaultLayout})
	surface := identitySurface{}

	var h Hover
	_, ok := h.Current(frame, surface)
	assert.False(t, ok)

	moved, ok := h.Move(frame, surface, Point{X: 300})
	require.True(t, ok)
	current, ok := h.Current(frame, surface)
	require.True(t, ok)
	assert.Equal(t, moved, current)

	h.Leave()
	_, ok = h.Current(frame, surface)
	assert.False(t, ok)

	h.Move(frame, surface, Point{X: 300})
	other := tl.Frame(Input{Points: ds.Points[:12], Highlights: ds.Highlights, Layout: DefaultLayout})
	_, ok = h.Current(other, surface)
	assert.False(t, ok)
	_, ok = h.Current(frame, surface)
	assert.False(t, ok, "stale hover state is discarded")
}

func TestHoverFollowsResize(t *testing.T) {
	tl := newTestTimeline()
	ds := SampleDataset(testDay)
	wide := tl.Frame(Input{Points: ds.Points, Highlights: ds.Highlights, Layout: DefaultLayout})
	before := Viewport{Intrinsic: Point{X: 800, Y: 250}, Displayed: Point{X: 800, Y: 250}}

	var h Hover
	pos := before.ToContainer(Point{X: wide.X.X(at(10, 0)), Y: 100})
	_, ok := h.Move(wide, before, pos)
	require.True(t, ok)

	// Same series in a narrower layout and a smaller viewport.
	narrow := tl.Frame(Input{Points: ds.Points, Highlights: ds.Highlights, Layout: ResponsiveLayout(400)})
	require.Equal(t, wide.Generation, narrow.Generation)
	after := Viewport{Intrinsic: Point{X: 400, Y: 250}, Displayed: Point{X: 400, Y: 250}}

	hp, ok := h.Current(narrow, after)
	require.True(t, ok)
	want, ok := ResolveHover(narrow, after, pos)
	require.True(t, ok)
	assert.Equal(t, want, hp)
	assert.InDelta(t, narrow.X.X(hp.Time), hp.ChartX, 1e-9)
	assert.LessOrEqual(t, hp.ScreenX, after.Displayed.X)
}
