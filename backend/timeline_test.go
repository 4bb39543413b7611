package backend

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTimeline() *Timeline {
	opts := DefaultOptions()
	opts.Location = time.UTC
	return NewTimeline(opts)
}

func TestTimelineMemoizes(t *testing.T) {
	ds := SampleDataset(testDay)
	tl := newTestTimeline()
	in := Input{Points: ds.Points, Highlights: ds.Highlights, Layout: DefaultLayout}

	first := tl.Frame(in)
	require.NotEmpty(t, first.Segments)
	require.NotEmpty(t, first.Labels)
	require.Len(t, first.Background, 4)
	require.Len(t, first.Highlights, len(ds.Highlights))

	// An equal input built from fresh slices still hits the cache.
	again := tl.Frame(Input{
		Points:     slices.Clone(ds.Points),
		Highlights: slices.Clone(ds.Highlights),
		Layout:     DefaultLayout,
	})
	assert.Same(t, first, again)
}

func TestTimelineReusesStages(t *testing.T) {
	ds := SampleDataset(testDay)
	tl := newTestTimeline()
	first := tl.Frame(Input{Points: ds.Points, Highlights: ds.Highlights, Layout: DefaultLayout})

	fewer := tl.Frame(Input{Points: ds.Points, Highlights: ds.Highlights[:2], Layout: DefaultLayout})
	assert.NotSame(t, first, fewer)
	assert.Equal(t, first.Generation, fewer.Generation)
	assert.Same(t, &first.Series[0], &fewer.Series[0])
	assert.Same(t, &first.Segments[0], &fewer.Segments[0])
	assert.Len(t, fewer.Highlights, 2)

	narrow := tl.Frame(Input{Points: ds.Points, Highlights: ds.Highlights[:2], Layout: ResponsiveLayout(400)})
	assert.Equal(t, first.Generation, narrow.Generation)
	assert.Same(t, &first.Series[0], &narrow.Series[0])
	assert.NotSame(t, &first.Segments[0], &narrow.Segments[0])
	assert.Equal(t, 40.0, narrow.X.Min)

	changed := slices.Clone(ds.Points)
	changed[3].Level = 0.95
	moved := tl.Frame(Input{Points: changed, Highlights: ds.Highlights[:2], Layout: ResponsiveLayout(400)})
	assert.NotEqual(t, first.Generation, moved.Generation)
}

func TestTimelineEmpty(t *testing.T) {
	frame := newTestTimeline().Frame(Input{Layout: DefaultLayout})
	assert.Empty(t, frame.Series)
	assert.Empty(t, frame.Segments)
	assert.Empty(t, frame.Labels)
	assert.Empty(t, frame.Background)

	insight := frame.Insight(at(10, 0))
	assert.False(t, insight.HasPhase)
	assert.Zero(t, insight.Level)
	assert.Equal(t, "Low focus", insight.Focus)

	now := frame.Now(at(10, 0))
	assert.Equal(t, DefaultLayout.Height/2, now.Y)
}
