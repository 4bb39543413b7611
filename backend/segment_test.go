package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectAt(series []ParsedPoint, xs TimeScale, ys LevelScale, i int) Point {
	return Point{X: xs.X(series[i].Date), Y: ys.Y(series[i].Level)}
}

func TestBuildSegments(t *testing.T) {
	series := Parse(hourlyPoints(0, 0.1, 0.2, 0.5, 0.7, 0.8))
	xs := NewTimeScale(series, DefaultLayout)
	ys := NewLevelScale(DefaultLayout)

	segments := BuildSegments(series, xs, ys, DefaultBands)
	require.Len(t, segments, 3)

	want := []struct {
		band       Band
		start, end int
	}{
		{BandLow, 0, 2},
		{BandMedium, 2, 3},
		{BandHigh, 3, 4},
	}
	for i, w := range want {
		seg := segments[i]
		assert.Equal(t, w.band, seg.Band)
		assert.Equal(t, DefaultBands.Colors[w.band], seg.Color)
		assert.Equal(t, w.start, seg.StartIndex)
		assert.Equal(t, w.end, seg.EndIndex)
		assert.Len(t, seg.Path.Curves, w.end-w.start)
		assert.Equal(t, projectAt(series, xs, ys, w.start), seg.Path.Start)
		assert.Equal(t, projectAt(series, xs, ys, w.end), seg.Path.End())
	}
}

func TestBuildSegmentsCoverSeries(t *testing.T) {
	ds := SampleDataset(testDay)
	series := Interpolate(ds.Points, DefaultInterval)
	xs := NewTimeScale(series, DefaultLayout)
	ys := NewLevelScale(DefaultLayout)

	segments := BuildSegments(series, xs, ys, DefaultBands)
	require.NotEmpty(t, segments)
	assert.Equal(t, 0, segments[0].StartIndex)
	assert.Equal(t, len(series)-1, segments[len(segments)-1].EndIndex)
	for i, seg := range segments {
		assert.Less(t, seg.StartIndex, seg.EndIndex)
		if i > 0 {
			assert.Equal(t, segments[i-1].EndIndex, seg.StartIndex)
			assert.NotEqual(t, segments[i-1].Band, seg.Band)
		}
		for j := seg.StartIndex; j < seg.EndIndex; j++ {
			assert.Equal(t, seg.Band, DefaultBands.Classify(series[j].Level))
		}
	}
}

func TestBuildSegmentsShortSeries(t *testing.T) {
	xs := NewTimeScale(nil, DefaultLayout)
	ys := NewLevelScale(DefaultLayout)
	assert.Nil(t, BuildSegments(nil, xs, ys, DefaultBands))
	assert.Nil(t, BuildSegments(Parse(hourlyPoints(0, 0.5)), xs, ys, DefaultBands))
}

func TestCatmullRom(t *testing.T) {
	pts := []Point{{0, 0}, {10, 10}, {20, 0}, {30, 10}}
	path := catmullRom(pts)
	require.Len(t, path.Curves, 3)
	assert.Equal(t, pts[0], path.Start)
	for i, c := range path.Curves {
		assert.Equal(t, pts[i+1], c.To)
	}

	straight := catmullRom(pts[:2])
	require.Len(t, straight.Curves, 1)
	assert.Equal(t, pts[1], straight.End())

	assert.Empty(t, catmullRom(pts[:1]).Curves)
	assert.Equal(t, Point{}, catmullRom(nil).End())
}
