package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBackgroundsFullDay(t *testing.T) {
	series := Parse(SampleDataset(testDay).Points)
	xs := NewTimeScale(series, DefaultLayout)

	segments := BuildBackgrounds(xs, DefaultDayParts, time.UTC)
	require.Len(t, segments, 4)
	for i, seg := range segments {
		assert.Equal(t, DefaultDayParts[i].Label, seg.Label)
		assert.Less(t, seg.X1, seg.X2)
	}
	assert.Equal(t, xs.Min, segments[0].X1)
	assert.Equal(t, xs.Max, segments[3].X2)
	assert.Equal(t, segments[0].X2, segments[1].X1)
}

func TestBuildBackgroundsPartialDay(t *testing.T) {
	xs := NewTimeScale(Parse(hourlyPoints(5, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9)), DefaultLayout)

	segments := BuildBackgrounds(xs, DefaultDayParts, time.UTC)
	require.Len(t, segments, 3)
	assert.Equal(t, "Night", segments[0].Label)
	assert.Equal(t, xs.Min, segments[0].X1)
	assert.Equal(t, xs.X(at(6, 0)), segments[0].X2)
	assert.Equal(t, "Afternoon", segments[2].Label)
	assert.Equal(t, xs.Max, segments[2].X2)
	for _, seg := range segments {
		assert.Less(t, seg.X1, seg.X2)
	}
}

func TestBuildBackgroundsDegenerate(t *testing.T) {
	assert.Empty(t, BuildBackgrounds(NewTimeScale(nil, DefaultLayout), DefaultDayParts, time.UTC))
	single := NewTimeScale(Parse(hourlyPoints(7, 0.5)), DefaultLayout)
	assert.Empty(t, BuildBackgrounds(single, DefaultDayParts, time.UTC))
}

func TestBuildTimeLabels(t *testing.T) {
	xs := NewTimeScale(Parse(SampleDataset(testDay).Points), DefaultLayout)
	labels := BuildTimeLabels(xs, DefaultLabelStride, time.UTC)

	var texts []string
	for _, l := range labels {
		texts = append(texts, l.Label)
	}
	assert.Equal(t, []string{"12 AM", "4 AM", "8 AM", "12 PM", "4 PM", "8 PM", "12 AM"}, texts)
	assert.Equal(t, xs.Min, labels[0].X)
	assert.Equal(t, xs.Max, labels[len(labels)-1].X)

	partial := NewTimeScale(Parse(hourlyPoints(5, 0.1, 0.2, 0.3, 0.4)), DefaultLayout)
	labels = BuildTimeLabels(partial, DefaultLabelStride, time.UTC)
	require.Len(t, labels, 1)
	assert.Equal(t, "8 AM", labels[0].Label)

	assert.Empty(t, BuildTimeLabels(xs, 0, time.UTC))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "9 AM", FormatTimeLabel(at(9, 0)))
	assert.Equal(t, "9:30 AM", FormatTimeLabel(at(9, 30)))
	assert.Equal(t, "12 PM", FormatTimeLabel(at(12, 0)))
	assert.Equal(t, "1:05 PM", FormatTime12Hour(at(13, 5)))
	assert.Equal(t, "12:00 AM", FormatTime12Hour(at(0, 0)))
}
