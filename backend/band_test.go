package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		level float64
		band  Band
		color string
		focus string
	}{
		{0, BandLow, "#B7148E", "Low focus"},
		{0.29999, BandLow, "#B7148E", "Low focus"},
		{0.3, BandMedium, "#DC8F69", "Medium focus"},
		{0.59999, BandMedium, "#DC8F69", "Medium focus"},
		{0.6, BandHigh, "#256EFF", "High focus"},
		{1, BandHigh, "#256EFF", "High focus"},
	} {
		assert.Equal(t, tc.band, DefaultBands.Classify(tc.level), "level %v", tc.level)
		assert.Equal(t, tc.color, DefaultBands.Color(tc.level), "level %v", tc.level)
		assert.Equal(t, tc.focus, DefaultBands.FocusState(tc.level), "level %v", tc.level)
	}
}

func TestBandOverride(t *testing.T) {
	p := DefaultBands
	p.HighAt = 0.8
	assert.Equal(t, BandMedium, p.Classify(0.7))
	assert.Equal(t, BandHigh, DefaultBands.Classify(0.7))
	assert.Equal(t, "high", BandHigh.String())
}
