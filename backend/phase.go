package backend

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Phase is a highlight with its parsed date.
type Phase struct {
	EnergyHighlight
	Date time.Time
}

// CurrentPhase returns the highlight whose interval contains now: the last highlight
// at or before now whose successor is after now. When now lies outside every interval
// (after the last highlight, or before the first) the chronologically last highlight
// is returned. It returns false only when there are no highlights.
//
// Highlights with malformed timestamps sort as the zero time.
func CurrentPhase(now time.Time, highlights []EnergyHighlight) (Phase, bool) {
	if len(highlights) == 0 {
		return Phase{}, false
	}
	sorted := make([]Phase, len(highlights))
	for i, h := range highlights {
		date, _ := ParseTime(h.Time)
		sorted[i] = Phase{EnergyHighlight: h, Date: date}
	}
	slices.SortStableFunc(sorted, func(a, b Phase) int {
		return a.Date.Compare(b.Date)
	})
	for i := 0; i < len(sorted)-1; i++ {
		if !now.Before(sorted[i].Date) && now.Before(sorted[i+1].Date) {
			return sorted[i], true
		}
	}
	// TODO: confirm with product whether a time before the first highlight should
	// report no phase (or the first one) instead of the last.
	return sorted[len(sorted)-1], true
}

// CurrentLevel returns the level of the series point nearest to now, after aligning
// now onto the series' day the same way the current-time marker does. An empty series
// yields 0.
func CurrentLevel(now time.Time, series []ParsedPoint, xs TimeScale, loc *time.Location) float64 {
	return levelAt(series, AlignToDomain(now, xs, loc))
}

// levelAt is the level of the point nearest t, or 0 for an empty series.
func levelAt(series []ParsedPoint, t time.Time) float64 {
	idx, ok := Closest(series, t)
	if !ok {
		return 0
	}
	return series[idx].Level
}

// Insight is what the surrounding page needs to describe the present.
type Insight struct {
	Phase    Phase
	HasPhase bool
	Level    float64
	Band     Band
	Focus    string
	Color    string
}

// Sentence describes the insight in one line of prose.
func (in Insight) Sentence() string {
	focus := strings.ToLower(in.Focus)
	if !in.HasPhase {
		return fmt.Sprintf("Your energy level is %s right now.", focus)
	}
	return fmt.Sprintf("Your energy level is %s right now as you are in your %s.", focus, in.Phase.Label)
}
