package backend

import (
	"time"

	"golang.org/x/exp/constraints"
)

// ParsedPoint is an EnergyPoint with its timestamp resolved. Valid is false when the
// timestamp could not be parsed; such points are kept in place but never contribute
// to extents or nearest-point lookups.
type ParsedPoint struct {
	EnergyPoint
	Date  time.Time
	Valid bool
}

// DefaultInterval is the spacing of synthetic points inserted between samples.
const DefaultInterval = 15 * time.Minute

// Parse resolves the timestamps of points without densifying them.
func Parse(points []EnergyPoint) []ParsedPoint {
	parsed := make([]ParsedPoint, len(points))
	for i, p := range points {
		date, ok := ParseTime(p.Time)
		parsed[i] = ParsedPoint{EnergyPoint: p, Date: date, Valid: ok}
	}
	return parsed
}

// Interpolate parses points and inserts linearly interpolated points every interval
// between each consecutive pair. Original points are retained unmodified and in order.
// Synthetic points take the id of the preceding original point plus step*0.01.
func Interpolate(points []EnergyPoint, interval time.Duration) []ParsedPoint {
	parsed := Parse(points)
	if len(parsed) < 2 || interval <= 0 {
		return parsed
	}
	out := make([]ParsedPoint, 0, len(parsed))
	for i := 0; i < len(parsed)-1; i++ {
		current, next := parsed[i], parsed[i+1]
		out = append(out, current)
		if !current.Valid || !next.Valid {
			continue
		}
		gap := next.Date.Sub(current.Date)
		steps := int(gap / interval)
		for step := 1; step < steps; step++ {
			t := float64(step) / float64(steps)
			date := current.Date.Add(time.Duration(float64(gap) * t))
			out = append(out, ParsedPoint{
				EnergyPoint: EnergyPoint{
					ID:    current.ID + float64(step)*0.01,
					Time:  FormatTime(date),
					Level: lerp(current.Level, next.Level, t),
				},
				Date:  date,
				Valid: true,
			})
		}
	}
	return append(out, parsed[len(parsed)-1])
}

// Extent returns the earliest and latest valid dates in series.
func Extent(series []ParsedPoint) (start, end time.Time, ok bool) {
	for _, p := range series {
		if !p.Valid {
			continue
		}
		if !ok {
			start, end, ok = p.Date, p.Date, true
			continue
		}
		if p.Date.Before(start) {
			start = p.Date
		}
		if p.Date.After(end) {
			end = p.Date
		}
	}
	return start, end, ok
}

// Closest returns the index of the valid point whose date is nearest to target. Ties
// go to the earliest index.
func Closest(series []ParsedPoint, target time.Time) (int, bool) {
	best := -1
	var bestDiff time.Duration
	for i, p := range series {
		if !p.Valid {
			continue
		}
		diff := absDuration(p.Date.Sub(target))
		if best < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best, best >= 0
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

func lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
