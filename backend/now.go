package backend

import "time"

// NowPosition is the projected current-time marker.
type NowPosition struct {
	X, Y  float64
	Level float64
	// Time is the re-anchored, clamped instant the marker represents.
	Time time.Time
}

// AlignToDomain reduces now to its hour and minute in loc and moves that time of day
// to its first occurrence at or after the domain start, then clamps the result to the
// domain. It returns now unchanged when the domain is empty.
func AlignToDomain(now time.Time, xs TimeScale, loc *time.Location) time.Time {
	if !xs.valid {
		return now
	}
	local := now.In(loc)
	y, m, d := xs.Start.In(loc).Date()
	anchored := time.Date(y, m, d, local.Hour(), local.Minute(), 0, 0, loc)
	if anchored.Before(xs.Start) {
		// The domain starts late on its first local day; the time of day falls on the next.
		anchored = time.Date(y, m, d+1, local.Hour(), local.Minute(), 0, 0, loc)
	}
	return xs.Clamp(anchored)
}

// ProjectNow places the current-time marker.
func ProjectNow(now time.Time, series []ParsedPoint, xs TimeScale, ys LevelScale, layout Layout, loc *time.Location) NowPosition {
	if !xs.valid {
		return NowPosition{Y: layout.Height / 2, Time: now}
	}
	t := AlignToDomain(now, xs, loc)
	pos := NowPosition{X: xs.X(t), Y: layout.Height / 2, Time: t}
	if idx, ok := Closest(series, t); ok {
		pos.Level = series[idx].Level
		pos.Y = ys.Y(pos.Level)
	}
	return pos
}
