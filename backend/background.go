package backend

import "time"

// DayPart is a named band of the day starting at StartHour and running until the next
// part's start (or hour 24 for the last part).
type DayPart struct {
	Label     string
	StartHour int
	Color     string
}

// DefaultDayParts splits the day into four equal parts.
var DefaultDayParts = []DayPart{
	{Label: "Night", StartHour: 0, Color: "rgba(74, 74, 133, 0.1)"},
	{Label: "Morning", StartHour: 6, Color: "rgba(66, 135, 245, 0.08)"},
	{Label: "Afternoon", StartHour: 12, Color: "rgba(220, 143, 105, 0.08)"},
	{Label: "Evening", StartHour: 18, Color: "rgba(74, 74, 133, 0.1)"},
}

// BackgroundSegment is a shaded day-part rectangle spanning [X1, X2].
type BackgroundSegment struct {
	X1, X2 float64
	Label  string
	Color  string
}

// BuildBackgrounds lays parts over every local day in loc that the scale's domain
// touches and emits the portion of each part that overlaps the domain. Parts that do
// not overlap are omitted.
func BuildBackgrounds(xs TimeScale, parts []DayPart, loc *time.Location) []BackgroundSegment {
	if !xs.valid || len(parts) == 0 {
		return nil
	}
	var segments []BackgroundSegment
	for day := atHour(xs.Start, 0, loc); day.Before(xs.End); day = atHour(day, 24, loc) {
		for i, part := range parts {
			endHour := 24
			if i+1 < len(parts) {
				endHour = parts[i+1].StartHour
			}
			start := atHour(day, part.StartHour, loc)
			end := atHour(day, endHour, loc)
			if start.Before(xs.Start) {
				start = xs.Start
			}
			if end.After(xs.End) {
				end = xs.End
			}
			if !start.Before(end) {
				continue
			}
			segments = append(segments, BackgroundSegment{
				X1:    xs.X(start),
				X2:    xs.X(end),
				Label: part.Label,
				Color: part.Color,
			})
		}
	}
	return segments
}

// atHour returns hour:00 on the calendar date of day in loc. Hour 24 is the following
// midnight.
func atHour(day time.Time, hour int, loc *time.Location) time.Time {
	y, m, d := day.In(loc).Date()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}
