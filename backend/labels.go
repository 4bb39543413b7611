package backend

import "time"

// DefaultLabelStride is the spacing of time axis ticks, in hours.
const DefaultLabelStride = 4

// TimeLabel is one tick on the time axis.
type TimeLabel struct {
	Time  time.Time
	X     float64
	Label string
}

// BuildTimeLabels emits a tick every strideHours from local midnight (in loc) of the
// domain's first day, keeping those within the domain.
func BuildTimeLabels(xs TimeScale, strideHours int, loc *time.Location) []TimeLabel {
	if !xs.valid || strideHours <= 0 {
		return nil
	}
	var labels []TimeLabel
	for hour := 0; ; hour += strideHours {
		t := atHour(xs.Start, hour, loc)
		if t.After(xs.End) {
			break
		}
		if t.Before(xs.Start) {
			continue
		}
		labels = append(labels, TimeLabel{
			Time:  t,
			X:     xs.X(t),
			Label: FormatTimeLabel(t.In(loc)),
		})
	}
	return labels
}

// FormatTimeLabel renders an axis tick: "9 AM" on the hour, "9:30 AM" otherwise.
func FormatTimeLabel(t time.Time) string {
	if t.Minute() == 0 {
		return t.Format("3 PM")
	}
	return FormatTime12Hour(t)
}

// FormatTime12Hour renders t as "9:05 AM".
func FormatTime12Hour(t time.Time) string {
	return t.Format("3:04 PM")
}
