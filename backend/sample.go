package backend

import "time"

// sampleLevels are the hourly levels of a typical day, from midnight.
var sampleLevels = [...]float64{
	0.05, 0.05, 0.03, 0.02, 0.02, 0.1, 0.3, 0.5,
	0.7, 0.85, 0.9, 0.75, 0.6, 0.5, 0.55, 0.7,
	0.8, 0.75, 0.6, 0.5, 0.4, 0.3, 0.2, 0.15,
}

var sampleHighlights = []struct {
	hour  int
	label string
	color string
}{
	{0, "Bedtime", "#4a4a85"},
	{5, "Early Morning", "#7d6bb3"},
	{7, "Wake up", "#e77fd9"},
	{8, "Morning Peak", "#4287f5"},
	{13, "Midday Dip", "#b5703d"},
	{15, "Afternoon Rebound", "#4287f5"},
	{19, "Evening Wind Down", "#8c74e9"},
	{21, "Bedtime", "#4a4a85"},
}

// sampleNowHour is the hour the sample treats as the current time.
const sampleNowHour = 10

// SampleDataset returns a full day of hourly samples on day's UTC calendar date, with
// the following midnight closing the curve.
func SampleDataset(day time.Time) Dataset {
	y, m, d := day.UTC().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	at := func(hour int) string {
		return FormatTime(midnight.Add(time.Duration(hour) * time.Hour))
	}
	ds := Dataset{CurrentTime: at(sampleNowHour)}
	for hour, level := range sampleLevels {
		ds.Points = append(ds.Points, EnergyPoint{ID: float64(hour), Time: at(hour), Level: level})
	}
	ds.Points = append(ds.Points, EnergyPoint{ID: float64(len(sampleLevels)), Time: at(24), Level: 0.1})
	for _, h := range sampleHighlights {
		ds.Highlights = append(ds.Highlights, EnergyHighlight{Time: at(h.hour), Label: h.label, Color: h.color})
	}
	return ds
}
