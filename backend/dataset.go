package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// EnergyPoint is one sample of the energy curve as supplied by the data provider.
type EnergyPoint struct {
	ID    float64 `json:"id"`
	Time  string  `json:"time"`
	Level float64 `json:"level"`
}

// EnergyHighlight is a labeled instant of interest overlaid on the timeline.
type EnergyHighlight struct {
	Time  string `json:"time"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Dataset is the full input contract of the chart: the series, its highlights, and
// optionally the instant the chart should treat as "now".
type Dataset struct {
	Points      []EnergyPoint     `json:"points"`
	Highlights  []EnergyHighlight `json:"highlights"`
	CurrentTime string            `json:"currentTime,omitempty"`
}

// Initialized reports whether the dataset has anything to draw.
func (d Dataset) Initialized() bool {
	return len(d.Points) != 0
}

// Now returns the dataset's explicit current time, if it carries a valid one.
func (d Dataset) Now() (time.Time, bool) {
	if d.CurrentTime == "" {
		return time.Time{}, false
	}
	return ParseTime(d.CurrentTime)
}

// DecodeDataset reads a JSON dataset.
func DecodeDataset(r io.Reader) (Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Dataset{}, fmt.Errorf("failed decoding dataset: %w", err)
	}
	for i, p := range d.Points {
		if p.Level < 0 || p.Level > 1 {
			return Dataset{}, fmt.Errorf("point %d (id %v) has level %v outside [0,1]", i, p.ID, p.Level)
		}
	}
	return d, nil
}

// EncodeDataset writes d as indented JSON.
func EncodeDataset(w io.Writer, d Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed encoding dataset: %w", err)
	}
	return nil
}

// isoLayout matches the millisecond UTC form produced for synthetic points.
const isoLayout = "2006-01-02T15:04:05.000Z"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 timestamp. Timestamps without a zone are read as UTC.
// Malformed input yields the zero time and false; callers keep the value as an invalid
// sentinel rather than failing.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders t the way synthetic points carry their timestamps.
func FormatTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
