package backend

import "time"

// HighlightWithPosition is a highlight projected into chart space. Level is the level
// of the series point nearest to the highlight. Valid is false when the highlight's
// timestamp is malformed; X is then pinned to the start of the range.
type HighlightWithPosition struct {
	EnergyHighlight
	X, Y  float64
	Date  time.Time
	Level float64
	Valid bool
}

const (
	// labelColumnWidth is the width of the highlight label column beyond the offset.
	labelColumnWidth = 140
	labelInset       = 8
	// labelRaise lifts each label above its marker's y.
	labelRaise = 8
)

// ProjectHighlights positions each highlight in input order. Highlights outside the
// domain are pinned to the nearest end of the range.
func ProjectHighlights(highlights []EnergyHighlight, series []ParsedPoint, xs TimeScale, ys LevelScale, layout Layout) []HighlightWithPosition {
	out := make([]HighlightWithPosition, len(highlights))
	for i, h := range highlights {
		date, ok := ParseTime(h.Time)
		hp := HighlightWithPosition{
			EnergyHighlight: h,
			Date:            date,
			Valid:           ok,
			X:               xs.Min,
			Y:               layout.Height / 2,
		}
		if ok {
			hp.X = clamp(xs.X(date), xs.Min, xs.Max)
			if idx, found := Closest(series, date); found {
				hp.Level = series[idx].Level
				hp.Y = ys.Y(hp.Level)
			}
		}
		out[i] = hp
	}
	return out
}

// LabelAnchor returns where the highlight's annotation label starts: in the column
// right of the plot, vertically at the marker. It returns false when the layout has no
// label column.
func (l Layout) LabelAnchor(h HighlightWithPosition) (Point, bool) {
	if l.HighlightsOffset <= 0 || !h.Valid {
		return Point{}, false
	}
	return Point{
		X: l.Width - (l.HighlightsOffset + labelColumnWidth) + labelInset,
		Y: h.Y - labelRaise,
	}, true
}
