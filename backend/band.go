package backend

// Band is a coarse classification of an energy level.
type Band uint8

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMedium:
		return "medium"
	case BandHigh:
		return "high"
	default:
		return "unknown"
	}
}

// BandPolicy holds the thresholds and presentation of each band. Thresholds are
// inclusive lower bounds: a level equal to a threshold belongs to the higher band.
type BandPolicy struct {
	MediumAt float64
	HighAt   float64
	// Colors and Labels are indexed by Band.
	Colors [3]string
	Labels [3]string
}

// DefaultBands is the stock band policy.
var DefaultBands = BandPolicy{
	MediumAt: 0.3,
	HighAt:   0.6,
	Colors: [3]string{
		BandLow:    "#B7148E",
		BandMedium: "#DC8F69",
		BandHigh:   "#256EFF",
	},
	Labels: [3]string{
		BandLow:    "Low focus",
		BandMedium: "Medium focus",
		BandHigh:   "High focus",
	},
}

// Classify returns the band for level.
func (p BandPolicy) Classify(level float64) Band {
	switch {
	case level >= p.HighAt:
		return BandHigh
	case level >= p.MediumAt:
		return BandMedium
	default:
		return BandLow
	}
}

// Color returns the band color for level.
func (p BandPolicy) Color(level float64) string {
	return p.Colors[p.Classify(level)]
}

// FocusState returns the human label for level.
func (p BandPolicy) FocusState(level float64) string {
	return p.Labels[p.Classify(level)]
}
