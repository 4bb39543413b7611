package backend

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type themeFile struct {
	InterpolationMinutes *int           `hcl:"interpolation_minutes,optional"`
	LabelStrideHours     *int           `hcl:"label_stride_hours,optional"`
	Location             *string        `hcl:"location,optional"`
	Bands                *themeBands    `hcl:"bands,block"`
	DayParts             []themeDayPart `hcl:"day_part,block"`
}

type themeBands struct {
	MediumAt    *float64 `hcl:"medium_at,optional"`
	HighAt      *float64 `hcl:"high_at,optional"`
	LowColor    *string  `hcl:"low_color,optional"`
	MediumColor *string  `hcl:"medium_color,optional"`
	HighColor   *string  `hcl:"high_color,optional"`
	LowLabel    *string  `hcl:"low_label,optional"`
	MediumLabel *string  `hcl:"medium_label,optional"`
	HighLabel   *string  `hcl:"high_label,optional"`
}

type themeDayPart struct {
	Label     string `hcl:"label,label"`
	StartHour int    `hcl:"start_hour"`
	Color     string `hcl:"color"`
}

// LoadTheme reads the HCL theme at path on top of base.
func LoadTheme(path string, base Options) (Options, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed reading theme: %w", err)
	}
	return DecodeTheme(src, path, base)
}

// DecodeTheme applies the HCL theme in src to base. Settings the theme omits keep
// their value from base. Listing any day_part replaces all of base's day parts.
func DecodeTheme(src []byte, filename string, base Options) (Options, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed parsing theme: %w", diags)
	}
	var tf themeFile
	if diags := gohcl.DecodeBody(file.Body, nil, &tf); diags.HasErrors() {
		return base, fmt.Errorf("failed decoding theme: %w", diags)
	}

	opts := base
	if tf.InterpolationMinutes != nil {
		if *tf.InterpolationMinutes <= 0 {
			return base, fmt.Errorf("interpolation_minutes must be positive, got %d", *tf.InterpolationMinutes)
		}
		opts.Interval = time.Duration(*tf.InterpolationMinutes) * time.Minute
	}
	if tf.LabelStrideHours != nil {
		if h := *tf.LabelStrideHours; h <= 0 || h > 24 {
			return base, fmt.Errorf("label_stride_hours must be within [1,24], got %d", h)
		}
		opts.LabelStride = *tf.LabelStrideHours
	}
	if tf.Location != nil {
		loc, err := time.LoadLocation(*tf.Location)
		if err != nil {
			return base, fmt.Errorf("invalid location: %w", err)
		}
		opts.Location = loc
	}
	if tf.Bands != nil {
		bands, err := applyBands(opts.Bands, *tf.Bands)
		if err != nil {
			return base, err
		}
		opts.Bands = bands
	}
	if len(tf.DayParts) > 0 {
		parts := make([]DayPart, len(tf.DayParts))
		for i, p := range tf.DayParts {
			if p.StartHour < 0 || p.StartHour > 23 {
				return base, fmt.Errorf("day_part %q: start_hour must be within [0,23], got %d", p.Label, p.StartHour)
			}
			if i > 0 && p.StartHour <= parts[i-1].StartHour {
				return base, fmt.Errorf("day_part %q: start_hour must be after %q", p.Label, parts[i-1].Label)
			}
			if _, err := ParseColor(p.Color); err != nil {
				return base, fmt.Errorf("day_part %q: %w", p.Label, err)
			}
			parts[i] = DayPart{Label: p.Label, StartHour: p.StartHour, Color: p.Color}
		}
		opts.DayParts = parts
	}
	return opts, nil
}

func applyBands(p BandPolicy, tb themeBands) (BandPolicy, error) {
	if tb.MediumAt != nil {
		p.MediumAt = *tb.MediumAt
	}
	if tb.HighAt != nil {
		p.HighAt = *tb.HighAt
	}
	if p.MediumAt < 0 || p.HighAt > 1 || p.MediumAt >= p.HighAt {
		return p, fmt.Errorf("band thresholds must satisfy 0 <= medium_at < high_at <= 1, got %v and %v", p.MediumAt, p.HighAt)
	}
	for band, c := range map[Band]*string{BandLow: tb.LowColor, BandMedium: tb.MediumColor, BandHigh: tb.HighColor} {
		if c == nil {
			continue
		}
		if _, err := ParseColor(*c); err != nil {
			return p, fmt.Errorf("%s band color: %w", band, err)
		}
		p.Colors[band] = *c
	}
	for band, l := range map[Band]*string{BandLow: tb.LowLabel, BandMedium: tb.MediumLabel, BandHigh: tb.HighLabel} {
		if l != nil {
			p.Labels[band] = *l
		}
	}
	return p, nil
}
