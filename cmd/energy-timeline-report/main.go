package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/levenlabs/go-lflag"

	"github.com/stivex001/energy-timeline/backend"
)

func main() {
	dataPath := lflag.String("data", "", "Dataset JSON file to describe (default: built-in sample day)")
	themePath := lflag.String("theme", "", "HCL file overriding bands, day parts and time zone")
	atFlag := lflag.String("at", "", "Time of day to describe, as 15:04, or a full timestamp (default: the dataset's current time, else now)")
	noColor := lflag.Bool("no-color", false, "Disable colored output")
	lflag.Configure()

	if *noColor {
		color.NoColor = true
	}

	opts := backend.DefaultOptions()
	if *themePath != "" {
		var err error
		if opts, err = backend.LoadTheme(*themePath, opts); err != nil {
			slog.Error("failed loading theme", "err", err)
			os.Exit(1)
		}
	}

	ds := backend.SampleDataset(time.Now())
	if *dataPath != "" {
		var err error
		if ds, err = backend.LoadFile(*dataPath); err != nil {
			slog.Error("failed loading dataset", "err", err)
			os.Exit(1)
		}
	}
	if !ds.Initialized() {
		slog.Error("dataset has no points", "path", *dataPath)
		os.Exit(1)
	}

	now, err := resolveTime(*atFlag, ds, opts.Location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -at %q: %v\n", *atFlag, err)
		os.Exit(2)
	}

	frame := backend.NewTimeline(opts).Frame(backend.Input{
		Points:     ds.Points,
		Highlights: ds.Highlights,
		Layout:     backend.DefaultLayout,
	})
	report(os.Stdout, frame, now)
}

// resolveTime picks the instant to describe. A bare time of day is taken in loc.
func resolveTime(at string, ds backend.Dataset, loc *time.Location) (time.Time, error) {
	if at == "" {
		if t, ok := ds.Now(); ok {
			return t, nil
		}
		return time.Now(), nil
	}
	if t, ok := backend.ParseTime(at); ok {
		return t, nil
	}
	clock, err := time.Parse("15:04", at)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := time.Now().In(loc).Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

// swatch returns a printer in the given CSS color, or in bold when it doesn't parse.
func swatch(css string) *color.Color {
	c, err := backend.ParseColor(css)
	if err != nil {
		return color.New(color.Bold)
	}
	return color.RGB(int(c.R), int(c.G), int(c.B)).Add(color.Bold)
}

// report describes frame at now, aligned onto the frame's day.
func report(w io.Writer, frame *backend.Frame, now time.Time) {
	loc := frame.Location()
	bands := frame.Bands()
	insight := frame.Insight(now)
	now = frame.Now(now).Time
	heading := color.New(color.FgBlue, color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", heading("Now"), backend.FormatTime12Hour(now.In(loc)))
	if insight.HasPhase {
		fmt.Fprintf(w, "%s %s %s\n", heading("Phase"),
			swatch(insight.Phase.Color).Sprint(insight.Phase.Label),
			faint("since "+backend.FormatTime12Hour(insight.Phase.Date.In(loc))))
	}
	fmt.Fprintf(w, "%s %.0f%% %s\n", heading("Level"), insight.Level*100,
		swatch(insight.Color).Sprint(insight.Focus))
	fmt.Fprintln(w, insight.Sentence())

	if len(frame.Highlights) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Highlights"))
	for _, h := range frame.Highlights {
		when := "invalid"
		if h.Valid {
			when = backend.FormatTime12Hour(h.Date.In(loc))
		}
		fmt.Fprintf(w, "  %8s  %s %4.0f%%  %s\n", when,
			swatch(h.Color).Sprintf("%-20s", h.Label), h.Level*100,
			swatch(bands.Color(h.Level)).Sprint(bands.FocusState(h.Level)))
	}
}
