package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/levenlabs/go-lflag"

	"github.com/stivex001/energy-timeline/backend"
)

func main() {
	date := lflag.String("date", "", "Calendar date of the sample day, as YYYY-MM-DD (default: today, UTC)")
	outputName := lflag.String("output", "-", "Output file for the dataset JSON")
	lflag.Configure()

	day := time.Now().UTC()
	if *date != "" {
		var err error
		day, err = time.Parse(time.DateOnly, *date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -date %q: %v\n", *date, err)
			os.Exit(2)
		}
	}

	var output io.Writer
	if *outputName == "-" {
		output = os.Stdout
	} else {
		f, err := os.Create(*outputName)
		if err != nil {
			slog.Error("failed creating output file", "path", *outputName, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		output = f
	}

	ds := backend.SampleDataset(day)
	if err := backend.EncodeDataset(output, ds); err != nil {
		slog.Error("failed writing dataset", "err", err)
		os.Exit(1)
	}
	slog.Debug("wrote sample day", "date", day.Format(time.DateOnly), "points", len(ds.Points))
}
