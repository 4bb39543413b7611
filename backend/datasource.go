package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gioui.org/x/explorer"
	"github.com/fsnotify/fsnotify"
)

// Loaded is one result of reading a dataset. Err is set when the read failed; Dataset
// is then the zero value and callers should keep whatever they displayed before.
type Loaded struct {
	Source  string
	Dataset Dataset
	Err     error
}

// Datasource produces datasets for the chart, either from a file on disk that is
// reloaded when it changes, from a file the user picks, or from the built-in sample.
type Datasource struct {
	// Path is the dataset file to watch. Empty means the built-in sample.
	Path string
	// Day anchors the built-in sample.
	Day time.Time
}

// NewDatasource returns a datasource reading path, or the sample for day when path is
// empty.
func NewDatasource(path string, day time.Time) *Datasource {
	return &Datasource{Path: path, Day: day}
}

// Stream returns a stream provider for the configured source.
func (d *Datasource) Stream(ctx context.Context) <-chan Loaded {
	if d.Path == "" {
		out := make(chan Loaded, 1)
		out <- Loaded{Source: "sample", Dataset: SampleDataset(d.Day)}
		close(out)
		return out
	}
	return d.watch(ctx, d.Path)
}

// LoadFile reads and decodes the dataset at path.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed opening dataset: %w", err)
	}
	defer f.Close()
	ds, err := DecodeDataset(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	warnMalformed(path, ds)
	return ds, nil
}

// watch emits the dataset at path and re-emits it each time the file is written or
// replaced. The parent directory is watched so that editors which save by renaming a
// temporary file over the original are still noticed.
func (d *Datasource) watch(ctx context.Context, path string) <-chan Loaded {
	out := make(chan Loaded)
	go func() {
		defer close(out)
		send := func(l Loaded) bool {
			select {
			case out <- l:
				return true
			case <-ctx.Done():
				return false
			}
		}
		load := func() Loaded {
			ds, err := LoadFile(path)
			if err != nil {
				slog.Warn("failed loading dataset", "path", path, "err", err)
			} else {
				slog.Info("dataset loaded", "path", path, "points", len(ds.Points), "highlights", len(ds.Highlights))
			}
			return Loaded{Source: path, Dataset: ds, Err: err}
		}
		// Watch before the first read so no write in between is missed.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			send(Loaded{Source: path, Err: fmt.Errorf("failed creating file watcher: %w", err)})
			return
		}
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			send(Loaded{Source: path, Err: fmt.Errorf("failed watching %s: %w", path, err)})
			return
		}
		if !send(load()) {
			return
		}
		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !(ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)) {
					continue
				}
				if !send(load()) {
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("file watcher error", "path", path, "err", err)
			}
		}
	}()
	return out
}

// Choose returns a stream provider that asks the user for a dataset file and emits
// what it contains. Dismissing the picker emits nothing.
func Choose(expl *explorer.Explorer) func(ctx context.Context) <-chan Loaded {
	return func(ctx context.Context) <-chan Loaded {
		out := make(chan Loaded, 1)
		go func() {
			defer close(out)
			file, err := expl.ChooseFile(".json")
			if errors.Is(err, explorer.ErrUserDecline) {
				return
			}
			if err != nil {
				out <- Loaded{Source: "picker", Err: fmt.Errorf("failed choosing dataset: %w", err)}
				return
			}
			out <- readChosen(file)
		}()
		return out
	}
}

func readChosen(file io.ReadCloser) Loaded {
	defer file.Close()
	source := "picker"
	if f, ok := file.(interface{ Name() string }); ok {
		source = f.Name()
	}
	ds, err := DecodeDataset(file)
	if err != nil {
		return Loaded{Source: source, Err: err}
	}
	warnMalformed(source, ds)
	slog.Info("dataset loaded", "path", source, "points", len(ds.Points), "highlights", len(ds.Highlights))
	return Loaded{Source: source, Dataset: ds}
}

// warnMalformed logs timestamps that will be excluded from the chart.
func warnMalformed(source string, ds Dataset) {
	for _, p := range ds.Points {
		if _, ok := ParseTime(p.Time); !ok {
			slog.Warn("malformed point timestamp", "source", source, "id", p.ID, "time", p.Time)
		}
	}
	for _, h := range ds.Highlights {
		if _, ok := ParseTime(h.Time); !ok {
			slog.Warn("malformed highlight timestamp", "source", source, "label", h.Label, "time", h.Time)
		}
	}
}
