package backend

import (
	"fmt"
	"time"

	"github.com/levenlabs/go-lflag"
)

// Config is the outcome of the backend's flags. Err is set when they describe an
// unusable configuration, in which case Bundle must not be used.
type Config struct {
	Bundle Bundle
	Err    error
}

// Configured declares the backend's flags and returns the configuration they describe.
// The configuration is populated once lflag.Configure runs.
func Configured() *Config {
	dataPath := lflag.String("data", "", "Dataset JSON file to chart, reloaded when it changes (default: built-in sample day)")
	themePath := lflag.String("theme", "", "HCL file overriding bands, day parts, tick spacing and time zone")
	refresh := lflag.Duration("now-refresh", DefaultNowRefresh, "How often the current time is re-read")
	live := lflag.Bool("live", false, "Follow the wall clock even when the dataset names its own current time")

	var c Config
	lflag.Do(func() {
		c.Bundle, c.Err = configure(*dataPath, *themePath, *refresh, *live, time.Now())
	})
	return &c
}

func configure(dataPath, themePath string, refresh time.Duration, live bool, day time.Time) (Bundle, error) {
	opts := DefaultOptions()
	if themePath != "" {
		var err error
		if opts, err = LoadTheme(themePath, opts); err != nil {
			return Bundle{}, fmt.Errorf("failed loading theme: %w", err)
		}
	}
	b := NewBundle(NewDatasource(dataPath, day), SystemClock, refresh, opts)
	b.Live = live
	return b, nil
}
