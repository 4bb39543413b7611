package backend

import (
	"context"
	"time"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
)

// WindowState is the per-window view of the backend.
type WindowState struct {
	Bundle
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}

// Bundle holds the backend services shared by every window.
type Bundle struct {
	Datasource *Datasource
	Clock      Clock
	// NowRefresh is how often the clock is re-read.
	NowRefresh time.Duration
	// Live ignores a dataset's own current time in favor of Clock.
	Live    bool
	Options Options
}

func NewBundle(ds *Datasource, clock Clock, refresh time.Duration, opts Options) Bundle {
	if clock == nil {
		clock = SystemClock
	}
	if refresh <= 0 {
		refresh = DefaultNowRefresh
	}
	return Bundle{
		Datasource: ds,
		Clock:      clock,
		NowRefresh: refresh,
		Options:    opts,
	}
}

// NowStream is the provider for the bundle's current time.
func (b Bundle) NowStream(ctx context.Context) <-chan time.Time {
	return NowStream(b.Clock, b.NowRefresh)(ctx)
}
