package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"github.com/levenlabs/go-lflag"
	"github.com/levenlabs/go-llog"

	"github.com/stivex001/energy-timeline/backend"
)

func main() {
	cfg := backend.Configured()
	lflag.Configure()
	configureLogging()
	if cfg.Err != nil {
		slog.Error("invalid configuration", "err", cfg.Err)
		os.Exit(1)
	}

	go func() {
		w := app.NewWindow(
			app.Title("Energy Timeline"),
			app.Size(unit.Dp(960), unit.Dp(640)),
		)
		if err := loop(w, cfg.Bundle); err != nil {
			slog.Error("window failed", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// configureLogging installs a JSON slog handler at the level lflag gave llog.
func configureLogging() {
	var level slog.Level
	switch llog.GetLevel() {
	case llog.DebugLevel:
		level = slog.LevelDebug
	case llog.InfoLevel:
		level = slog.LevelInfo
	case llog.WarnLevel:
		level = slog.LevelWarn
	case llog.ErrorLevel:
		level = slog.LevelError
	default:
		panic(fmt.Errorf("unknown log level: %s", llog.GetLevel().String()))
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
	slog.Debug("logger configured", slog.String("level", level.String()))
}

func loop(w *app.Window, bundle backend.Bundle) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ws := backend.NewWindowState(ctx, bundle, w)
	expl := explorer.NewExplorer(w)
	ui := NewUI(ws, expl)
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
			ws.Controller.Sweep()
		}
	}
}
