package main

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/stivex001/energy-timeline/backend"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var pauseIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPause)
	return icon
}()

var playIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPlayArrow)
	return icon
}()

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws   backend.WindowState
	expl *explorer.Explorer
	th   *material.Theme

	timeline *backend.Timeline
	chart    TimelineChart
	key      HighlightKey

	dataStream *stream.Stream[backend.Loaded]
	pickStream *stream.Stream[backend.Loaded]
	nowStream  *stream.Stream[time.Time]

	dataset backend.Dataset
	source  string
	loadErr string

	now      time.Time
	paused   bool
	frozenAt time.Time

	pauseBtn    widget.Clickable
	explorerBtn widget.Clickable
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	return &UI{
		ws:         ws,
		th:         th,
		expl:       expl,
		timeline:   backend.NewTimeline(ws.Bundle.Options),
		dataStream: stream.New(ws.Controller, ws.Bundle.Datasource.Stream),
		nowStream:  stream.New(ws.Controller, ws.Bundle.NowStream),
	}
}

func (ui *UI) apply(l backend.Loaded) {
	if l.Err != nil {
		ui.loadErr = l.Err.Error()
		return
	}
	ui.loadErr = ""
	ui.dataset = l.Dataset
	ui.source = l.Source
}

// Update the state of the UI from its streams and input events.
func (ui *UI) Update(gtx C) {
	var loaded backend.Loaded
	if ui.dataStream.ReadInto(gtx, &loaded, backend.Loaded{}) {
		ui.apply(loaded)
	}
	if ui.pickStream != nil {
		var picked backend.Loaded
		if ui.pickStream.ReadInto(gtx, &picked, backend.Loaded{}) {
			ui.apply(picked)
			if picked.Err == nil {
				// The picked file replaces the configured source.
				ui.dataStream = ui.pickStream
			}
			ui.pickStream = nil
		}
	}
	if ui.explorerBtn.Clicked(gtx) {
		ui.pickStream = stream.New(ui.ws.Controller, backend.Choose(ui.expl))
	}
	if ui.pauseBtn.Clicked(gtx) {
		ui.paused = !ui.paused
		ui.frozenAt = ui.now
		slog.Debug("clock toggled", "paused", ui.paused)
	}
	switch {
	case ui.paused:
		ui.now = ui.frozenAt
	default:
		if !ui.nowStream.ReadInto(gtx, &ui.now, time.Time{}) {
			ui.now = ui.ws.Bundle.Clock.Now()
		}
	}
}

// currentTime is the instant the chart treats as now: the dataset's own current time
// unless the window follows the live clock.
func (ui *UI) currentTime() time.Time {
	if !ui.ws.Bundle.Live {
		if t, ok := ui.dataset.Now(); ok {
			return t
		}
	}
	return ui.now
}

func (ui *UI) layoutHeader(gtx C, insight backend.Insight) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, material.H6(ui.th, "Energy Timeline").Layout),
				layout.Rigid(func(gtx C) D {
					if !insight.HasPhase {
						return D{}
					}
					return ui.layoutBadge(gtx, insight)
				}),
			)
		}),
		layout.Rigid(layout.Spacer{Height: 4}.Layout),
		layout.Rigid(material.Body1(ui.th, insight.Sentence()).Layout),
	)
}

func (ui *UI) layoutBadge(gtx C, insight backend.Insight) D {
	bg := colors.get(insight.Phase.Color)
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			paint.FillShape(gtx.Ops, bg, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(12)).Op(gtx.Ops))
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.Inset{Top: 4, Bottom: 4, Left: 10, Right: 10}.Layout(gtx, func(gtx C) D {
				l := material.Body2(ui.th, insight.Phase.Label+" • "+insight.Focus)
				l.Color = white
				l.Font.Weight = font.Bold
				return l.Layout(gtx)
			})
		},
	)
}

func (ui *UI) layoutToolbar(gtx C) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return material.Button(ui.th, &ui.explorerBtn, "Open Dataset").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Rigid(func(gtx C) D {
			icon := pauseIcon
			if ui.paused {
				icon = playIcon
			}
			sz := gtx.Dp(32)
			gtx.Constraints = layout.Exact(image.Pt(sz, sz))
			return material.Clickable(gtx, &ui.pauseBtn, func(gtx C) D {
				return layout.Center.Layout(gtx, func(gtx C) D {
					return icon.Layout(gtx, ui.th.Fg)
				})
			})
		}),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Flexed(1, func(gtx C) D {
			l := material.Caption(ui.th, fmt.Sprintf("%s · now %s", ui.source, backend.FormatTime12Hour(ui.currentTime().In(ui.timeline.Options().Location))))
			l.MaxLines = 1
			return l.Layout(gtx)
		}),
	)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Body1(ui.th, "No data yet.").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Button(ui.th, &ui.explorerBtn, "Open Dataset").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			l := material.Body2(ui.th, ui.loadErr)
			l.Color = errorColor
			return l.Layout(gtx)
		}),
	)
}

func (ui *UI) layoutMainArea(gtx C) D {
	inset := layout.UniformInset(16)
	width := gtx.Constraints.Max.X - gtx.Dp(inset.Left) - gtx.Dp(inset.Right)
	frame := ui.timeline.Frame(backend.Input{
		Points:     ui.dataset.Points,
		Highlights: ui.dataset.Highlights,
		Layout:     backend.ResponsiveLayout(float64(gtx.Metric.PxToDp(width))),
	})
	now := ui.currentTime()
	insight := frame.Insight(now)
	return inset.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return ui.layoutHeader(gtx, insight)
			}),
			layout.Rigid(layout.Spacer{Height: 8}.Layout),
			layout.Rigid(ui.layoutToolbar),
			layout.Rigid(func(gtx C) D {
				if ui.loadErr == "" {
					return D{}
				}
				l := material.Body2(ui.th, ui.loadErr)
				l.Color = errorColor
				return l.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: 8}.Layout),
			layout.Flexed(2, func(gtx C) D {
				return ui.chart.Layout(gtx, ui.th, frame, now)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				return ui.key.Layout(gtx, ui.th, frame)
			}),
		)
	})
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	if ui.dataset.Initialized() {
		return ui.layoutMainArea(gtx)
	}
	return ui.layoutStartScreen(gtx)
}
