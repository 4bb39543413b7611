package main

import (
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"golang.org/x/exp/constraints"

	"github.com/stivex001/energy-timeline/backend"
)

const (
	segmentWidth     = 3
	markerRadius     = 4
	nowRadius        = 6
	nowRingWidth     = 2
	tickLength       = 5
	tickLabelOffset  = 20
	hoverDash        = 4
	guideWidth       = 1
	tooltipMaxWidth  = 220
	tooltipCorner    = 8
	tooltipEdgeInset = 4
)

// TimelineChart draws a backend.Frame scaled to fit its constraints and resolves
// pointer hover against it.
type TimelineChart struct {
	hover backend.Hover
	// frame and vp are from the most recent layout and interpret pointer events.
	frame *backend.Frame
	vp    backend.Viewport
}

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}

func round[T constraints.Float](a T) int {
	return int(math.Round(float64(a)))
}

func fpt(p backend.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func ipt(p backend.Point) image.Point {
	return image.Pt(round(p.X), round(p.Y))
}

// fit scales l uniformly into max, centered horizontally.
func fit(max image.Point, l backend.Layout) backend.Viewport {
	scale := math.Min(float64(max.X)/l.Width, float64(max.Y)/l.Height)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	displayed := backend.Point{X: l.Width * scale, Y: l.Height * scale}
	return backend.Viewport{
		Intrinsic: backend.Point{X: l.Width, Y: l.Height},
		Displayed: displayed,
		Offset:    backend.Point{X: (float64(max.X) - displayed.X) / 2},
	}
}

// Update processes pointer events against the current frame.
func (c *TimelineChart) Update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Enter, pointer.Move:
			c.hover.Move(c.frame, c.vp, backend.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)})
		case pointer.Leave, pointer.Cancel:
			c.hover.Leave()
		}
	}
}

// Layout draws frame with the current-time marker at now.
func (c *TimelineChart) Layout(gtx C, th *material.Theme, frame *backend.Frame, now time.Time) D {
	c.frame = frame
	c.vp = fit(gtx.Constraints.Max, frame.Input.Layout)
	c.Update(gtx)
	vp := c.vp
	size := image.Pt(gtx.Constraints.Max.X, int(math.Ceil(vp.Displayed.Y)))

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, c)
	pointer.CursorCrosshair.Add(gtx.Ops)

	hp, hovering := c.hover.Current(frame, vp)
	nowPos := frame.Now(now)

	scale := float32(vp.Displayed.X / vp.Intrinsic.X)
	plot := op.Affine(
		f32.Affine2D{}.
			Scale(f32.Point{}, f32.Pt(scale, scale)).
			Offset(fpt(vp.Offset)),
	).Push(gtx.Ops)
	c.drawSurface(gtx, frame)
	c.drawSegments(gtx, frame)
	c.drawHighlights(gtx, frame)
	if len(frame.Series) > 0 {
		c.drawNow(gtx, frame, nowPos)
	}
	if hovering {
		c.drawHover(gtx, frame, hp)
	}
	plot.Pop()

	c.layoutTickLabels(gtx, th, frame)
	c.layoutHighlightLabels(gtx, th, frame)
	if hovering {
		c.layoutTooltip(gtx, th, frame, frame.Tooltip(hp), size)
	}
	return D{Size: size}
}

func (c *TimelineChart) drawSurface(gtx C, frame *backend.Frame) {
	l := frame.Input.Layout
	paint.FillShape(gtx.Ops, surfaceColor, clip.UniformRRect(image.Rectangle{
		Max: image.Pt(round(l.Width), round(l.Height)),
	}, 12).Op(gtx.Ops))
	top, bottom := l.PlotTop(), l.PlotBottom()
	for _, bg := range frame.Background {
		paint.FillShape(gtx.Ops, colors.get(bg.Color), clip.Rect{
			Min: image.Pt(round(bg.X1), round(top)),
			Max: image.Pt(round(bg.X2), round(bottom)),
		}.Op())
	}
	strokeLine(gtx.Ops, withAlpha(axisColor, .5), guideWidth,
		f32.Pt(float32(frame.X.Min), float32(bottom)),
		f32.Pt(float32(frame.X.Max), float32(bottom)))
	for _, label := range frame.Labels {
		x := float32(label.X)
		strokeLine(gtx.Ops, axisColor, guideWidth,
			f32.Pt(x, float32(bottom)),
			f32.Pt(x, float32(bottom)+tickLength))
	}
}

func (c *TimelineChart) drawSegments(gtx C, frame *backend.Frame) {
	for _, seg := range frame.Segments {
		if len(seg.Path.Curves) == 0 {
			continue
		}
		var p clip.Path
		p.Begin(gtx.Ops)
		p.MoveTo(fpt(seg.Path.Start))
		for _, cubic := range seg.Path.Curves {
			p.CubeTo(fpt(cubic.C1), fpt(cubic.C2), fpt(cubic.To))
		}
		paint.FillShape(gtx.Ops, colors.get(seg.Color), clip.Stroke{
			Path:  p.End(),
			Width: segmentWidth,
		}.Op())
	}
}

func (c *TimelineChart) drawHighlights(gtx C, frame *backend.Frame) {
	for _, h := range frame.Highlights {
		if !h.Valid {
			continue
		}
		fillCircle(gtx.Ops, colors.get(h.Color), f32.Pt(float32(h.X), float32(h.Y)), markerRadius)
	}
}

func (c *TimelineChart) drawNow(gtx C, frame *backend.Frame, pos backend.NowPosition) {
	l := frame.Input.Layout
	x := float32(pos.X)
	strokeLine(gtx.Ops, guideColor, guideWidth,
		f32.Pt(x, float32(l.PlotTop())),
		f32.Pt(x, float32(l.PlotBottom())))
	center := f32.Pt(x, float32(pos.Y))
	fillCircle(gtx.Ops, white, center, nowRadius)
	paint.FillShape(gtx.Ops, surfaceColor, clip.Stroke{
		Path:  circlePath(gtx.Ops, center, nowRadius),
		Width: nowRingWidth,
	}.Op())
}

func (c *TimelineChart) drawHover(gtx C, frame *backend.Frame, hp backend.HoveredPoint) {
	l := frame.Input.Layout
	x := float32(hp.ChartX)
	dashedLine(gtx.Ops, guideColor, guideWidth,
		f32.Pt(x, float32(l.PlotTop())),
		f32.Pt(x, float32(l.PlotBottom())),
		hoverDash)
	fillCircle(gtx.Ops, colors.get(frame.Bands().Color(hp.Level)), f32.Pt(x, float32(hp.ChartY)), markerRadius)
}

// layoutTickLabels draws the time axis text in container space so that it stays
// legible at any scale.
func (c *TimelineChart) layoutTickLabels(gtx C, th *material.Theme, frame *backend.Frame) {
	baseline := frame.Input.Layout.PlotBottom() + tickLabelOffset
	for _, label := range frame.Labels {
		l := material.Caption(th, label.Label)
		l.TextSize = unit.Sp(11)
		l.Color = axisColor
		l.MaxLines = 1
		at := ipt(c.vp.ToContainer(backend.Point{X: label.X, Y: baseline}))
		dims, call := rec(unconstrained(gtx), l.Layout)
		stack := op.Offset(image.Pt(at.X-dims.Size.X/2, at.Y-(dims.Size.Y-dims.Baseline))).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
	}
}

func (c *TimelineChart) layoutHighlightLabels(gtx C, th *material.Theme, frame *backend.Frame) {
	l := frame.Input.Layout
	for _, h := range frame.Highlights {
		anchor, ok := l.LabelAnchor(h)
		if !ok {
			continue
		}
		label := material.Caption(th, h.Label)
		label.Color = colors.get(h.Color)
		label.MaxLines = 1
		at := ipt(c.vp.ToContainer(anchor))
		stack := op.Offset(at).Push(gtx.Ops)
		label.Layout(unconstrained(gtx))
		stack.Pop()
	}
}

func (c *TimelineChart) layoutTooltip(gtx C, th *material.Theme, frame *backend.Frame, tip backend.Tooltip, bounds image.Point) {
	gtx = unconstrained(gtx)
	gtx.Constraints.Max.X = gtx.Dp(tooltipMaxWidth)
	dims, call := rec(gtx, func(gtx C) D {
		return layout.Background{}.Layout(gtx,
			func(gtx C) D {
				rr := gtx.Dp(tooltipCorner)
				paint.FillShape(gtx.Ops, tooltipColor, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Op(gtx.Ops))
				return D{Size: gtx.Constraints.Min}
			},
			func(gtx C) D {
				return layout.UniformInset(8).Layout(gtx, func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx C) D {
							l := material.Body2(th, tip.Title)
							l.Color = colors.get(tip.Color)
							l.Font.Weight = font.Bold
							return l.Layout(gtx)
						}),
						layout.Rigid(func(gtx C) D {
							l := material.Caption(th, backend.FormatTime12Hour(tip.Time.In(frame.Location())))
							l.Color = withAlpha(white, .7)
							return l.Layout(gtx)
						}),
						layout.Rigid(func(gtx C) D {
							l := material.Caption(th, tip.Focus)
							l.Color = white
							return l.Layout(gtx)
						}),
					)
				})
			},
		)
	})
	inset := gtx.Dp(tooltipEdgeInset)
	at := ipt(tip.Anchor)
	at.X -= dims.Size.X / 2
	at.X = clampInt(at.X, inset, bounds.X-dims.Size.X-inset)
	at.Y = clampInt(at.Y, inset, bounds.Y-dims.Size.Y-inset)
	stack := op.Offset(at).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}

func unconstrained(gtx C) C {
	gtx.Constraints.Min = image.Point{}
	return gtx
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

func strokeLine(ops *op.Ops, col color.NRGBA, width float32, from, to f32.Point) {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(from)
	p.LineTo(to)
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: width}.Op())
}

// dashedLine strokes from→to as dashes of length dash separated by equal gaps.
func dashedLine(ops *op.Ops, col color.NRGBA, width float32, from, to f32.Point, dash float32) {
	d := to.Sub(from)
	length := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if length == 0 || dash <= 0 {
		return
	}
	dir := d.Div(length)
	var p clip.Path
	p.Begin(ops)
	for s := float32(0); s < length; s += 2 * dash {
		e := min(s+dash, length)
		p.MoveTo(from.Add(dir.Mul(s)))
		p.LineTo(from.Add(dir.Mul(e)))
	}
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: width}.Op())
}

func circlePath(ops *op.Ops, center f32.Point, r float32) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(center.X+r, center.Y))
	p.ArcTo(center, center, 2*math.Pi)
	p.Close()
	return p.End()
}

func fillCircle(ops *op.Ops, col color.NRGBA, center f32.Point, r float32) {
	paint.FillShape(ops, col, clip.Outline{Path: circlePath(ops, center, r)}.Op())
}
