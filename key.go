package main

import (
	"fmt"
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"github.com/stivex001/energy-timeline/backend"
)

// HighlightKey tabulates the frame's highlights with the energy level at each.
type HighlightKey struct {
	table component.GridState
}

func (k *HighlightKey) Layout(gtx C, th *material.Theme, frame *backend.Frame) D {
	table := component.Table(th, &k.table)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	table.VScrollbarStyle.Indicator.MinorWidth = 0
	table.VScrollbarStyle.Track.MinorPadding = 0
	colorColWidth := gtx.Dp(50)
	timeColWidth := gtx.Dp(90)
	levelColWidth := gtx.Dp(70)
	focusColWidth := gtx.Dp(120)
	labelColWidth := gtx.Constraints.Max.X - colorColWidth - timeColWidth - levelColWidth - focusColWidth - gtx.Dp(table.VScrollbarStyle.Width())
	rowHeight := gtx.Sp(20)
	const (
		colorCol = iota
		timeCol
		labelCol
		levelCol
		focusCol
		numCols
	)
	bands := frame.Bands()
	loc := frame.Location()
	return table.Layout(gtx, len(frame.Highlights), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			var size int
			switch index {
			case colorCol:
				size = colorColWidth
			case timeCol:
				size = timeColWidth
			case labelCol:
				size = labelColWidth
			case levelCol:
				size = levelColWidth
			case focusCol:
				size = focusColWidth
			}
			return min(max(size, 0), constraint)
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case colorCol:
				l = material.Body2(th, "Color")
			case timeCol:
				l = material.Body2(th, "Time")
			case labelCol:
				l = material.Body2(th, "Highlight")
			case levelCol:
				l = material.Body2(th, "Level")
				l.Alignment = text.End
			case focusCol:
				l = material.Body2(th, "Focus")
				l.Alignment = text.End
			}
			l.Color = th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				}, l.Layout,
			)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			h := frame.Highlights[row]
			dims = layout.UniformInset(2).Layout(gtx, func(gtx C) D {
				switch col {
				case colorCol:
					return layout.Center.Layout(gtx, func(gtx C) D {
						sideLen := gtx.Dp(10)
						sz := image.Pt(sideLen, sideLen)
						paint.FillShape(gtx.Ops, colors.get(h.Color), clip.Rect{Max: sz}.Op())
						return D{Size: sz}
					})
				case timeCol:
					if !h.Valid {
						return material.Body2(th, "invalid").Layout(gtx)
					}
					return material.Body2(th, backend.FormatTime12Hour(h.Date.In(loc))).Layout(gtx)
				case labelCol:
					return material.Body2(th, h.Label).Layout(gtx)
				case levelCol:
					l := material.Body2(th, fmt.Sprintf("%.0f%%", h.Level*100))
					l.Alignment = text.End
					return l.Layout(gtx)
				case focusCol:
					l := material.Body2(th, bands.FocusState(h.Level))
					l.Color = colors.get(bands.Color(h.Level))
					l.Alignment = text.End
					return l.Layout(gtx)
				default:
					return D{Size: gtx.Constraints.Max}
				}
			})
			if row&1 != 0 {
				col := colors.get(h.Color)
				col.A = 30
				paint.FillShape(gtx.Ops, col, clip.Rect{Max: gtx.Constraints.Max}.Op())
			}
			return dims
		})
}
