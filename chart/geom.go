// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"
)

// NoData is the placeholder message drawn for empty input.
const NoData = "No data to display"

// DrawPoint draws a filled circle of radius r centered at (x, y).
func DrawPoint(s Surface, x, y, r float64, c color.Color) {
	s.BeginPath()
	s.Arc(x, y, r, 0, 2*math.Pi)
	s.SetFillColor(c)
	s.Fill()
}

// DrawLine strokes a straight line from (x1, y1) to (x2, y2).
func DrawLine(s Surface, x1, y1, x2, y2 float64, c color.Color, width float64) {
	s.BeginPath()
	s.MoveTo(x1, y1)
	s.LineTo(x2, y2)
	s.SetStrokeColor(c)
	s.SetLineWidth(width)
	s.Stroke()
}

// DrawEmptyLabeledAxes draws the X and Y axes along the bottom and
// left edges of f's plot area and labels them. The Y label is rotated
// to read bottom to top.
func DrawEmptyLabeledAxes(s Surface, f Frame, labelX, labelY string, opts ...Option) {
	st := newStyle(Black, AxisFont, opts)
	m := f.Margin
	bottom := f.Height - m.Bottom

	s.Save()
	s.SetStrokeColor(st.color)
	s.SetFillColor(st.color)
	s.SetFont(st.font)

	DrawLine(s, m.Left, bottom, f.Width-m.Right, bottom, st.color, st.lineWidth)
	DrawLine(s, m.Left, m.Top, m.Left, bottom, st.color, st.lineWidth)

	s.SetTextAlign(AlignCenter)
	s.SetTextBaseline(BaselineTop)
	s.FillText(labelX, f.Width/2, bottom+35)

	s.Translate(m.Left-45, f.Height/2)
	s.Rotate(-math.Pi / 2)
	s.FillText(labelY, 0, 0)

	s.Restore()
}

// DrawTitle draws title centered horizontally in the top margin.
//
// It leaves the font, alignment, and fill color set.
func DrawTitle(s Surface, f Frame, title string, opts ...Option) {
	st := newStyle(Black, TitleFont, opts)
	s.SetFont(st.font)
	s.SetTextAlign(AlignCenter)
	s.SetFillColor(st.color)
	s.FillText(title, f.Width/2, f.Margin.Top/2)
}

// DrawCenteredMessage draws msg centered on the whole canvas.
//
// It leaves the font, alignment, and fill color set.
func DrawCenteredMessage(s Surface, f Frame, msg string, opts ...Option) {
	st := newStyle(Black, MessageFont, opts)
	s.SetFillColor(st.color)
	s.SetFont(st.font)
	s.SetTextAlign(AlignCenter)
	s.SetTextBaseline(BaselineMiddle)
	s.FillText(msg, f.Width/2, f.Height/2)
}
