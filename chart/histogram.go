// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// DrawHistogram draws hist as adjacent bars across the plot area of
// f, one bar per bin, separated by a 1 pixel gap. Bar heights are
// relative to maxCount. An empty hist draws the NoData message.
func DrawHistogram(s Surface, f Frame, hist []int, maxCount int, opts ...Option) {
	st := newStyle(Blue, MessageFont, opts)
	if len(hist) == 0 {
		DrawCenteredMessage(s, f, NoData, WithFont(st.font))
		return
	}

	s.Save()
	s.SetGlobalAlpha(st.opacity)
	s.SetFillColor(st.color)
	barWidth := f.PlotWidth() / float64(len(hist))
	bottom := f.Height - f.Margin.Bottom
	for i, count := range hist {
		h := Normalize(float64(count), float64(maxCount)) * f.PlotHeight()
		x := f.Margin.Left + float64(i)*barWidth
		s.FillRect(x, bottom-h, barWidth-1, h)
	}
	s.Restore()
}

// ECDFPoints returns the points of the empirical CDF of hist, a
// histogram of numBins bins over [0, maxValue] holding n observations
// in total. Point i is at the lower edge of bin i and holds the
// fraction of observations in bins 0 through i.
func ECDFPoints(hist []int, numBins int, maxValue float64, n int) []Point {
	pts := make([]Point, len(hist))
	sum := 0
	for i, count := range hist {
		sum += count
		pts[i] = Point{
			X: Normalize(float64(i), float64(numBins)) * maxValue,
			Y: Normalize(float64(sum), float64(n)),
		}
	}
	return pts
}

// DrawECDF draws the empirical CDF of hist (see ECDFPoints) as a
// polyline in the plot area of f, with the X axis from 0 to maxValue
// and the Y axis from 0 to 1. A single bin draws a single point. An
// empty hist draws the NoData message.
func DrawECDF(s Surface, f Frame, hist []int, numBins int, maxValue float64, n int, opts ...Option) {
	st := newStyle(Blue, MessageFont, opts)
	if len(hist) == 0 {
		DrawCenteredMessage(s, f, NoData, WithFont(st.font))
		return
	}

	s.Save()
	s.SetGlobalAlpha(st.opacity)
	var prev Point
	for i, p := range ECDFPoints(hist, numBins, maxValue, n) {
		px := Point{f.X(p.X, maxValue), f.Y(p.Y, 1)}
		if i > 0 {
			DrawLine(s, prev.X, prev.Y, px.X, px.Y, st.color, st.lineWidth)
		}
		prev = px
	}
	if len(hist) == 1 {
		DrawPoint(s, prev.X, prev.Y, st.radius, Black)
	}
	s.Restore()
}
