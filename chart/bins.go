// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "math"

// NoBinData is the placeholder message DrawBinnedAverage draws for
// empty input.
const NoBinData = "No data available"

// BinMeans returns sums[i]/counts[i] for each bin. A bin with no
// count has no mean and yields NaN.
func BinMeans(sums []float64, counts []int) []float64 {
	means := make([]float64, len(sums))
	for i, sum := range sums {
		if i >= len(counts) || counts[i] == 0 {
			means[i] = math.NaN()
			continue
		}
		means[i] = sum / float64(counts[i])
	}
	return means
}

// DrawMedianLine draws the per-bin means of sums and counts (see
// BinMeans) as a polyline. Bin i is placed at X value i on an axis
// from 0 to maxX, and its mean on a Y axis from 0 to maxY. Bins
// without a mean are left out of the line. A single bin draws a
// single point. An empty input draws the NoData message.
//
// With a single bin DrawMedianLine does not restore the surface style
// it saved unless WithRestoreOnSingleBin(true) is given.
func DrawMedianLine(s Surface, f Frame, maxX, maxY float64, sums []float64, counts []int, opts ...Option) {
	st := newStyle(Blue, MessageFont, opts)

	s.Save()
	s.SetGlobalAlpha(st.opacity)
	var prev Point
	for i, mean := range BinMeans(sums, counts) {
		norm := 0.0
		if maxY > 0 {
			norm = mean / maxY
		}
		p := Point{
			X: f.X(float64(i), maxX),
			Y: f.Height - f.Margin.Bottom - norm*f.PlotHeight(),
		}
		if i > 0 && !math.IsNaN(prev.Y) && !math.IsNaN(p.Y) {
			DrawLine(s, prev.X, prev.Y, p.X, p.Y, st.color, st.lineWidth)
		}
		prev = p
	}

	if len(sums) == 1 {
		DrawPoint(s, prev.X, prev.Y, 2, st.color)
		if st.restoreSingleBin {
			s.Restore()
		}
		return
	}
	s.Restore()
	if len(sums) == 0 {
		DrawCenteredMessage(s, f, NoData, WithFont(st.font))
	}
}

// CappedAverages returns the average of each of the first numBins
// bins, capped at maxRatio. A bin with no count, including one beyond
// the end of sums or counts, averages 0.
func CappedAverages(sums []float64, counts []int, numBins int, maxRatio float64) []float64 {
	if numBins < 0 {
		numBins = 0
	}
	avgs := make([]float64, numBins)
	for i := range avgs {
		if i >= len(sums) || i >= len(counts) || counts[i] <= 0 {
			continue
		}
		avgs[i] = math.Min(sums[i]/float64(counts[i]), maxRatio)
	}
	return avgs
}

// DrawBinnedAverage draws the capped per-bin averages of sums and
// counts (see CappedAverages) as a polyline with a marker at every
// bin. The numBins bins divide the plot width evenly and each point
// sits in the middle of its bin. The Y axis runs from 0 to maxValue,
// or to maxRatio if maxValue is 0. An empty sums draws the NoBinData
// message.
func DrawBinnedAverage(s Surface, f Frame, sums []float64, counts []int, numBins int, maxRatio, maxValue float64, opts ...Option) {
	st := newStyle(Blue, MessageFont, opts)
	if len(sums) == 0 {
		DrawCenteredMessage(s, f, NoBinData, WithFont(st.font))
		return
	}

	s.Save()
	s.SetGlobalAlpha(st.opacity)
	yMax := maxValue
	if yMax == 0 {
		yMax = maxRatio
	}
	binWidth := f.PlotWidth() / float64(numBins)
	var prev Point
	for i, avg := range CappedAverages(sums, counts, numBins, maxRatio) {
		p := Point{
			X: f.Margin.Left + binWidth*(float64(i)+0.5),
			Y: f.Y(avg, yMax),
		}
		if i > 0 {
			DrawLine(s, prev.X, prev.Y, p.X, p.Y, st.color, st.lineWidth)
		}
		DrawPoint(s, p.X, p.Y, 2, st.pointColor)
		prev = p
	}
	s.Restore()
}
