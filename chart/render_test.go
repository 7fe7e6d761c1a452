// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart_test

import (
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/logplot/chart"
	"github.com/aclements/logplot/chart/charttest"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, chart.Normalize(5, 0))
	assert.Equal(t, 0.5, chart.Normalize(5, 10))
	assert.Equal(t, 2.0, chart.Normalize(20, 10))
	assert.Equal(t, 10.0, frame.X(0, 10))
	assert.Equal(t, 90.0, frame.X(10, 10))
	assert.Equal(t, 90.0, frame.Y(0, 10))
	assert.Equal(t, 10.0, frame.Y(10, 10))
	assert.Equal(t, 90.0, frame.Y(3, 0))
}

func TestDrawHistogram(t *testing.T) {
	r := charttest.New()
	chart.DrawHistogram(r, frame, []int{1, 2}, 2)

	rects := r.Calls("FillRect")
	require.Len(t, rects, 2)
	assert.Equal(t, []float64{10, 50, 39, 40}, rects[0].Args)
	assert.Equal(t, []float64{50, 10, 39, 80}, rects[1].Args)
	assert.Equal(t, chart.DefaultOpacity, rects[0].Style.Alpha)
	assert.Equal(t, chart.Blue, rects[0].Style.Fill)
	assert.Zero(t, r.Depth())
	assert.Equal(t, 1.0, r.Style().Alpha)
}

func TestDrawHistogramZeroMax(t *testing.T) {
	r := charttest.New()
	chart.DrawHistogram(r, frame, []int{0, 0, 0, 0}, 0)

	rects := r.Calls("FillRect")
	require.Len(t, rects, 4)
	for _, rect := range rects {
		assert.Equal(t, 0.0, rect.Args[3])
	}
}

func TestDrawHistogramEmpty(t *testing.T) {
	for _, maxCount := range []int{0, 1, 100} {
		r := charttest.New()
		chart.DrawHistogram(r, frame, nil, maxCount)
		assert.Equal(t, []string{chart.NoData}, r.Texts())
		assert.Empty(t, r.Calls("FillRect"))
		text := r.Calls("FillText")[0]
		assert.Equal(t, []float64{50, 50}, text.Args)
		assert.Equal(t, chart.MessageFont, text.Style.Font)
	}
}

func TestECDFPoints(t *testing.T) {
	pts := chart.ECDFPoints([]int{2, 3, 5}, 3, 30, 10)
	require.Len(t, pts, 3)
	for i, want := range []chart.Point{{0, 0.2}, {10, 0.5}, {20, 1}} {
		assert.InDelta(t, want.X, pts[i].X, 1e-9)
		assert.InDelta(t, want.Y, pts[i].Y, 1e-9)
	}
}

func TestDrawECDF(t *testing.T) {
	r := charttest.New()
	chart.DrawECDF(r, frame, []int{2, 3, 5}, 3, 30, 10)

	lines := r.Lines()
	require.Len(t, lines, 2)
	assert.InDelta(t, 10, lines[0][0], 1e-9)
	assert.InDelta(t, 74, lines[0][1], 1e-9)
	assert.InDelta(t, 10+80.0/3, lines[0][2], 1e-9)
	assert.InDelta(t, 50, lines[0][3], 1e-9)
	assert.InDelta(t, 10, lines[1][3], 1e-9)
	assert.Empty(t, r.Points())
	assert.Zero(t, r.Depth())
}

func TestDrawECDFSingleBin(t *testing.T) {
	r := charttest.New()
	chart.DrawECDF(r, frame, []int{4}, 1, 10, 4)

	assert.Empty(t, r.Lines())
	assert.Equal(t, []chart.Point{{10, 10}}, r.Points())
	fill := r.Calls("Fill")[0]
	assert.Equal(t, chart.Black, fill.Style.Fill)
	arc := r.Calls("Arc")[0]
	assert.Equal(t, 4.0, arc.Args[2])
	assert.Zero(t, r.Depth())
}

func TestDrawECDFEmpty(t *testing.T) {
	r := charttest.New()
	chart.DrawECDF(r, frame, nil, 10, 10, 0)
	assert.Equal(t, []string{chart.NoData}, r.Texts())
	assert.Empty(t, r.Calls("Save"))
	assert.Zero(t, r.Depth())
}

func TestDrawScatter(t *testing.T) {
	points := []chart.DataPoint{
		{"x": 3, "y": 1},
		{"x": 1, "y": 2},
		{"x": 2, "y": 3},
	}
	r := charttest.New()
	chart.DrawScatter(r, frame, points, "x", "y", 4, 4)

	got := r.Points()
	require.Len(t, got, 3)
	assert.Equal(t, chart.Point{X: 30, Y: 50}, got[0])
	assert.Equal(t, chart.Point{X: 50, Y: 30}, got[1])
	assert.Equal(t, chart.Point{X: 70, Y: 70}, got[2])
	assert.Equal(t, 3.0, points[0]["x"], "input reordered")

	arc := r.Calls("Arc")[0]
	assert.Equal(t, 4.0, arc.Args[2])
	assert.Equal(t, chart.Orange, r.Calls("Fill")[0].Style.Fill)
	assert.Zero(t, r.Depth())
}

func TestDrawScatterOptions(t *testing.T) {
	r := charttest.New()
	chart.DrawScatter(r, frame, []chart.DataPoint{{"x": 1}}, "x", "y", 1, 1,
		chart.WithRadius(2), chart.WithColor(chart.Red), chart.WithOpacity(0.5))

	assert.Equal(t, 2.0, r.Calls("Arc")[0].Args[2])
	fill := r.Calls("Fill")[0]
	assert.Equal(t, chart.Red, fill.Style.Fill)
	assert.Equal(t, 0.5, fill.Style.Alpha)
	assert.Equal(t, []chart.Point{{90, 90}}, r.Points())
}

func TestPointsFromTable(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1.5, 2.5}).
		Add("y", []int{3, 4}).
		Done()

	points, err := chart.PointsFromTable(tab, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []chart.DataPoint{{"x": 1.5, "y": 3}, {"x": 2.5, "y": 4}}, points)

	_, err = chart.PointsFromTable(tab, "x", "z")
	assert.Error(t, err)
}

func TestBinMeans(t *testing.T) {
	means := chart.BinMeans([]float64{10, 6, 1}, []int{0, 3})
	require.Len(t, means, 3)
	assert.True(t, math.IsNaN(means[0]))
	assert.Equal(t, 2.0, means[1])
	assert.True(t, math.IsNaN(means[2]))
}

func TestDrawMedianLine(t *testing.T) {
	r := charttest.New()
	chart.DrawMedianLine(r, frame, 2, 4, []float64{0, 4, 12}, []int{1, 2, 3})

	assert.Equal(t, [][4]float64{
		{10, 90, 50, 50},
		{50, 50, 90, 10},
	}, r.Lines())
	assert.Zero(t, r.Depth())
	assert.Empty(t, r.Texts())
}

func TestDrawMedianLineSkipsEmptyBins(t *testing.T) {
	r := charttest.New()
	chart.DrawMedianLine(r, frame, 3, 4, []float64{1, 2, 3, 4}, []int{1, 1, 0, 1})
	assert.Len(t, r.Lines(), 1)

	r = charttest.New()
	chart.DrawMedianLine(r, frame, 2, 4, []float64{1, 2, 3}, []int{1, 0, 1})
	assert.Empty(t, r.Lines())
}

func TestDrawMedianLineSingleBin(t *testing.T) {
	// A single bin leaves its saved style on the stack unless asked
	// not to.
	r := charttest.New()
	chart.DrawMedianLine(r, frame, 1, 4, []float64{4}, []int{2})
	assert.Equal(t, []chart.Point{{10, 50}}, r.Points())
	assert.Equal(t, 2.0, r.Calls("Arc")[0].Args[2])
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, chart.DefaultOpacity, r.Style().Alpha)

	r = charttest.New()
	chart.DrawMedianLine(r, frame, 1, 4, []float64{4}, []int{2}, chart.WithRestoreOnSingleBin(true))
	assert.Len(t, r.Points(), 1)
	assert.Zero(t, r.Depth())
	assert.Equal(t, 1.0, r.Style().Alpha)
}

func TestDrawMedianLineEmpty(t *testing.T) {
	r := charttest.New()
	chart.DrawMedianLine(r, frame, 1, 1, nil, nil)
	assert.Equal(t, []string{chart.NoData}, r.Texts())
	assert.Zero(t, r.Depth())
}

func TestCappedAverages(t *testing.T) {
	assert.Equal(t, []float64{0}, chart.CappedAverages([]float64{10}, []int{0}, 1, 5))
	assert.Equal(t, []float64{2, 3, 0}, chart.CappedAverages([]float64{2, 8}, []int{1, 2}, 3, 3))
	assert.Empty(t, chart.CappedAverages([]float64{1}, []int{1}, -1, 3))
}

func TestDrawBinnedAverage(t *testing.T) {
	r := charttest.New()
	chart.DrawBinnedAverage(r, frame, []float64{2, 8}, []int{1, 2}, 2, 3, 0)

	pts := r.Points()
	require.Len(t, pts, 2)
	assert.Equal(t, 30.0, pts[0].X)
	assert.InDelta(t, 90-2.0/3*80, pts[0].Y, 1e-9)
	assert.Equal(t, chart.Point{X: 70, Y: 10}, pts[1])
	assert.Len(t, r.Lines(), 1)
	assert.Equal(t, chart.Red, r.Calls("Fill")[0].Style.Fill)
	assert.Zero(t, r.Depth())
}

func TestDrawBinnedAverageMaxValue(t *testing.T) {
	r := charttest.New()
	chart.DrawBinnedAverage(r, frame, []float64{2}, []int{1}, 1, 3, 4)
	assert.Equal(t, []chart.Point{{50, 50}}, r.Points())
}

func TestDrawBinnedAverageEmpty(t *testing.T) {
	r := charttest.New()
	chart.DrawBinnedAverage(r, frame, nil, nil, 10, 1, 1)
	assert.Equal(t, []string{chart.NoBinData}, r.Texts())
	assert.Empty(t, r.Calls("Save"))
}

func TestDrawEmptyLabeledAxes(t *testing.T) {
	r := charttest.New()
	chart.DrawEmptyLabeledAxes(r, frame, "latency", "count")

	assert.Equal(t, [][4]float64{
		{10, 90, 90, 90},
		{10, 10, 10, 90},
	}, r.Lines())
	texts := r.Calls("FillText")
	require.Len(t, texts, 2)
	assert.Equal(t, "latency", texts[0].Text)
	assert.Equal(t, []float64{50, 125}, texts[0].Args)
	assert.Equal(t, chart.AxisFont, texts[0].Style.Font)
	assert.Equal(t, []float64{-35, 50}, r.Calls("Translate")[0].Args)
	assert.Equal(t, []float64{-math.Pi / 2}, r.Calls("Rotate")[0].Args)
	assert.Equal(t, "count", texts[1].Text)
	assert.Zero(t, r.Depth())
}

func TestDrawTitle(t *testing.T) {
	r := charttest.New()
	chart.DrawTitle(r, frame, "Latency")
	text := r.Calls("FillText")[0]
	assert.Equal(t, "Latency", text.Text)
	assert.Equal(t, []float64{50, 5}, text.Args)
	assert.Equal(t, chart.TitleFont, r.Style().Font)
	assert.Empty(t, r.Calls("Save"))
}
