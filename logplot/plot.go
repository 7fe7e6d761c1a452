// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"

	"github.com/aclements/logplot/aggregate"
	"github.com/aclements/logplot/chart"
	"github.com/aclements/logplot/ingest"
)

const tickCount = 5

var margin = chart.Margin{Top: 40, Right: 30, Bottom: 60, Left: 70}

// A plotter accumulates rows for one kind of plot and draws it.
type plotter interface {
	subscribers() []*ingest.Subscriber
	draw(s chart.Surface, f chart.Frame)
}

type plotOptions struct {
	kind       string
	x, y       int
	bins       int
	max        float64
	maxRatio   float64
	xLabel     string
	yLabel     string
	restoreOne bool
}

func newPlotter(o plotOptions) (plotter, error) {
	if o.bins <= 0 {
		return nil, fmt.Errorf("need a positive number of bins, got %d", o.bins)
	}
	switch o.kind {
	case "hist", "ecdf":
		return &histPlot{o: o, g: aggregate.NewGrouped(o.bins, o.max)}, nil
	case "scatter":
		return &scatterPlot{o: o, s: aggregate.NewScatter("x", "y")}, nil
	case "median", "avg":
		return &binPlot{o: o, b: aggregate.NewBins(o.bins, o.max)}, nil
	}
	return nil, fmt.Errorf("unknown plot kind %q", o.kind)
}

// groupColor returns the color of group id, or the renderer default
// for the implicit group of ungrouped inputs.
func groupColor(groups []int, id int) color.Color {
	if len(groups) == 1 && id == aggregate.DefaultGroup {
		return chart.Blue
	}
	return chart.GroupColor(id)
}

type histPlot struct {
	o plotOptions
	g *aggregate.Grouped
}

func (p *histPlot) subscribers() []*ingest.Subscriber {
	return []*ingest.Subscriber{p.g.Subscriber(aggregate.Col(p.o.x))}
}

func (p *histPlot) draw(s chart.Surface, f chart.Frame) {
	chart.DrawTicksX(s, f, p.o.max, tickCount)
	if p.o.kind == "ecdf" {
		chart.DrawTicksY(s, f, 1, tickCount)
	} else {
		chart.DrawTicksY(s, f, float64(p.g.MaxCount()), tickCount)
	}
	if len(p.g.Groups) == 0 {
		chart.DrawHistogram(s, f, nil, 0)
		return
	}
	for _, id := range p.g.Groups {
		h := p.g.Histogram(id)
		c := chart.WithColor(groupColor(p.g.Groups, id))
		if p.o.kind == "ecdf" {
			chart.DrawECDF(s, f, h.Counts(), h.NumBins(), p.o.max, h.Total(), c)
		} else {
			chart.DrawHistogram(s, f, h.Counts(), p.g.MaxCount(), c)
		}
	}
}

type scatterPlot struct {
	o plotOptions
	s *aggregate.Scatter
}

func (p *scatterPlot) subscribers() []*ingest.Subscriber {
	return []*ingest.Subscriber{p.s.Subscriber(aggregate.Col(p.o.x), aggregate.Col(p.o.y))}
}

func (p *scatterPlot) draw(s chart.Surface, f chart.Frame) {
	xMax, yMax := p.s.Max()
	if p.o.max > 0 {
		xMax = p.o.max
	}
	chart.DrawTicksX(s, f, xMax, tickCount)
	chart.DrawTicksY(s, f, yMax, tickCount)
	if p.s.Len() == 0 {
		chart.DrawCenteredMessage(s, f, chart.NoData)
		return
	}
	chart.DrawScatter(s, f, p.s.Points(), p.s.XKey, p.s.YKey, xMax, yMax)
}

type binPlot struct {
	o plotOptions
	b *aggregate.Bins
}

func (p *binPlot) subscribers() []*ingest.Subscriber {
	return []*ingest.Subscriber{p.b.Subscriber(aggregate.Col(p.o.x), aggregate.Col(p.o.y))}
}

func (p *binPlot) draw(s chart.Surface, f chart.Frame) {
	yMax := p.b.MaxMean()
	if p.o.kind == "median" {
		// The line puts bin i at X value i, so the X axis counts bins.
		lastBin := float64(p.b.NumBins() - 1)
		chart.DrawTicksX(s, f, lastBin, tickCount)
		chart.DrawTicksY(s, f, yMax, tickCount)
		chart.DrawMedianLine(s, f, lastBin, yMax, p.b.Sums, p.b.Counts,
			chart.WithRestoreOnSingleBin(p.o.restoreOne))
		return
	}
	chart.DrawTicksX(s, f, p.o.max, tickCount)
	maxRatio := p.o.maxRatio
	if maxRatio <= 0 {
		maxRatio = yMax
	}
	chart.DrawTicksY(s, f, maxRatio, tickCount)
	chart.DrawBinnedAverage(s, f, p.b.Sums, p.b.Counts, p.b.NumBins(), maxRatio, maxRatio)
}

// drawPlot draws the axes, title, and p onto s.
func drawPlot(s chart.Surface, width, height int, title string, o plotOptions, p plotter) {
	f := chart.Frame{Width: float64(width), Height: float64(height), Margin: margin}
	chart.DrawEmptyLabeledAxes(s, f, o.xLabel, o.yLabel)
	s.Save()
	chart.DrawTitle(s, f, title)
	s.Restore()
	p.draw(s, f)
}
