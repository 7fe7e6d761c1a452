// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charttest provides a chart.Surface that records drawing
// operations for tests.
package charttest

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/aclements/logplot/chart"
)

// An Op is one recorded Surface call.
type Op struct {
	Name string
	Args []float64
	Text string
	// Style is the style state in effect when the op was made.
	Style Style
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Name)
	if o.Text != "" {
		fmt.Fprintf(&b, " %q", o.Text)
	}
	for _, a := range o.Args {
		fmt.Fprintf(&b, " %g", a)
	}
	return b.String()
}

// Style is the style state tracked by a Recorder.
type Style struct {
	Stroke, Fill color.Color
	LineWidth    float64
	Font         string
	Align        chart.TextAlign
	Baseline     chart.TextBaseline
	Alpha        float64
}

// A Recorder is a chart.Surface that records every call.
type Recorder struct {
	Ops   []Op
	style Style
	saved []Style
}

// New returns an empty Recorder with the default style: black, line
// width 1, opaque.
func New() *Recorder {
	return &Recorder{style: Style{
		Stroke:    chart.Black,
		Fill:      chart.Black,
		LineWidth: 1,
		Font:      "10px sans-serif",
		Alpha:     1,
	}}
}

func (r *Recorder) op(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args, Style: r.style})
}

// Style returns the current style.
func (r *Recorder) Style() Style { return r.style }

// Depth returns the number of Saves not matched by a Restore.
func (r *Recorder) Depth() int { return len(r.saved) }

// Calls returns the recorded ops named name.
func (r *Recorder) Calls(name string) []Op {
	var ops []Op
	for _, o := range r.Ops {
		if o.Name == name {
			ops = append(ops, o)
		}
	}
	return ops
}

// Texts returns the text of every FillText call.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, o := range r.Calls("FillText") {
		texts = append(texts, o.Text)
	}
	return texts
}

// Reset discards recorded ops but keeps the style state.
func (r *Recorder) Reset() { r.Ops = nil }

func (r *Recorder) SetStrokeColor(c color.Color) { r.style.Stroke = c; r.op("SetStrokeColor") }
func (r *Recorder) SetFillColor(c color.Color)   { r.style.Fill = c; r.op("SetFillColor") }
func (r *Recorder) SetLineWidth(w float64)       { r.style.LineWidth = w; r.op("SetLineWidth", w) }
func (r *Recorder) SetFont(font string)          { r.style.Font = font; r.op("SetFont") }
func (r *Recorder) SetTextAlign(a chart.TextAlign) {
	r.style.Align = a
	r.op("SetTextAlign", float64(a))
}
func (r *Recorder) SetTextBaseline(b chart.TextBaseline) {
	r.style.Baseline = b
	r.op("SetTextBaseline", float64(b))
}
func (r *Recorder) SetGlobalAlpha(alpha float64) {
	r.style.Alpha = alpha
	r.op("SetGlobalAlpha", alpha)
}

func (r *Recorder) BeginPath()                        { r.op("BeginPath") }
func (r *Recorder) MoveTo(x, y float64)               { r.op("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)               { r.op("LineTo", x, y) }
func (r *Recorder) Arc(x, y, rad, start, end float64) { r.op("Arc", x, y, rad, start, end) }
func (r *Recorder) ClosePath()                        { r.op("ClosePath") }
func (r *Recorder) Fill()                             { r.op("Fill") }
func (r *Recorder) Stroke()                           { r.op("Stroke") }
func (r *Recorder) FillRect(x, y, w, h float64)       { r.op("FillRect", x, y, w, h) }
func (r *Recorder) Translate(x, y float64)            { r.op("Translate", x, y) }
func (r *Recorder) Rotate(angle float64)              { r.op("Rotate", angle) }

func (r *Recorder) FillText(text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Name: "FillText", Args: []float64{x, y}, Text: text, Style: r.style})
}

func (r *Recorder) Save() {
	r.saved = append(r.saved, r.style)
	r.op("Save")
}

func (r *Recorder) Restore() {
	if len(r.saved) > 0 {
		r.style = r.saved[len(r.saved)-1]
		r.saved = r.saved[:len(r.saved)-1]
	}
	r.op("Restore")
}

// Lines returns the segments of every stroked path made of one
// MoveTo and one LineTo, as {x1, y1, x2, y2}.
func (r *Recorder) Lines() [][4]float64 {
	var lines [][4]float64
	var path []Op
	for _, o := range r.Ops {
		switch o.Name {
		case "BeginPath":
			path = path[:0]
		case "MoveTo", "LineTo":
			path = append(path, o)
		case "Stroke":
			if len(path) == 2 && path[0].Name == "MoveTo" && path[1].Name == "LineTo" {
				lines = append(lines, [4]float64{path[0].Args[0], path[0].Args[1], path[1].Args[0], path[1].Args[1]})
			}
		}
	}
	return lines
}

// Points returns the centers of every filled arc, as drawn by
// chart.DrawPoint.
func (r *Recorder) Points() []chart.Point {
	var pts []chart.Point
	var arc *Op
	for i, o := range r.Ops {
		switch o.Name {
		case "BeginPath":
			arc = nil
		case "Arc":
			arc = &r.Ops[i]
		case "Fill":
			if arc != nil {
				pts = append(pts, chart.Point{X: arc.Args[0], Y: arc.Args[1]})
			}
		}
	}
	return pts
}
