// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgcanvas implements chart.Surface by writing an SVG
// document.
package svgcanvas

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/aclements/logplot/chart"
	"github.com/aclements/logplot/internal/affine"
)

const arcStep = math.Pi / 32

type state struct {
	stroke, fill color.Color
	lineWidth    float64
	font         string
	align        chart.TextAlign
	baseline     chart.TextBaseline
	alpha        float64
	m            affine.Matrix
}

// A Canvas is a chart.Surface that emits one SVG element per fill,
// stroke, or text call. Paths are written in device coordinates, so
// the current transform is applied as points are added.
//
// Close must be called to finish the document.
type Canvas struct {
	svg   *svg.SVG
	st    state
	stack []state
	path  []byte
	// open is whether the current path has a current point.
	open bool
}

// New starts a width×height SVG document on w with a white
// background.
func New(w io.Writer, width, height int) *Canvas {
	c := &Canvas{
		svg: svg.New(w),
		st: state{
			stroke:    chart.Black,
			fill:      chart.Black,
			lineWidth: 1,
			font:      chart.TickFont,
			alpha:     1,
			m:         affine.Identity,
		},
	}
	c.svg.Start(width, height)
	c.svg.Rect(0, 0, width, height, "fill:#fff")
	return c
}

// Close ends the SVG document.
func (c *Canvas) Close() {
	c.svg.End()
}

func (c *Canvas) SetStrokeColor(col color.Color)       { c.st.stroke = col }
func (c *Canvas) SetFillColor(col color.Color)         { c.st.fill = col }
func (c *Canvas) SetLineWidth(w float64)               { c.st.lineWidth = w }
func (c *Canvas) SetFont(font string)                  { c.st.font = font }
func (c *Canvas) SetTextAlign(a chart.TextAlign)       { c.st.align = a }
func (c *Canvas) SetTextBaseline(b chart.TextBaseline) { c.st.baseline = b }

func (c *Canvas) SetGlobalAlpha(alpha float64) {
	c.st.alpha = math.Max(0, math.Min(1, alpha))
}

func (c *Canvas) Save() { c.stack = append(c.stack, c.st) }

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) { c.st.m = c.st.m.Translate(x, y) }
func (c *Canvas) Rotate(angle float64)   { c.st.m = c.st.m.Rotate(angle) }

func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
	c.open = false
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (c *Canvas) appendPoint(cmd byte, x, y float64) {
	dx, dy := c.st.m.Apply(x, y)
	if len(c.path) > 0 {
		c.path = append(c.path, ' ')
	}
	c.path = append(c.path, cmd, ' ')
	c.path = strconv.AppendFloat(c.path, dx, 'g', 6, 64)
	c.path = append(c.path, ' ')
	c.path = strconv.AppendFloat(c.path, dy, 'g', 6, 64)
}

func (c *Canvas) MoveTo(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	c.appendPoint('M', x, y)
	c.open = true
}

func (c *Canvas) LineTo(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	if !c.open {
		c.MoveTo(x, y)
		return
	}
	c.appendPoint('L', x, y)
}

// Arc is flattened into line segments so that it follows rotations
// and non-uniform transforms exactly.
func (c *Canvas) Arc(x, y, r, start, end float64) {
	for _, v := range []float64{x, y, r, start, end} {
		if !isFinite(v) {
			return
		}
	}
	sweep := end - start
	if math.Abs(sweep) > 2*math.Pi {
		sweep = math.Copysign(2*math.Pi, sweep)
	}
	n := int(math.Ceil(math.Abs(sweep) / arcStep))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		c.LineTo(x+r*math.Cos(a), y+r*math.Sin(a))
	}
}

func (c *Canvas) ClosePath() {
	if !c.open {
		return
	}
	c.path = append(c.path, " Z"...)
}

func (c *Canvas) Fill() {
	if len(c.path) == 0 {
		return
	}
	c.svg.Path(string(c.path), c.paint("fill", c.st.fill)+";stroke:none")
}

func (c *Canvas) Stroke() {
	if len(c.path) == 0 {
		return
	}
	w := c.st.lineWidth * c.st.m.LinearScale()
	c.svg.Path(string(c.path), fmt.Sprintf("fill:none;%s;stroke-width:%.6g", c.paint("stroke", c.st.stroke), w))
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	for _, v := range []float64{x, y, w, h} {
		if !isFinite(v) {
			return
		}
	}
	saved, open := c.path, c.open
	c.path, c.open = nil, false
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
	c.Fill()
	c.path, c.open = saved, open
}

var anchors = map[chart.TextAlign]string{
	chart.AlignLeft:   "start",
	chart.AlignCenter: "middle",
	chart.AlignRight:  "end",
}

var baselines = map[chart.TextBaseline]string{
	chart.BaselineAlphabetic: "alphabetic",
	chart.BaselineTop:        "hanging",
	chart.BaselineMiddle:     "middle",
	chart.BaselineBottom:     "text-after-edge",
}

func (c *Canvas) FillText(text string, x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	c.svg.Gtransform(c.st.m.Translate(x, y).String())
	c.svg.Text(0, 0, text,
		fmt.Sprintf(`text-anchor="%s"`, anchors[c.st.align]),
		fmt.Sprintf(`dominant-baseline="%s"`, baselines[c.st.baseline]),
		c.paint("fill", c.st.fill)+";font:"+c.st.font)
	c.svg.Gend()
}

// paint returns the CSS declarations that paint property prop with
// col at the current global alpha.
func (c *Canvas) paint(prop string, col color.Color) string {
	css := prop + ":" + cssColor(col)
	_, _, _, a := col.RGBA()
	if opacity := c.st.alpha * float64(a) / 0xffff; opacity != 1 {
		css += fmt.Sprintf(";%s-opacity:%.6g", prop, opacity)
	}
	return css
}

// cssColor returns col in CSS notation, ignoring alpha.
func cssColor(col color.Color) string {
	if h, ok := col.(chart.HSL); ok {
		return h.String()
	}
	r, g, b, a := col.RGBA()
	if a == 0 {
		return "none"
	}
	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8
	if r>>4 == r&0xF && g>>4 == g&0xF && b>>4 == b&0xF {
		return fmt.Sprintf("#%x%x%x", r>>4, g>>4, b>>4)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
