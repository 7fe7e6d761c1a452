// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster implements chart.Surface on an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/aclements/logplot/chart"
	"github.com/aclements/logplot/internal/affine"
)

// arcStep is the largest angle, in radians, spanned by one segment of
// a flattened arc.
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

type point struct{ x, y float64 }

// A Canvas is a chart.Surface that rasterizes into an *image.RGBA.
// Coordinates are in pixels with the origin at the top left.
//
// Text is drawn with a fixed bitmap face scaled to the requested
// pixel size; the font family is ignored.
type Canvas struct {
	img   *image.RGBA
	st    state
	stack []state
	// path holds the current path's subpaths in device space.
	path [][]point
	face font.Face
}

// New returns a width×height Canvas with a white background.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Canvas{
		img: img,
		st: state{
			stroke:    chart.Black,
			fill:      chart.Black,
			lineWidth: 1,
			font:      chart.TickFont,
			alpha:     1,
			m:         affine.Identity,
		},
		face: basicfont.Face7x13,
	}
}

// Image returns the canvas's backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the canvas to w as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
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

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.st)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) { c.st.m = c.st.m.Translate(x, y) }
func (c *Canvas) Rotate(angle float64)   { c.st.m = c.st.m.Rotate(angle) }

func (c *Canvas) BeginPath() { c.path = c.path[:0] }

func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

func (c *Canvas) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	dx, dy := c.st.m.Apply(x, y)
	c.path = append(c.path, []point{{dx, dy}})
}

func (c *Canvas) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	dx, dy := c.st.m.Apply(x, y)
	sp := &c.path[len(c.path)-1]
	*sp = append(*sp, point{dx, dy})
}

func (c *Canvas) Arc(x, y, r, start, end float64) {
	if !finite(x, y) || !finite(r, start) || !finite(end, 0) {
		return
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
		px, py := x+r*math.Cos(a), y+r*math.Sin(a)
		if i == 0 && len(c.path) == 0 {
			c.MoveTo(px, py)
		} else {
			c.LineTo(px, py)
		}
	}
}

func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	sp := c.path[len(c.path)-1]
	first := sp[0]
	c.path[len(c.path)-1] = append(sp, first)
	c.path = append(c.path, []point{first})
}

// paint returns col with the global alpha applied.
func (c *Canvas) paint(col color.Color) image.Image {
	r, g, b, a := col.RGBA()
	k := c.st.alpha
	return image.NewUniform(color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(b) * k),
		A: uint16(float64(a) * k),
	})
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func (c *Canvas) Fill() {
	c.fillPolys(c.path, c.st.fill)
}

func (c *Canvas) fillPolys(polys [][]point, col color.Color) {
	z := c.rasterizer()
	drawn := false
	for _, sp := range polys {
		if len(sp) < 3 {
			continue
		}
		z.MoveTo(clampCoord(sp[0].x), clampCoord(sp[0].y))
		for _, p := range sp[1:] {
			z.LineTo(clampCoord(p.x), clampCoord(p.y))
		}
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(c.img, c.img.Bounds(), c.paint(col), image.Point{})
	}
}

// maxCoord bounds device coordinates handed to the rasterizer. Its
// fixed-point path (canvases up to 512 pixels a side) works in int32
// with 9 fractional bits, so coordinates must stay well inside 1<<22.
const maxCoord = 1 << 16

func clampCoord(v float64) float32 {
	return float32(math.Max(-maxCoord, math.Min(v, maxCoord)))
}

// Stroke draws each segment of the current path as a quad of the
// current line width, scaled by the current transform.
func (c *Canvas) Stroke() {
	hw := c.st.lineWidth * c.st.m.LinearScale() / 2
	if hw <= 0 {
		return
	}
	var quads [][]point
	for _, sp := range c.path {
		for i := 1; i < len(sp); i++ {
			a, b := sp[i-1], sp[i]
			dx, dy := b.x-a.x, b.y-a.y
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			nx, ny := -dy/l*hw, dx/l*hw
			quads = append(quads, []point{
				{a.x + nx, a.y + ny},
				{b.x + nx, b.y + ny},
				{b.x - nx, b.y - ny},
				{a.x - nx, a.y - ny},
			})
		}
	}
	c.fillPolys(quads, c.st.stroke)
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	if !finite(x, y) || !finite(w, h) || w == 0 || h == 0 {
		return
	}
	var rect []point
	for _, p := range []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		dx, dy := c.st.m.Apply(p.x, p.y)
		rect = append(rect, point{dx, dy})
	}
	c.fillPolys([][]point{rect}, c.st.fill)
}

// fontSize returns the pixel size of a CSS-style font string, or 10 if
// it has none.
func fontSize(font string) float64 {
	for _, f := range strings.Fields(font) {
		if n, ok := strings.CutSuffix(f, "px"); ok {
			if v, err := strconv.ParseFloat(n, 64); err == nil && v > 0 {
				return v
			}
		}
	}
	return 10
}

// FillText renders text into a scratch image at the face's native
// size, then maps it onto the canvas through the current transform.
func (c *Canvas) FillText(text string, x, y float64) {
	if text == "" || !finite(x, y) {
		return
	}
	metrics := c.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(c.face, text).Ceil()
	if width <= 0 || height <= 0 {
		return
	}

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  src,
		Src:  c.paint(c.st.fill),
		Face: c.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	var ox, oy float64
	switch c.st.align {
	case chart.AlignCenter:
		ox = -float64(width) / 2
	case chart.AlignRight:
		ox = -float64(width)
	}
	switch c.st.baseline {
	case chart.BaselineAlphabetic:
		oy = -float64(ascent)
	case chart.BaselineMiddle:
		oy = -float64(height) / 2
	case chart.BaselineBottom:
		oy = -float64(height)
	}
	k := fontSize(c.st.font) / float64(height)
	m := c.st.m.Translate(x, y).Scale(k, k).Translate(ox, oy)
	draw.BiLinear.Transform(c.img, m.Aff3(), src, src.Bounds(), draw.Over, nil)
}
