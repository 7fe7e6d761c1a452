// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws histograms, empirical CDFs, scatter plots, and
// per-bin lines onto a 2-D drawing Surface.
//
// All renderers map data to pixels through a Frame: a canvas size and
// a Margin that insets the plot area. A data value v on an axis whose
// maximum is max lands at v/max of the way across the plot area. The
// Y axis is inverted so larger values are drawn higher up. An axis
// maximum of 0 maps every value to the axis origin.
//
// Renderers never fail. Empty input draws a centered placeholder
// message, and degenerate values (zero maxima, empty bins) fall back
// to documented positions instead of producing errors.
package chart

import (
	"image/color"

	"github.com/aclements/go-moremath/scale"
)

// TextAlign is the horizontal alignment of text relative to its
// anchor point.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical alignment of text relative to its
// anchor point.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// A Surface is a 2-D drawing target with a current path and a stack
// of saved styles.
//
// The style state consists of the stroke and fill colors, line width,
// font, text alignment, global alpha, and the current transform. Save
// pushes a copy of it and Restore pops it. Translate and Rotate modify
// the current transform, which applies to all subsequent coordinates.
//
// Implementations ignore path points with non-finite coordinates.
type Surface interface {
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	// SetFont sets the font as a CSS-style "<size>px <family>"
	// string.
	SetFont(font string)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	// SetGlobalAlpha sets an opacity in [0, 1] applied to every
	// subsequent fill and stroke.
	SetGlobalAlpha(alpha float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centered at (x, y) from angle start
	// to end, in radians, clockwise in pixel space.
	Arc(x, y, r, start, end float64)
	ClosePath()
	Fill()
	Stroke()

	FillRect(x, y, w, h float64)
	FillText(text string, x, y float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}

// Margin is the inset of the plot area from each edge of the canvas,
// in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// A Frame is a canvas size together with the margin of its plot area.
type Frame struct {
	Width, Height float64
	Margin        Margin
}

// PlotWidth returns the width of the plot area.
func (f Frame) PlotWidth() float64 {
	return f.Width - f.Margin.Left - f.Margin.Right
}

// PlotHeight returns the height of the plot area.
func (f Frame) PlotHeight() float64 {
	return f.Height - f.Margin.Top - f.Margin.Bottom
}

// X returns the pixel X coordinate of value v on an axis from 0 to
// max.
func (f Frame) X(v, max float64) float64 {
	return f.Margin.Left + Normalize(v, max)*f.PlotWidth()
}

// Y returns the pixel Y coordinate of value v on an axis from 0 to
// max.
func (f Frame) Y(v, max float64) float64 {
	return f.Height - f.Margin.Bottom - Normalize(v, max)*f.PlotHeight()
}

// Normalize maps v on the axis [0, max] to [0, 1]. Values outside
// the axis map outside [0, 1]. If max is 0, it returns 0.
func Normalize(v, max float64) float64 {
	if max == 0 {
		return 0
	}
	s := scale.Linear{Min: 0, Max: max}
	return s.Map(v)
}

// A Point is a pair of coordinates.
type Point struct {
	X, Y float64
}
