// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "image/color"

// Colors used by default.
var (
	Black  = color.RGBA{0, 0, 0, 0xff}
	Blue   = color.RGBA{0, 0, 0xff, 0xff}
	Orange = color.RGBA{0xff, 0xa5, 0, 0xff}
	Red    = color.RGBA{0xff, 0, 0, 0xff}
)

// Default fonts.
const (
	AxisFont    = "14px sans-serif"
	TitleFont   = "16px sans-serif"
	MessageFont = "16px sans-serif"
	TickFont    = "10px sans-serif"
)

// DefaultOpacity is the global alpha renderers draw data with.
const DefaultOpacity = 0.7

// An Option overrides part of a renderer's default style.
type Option func(*style)

type style struct {
	color      color.Color
	pointColor color.Color
	opacity    float64
	radius     float64
	lineWidth  float64
	font       string

	restoreSingleBin bool
}

func newStyle(c color.Color, font string, opts []Option) *style {
	s := &style{
		color:      c,
		pointColor: Red,
		opacity:    DefaultOpacity,
		radius:     4,
		lineWidth:  1,
		font:       font,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WithColor sets the main color of a renderer: bars, lines, points,
// or text.
func WithColor(c color.Color) Option {
	return func(s *style) { s.color = c }
}

// WithPointColor sets the marker color of DrawBinnedAverage.
func WithPointColor(c color.Color) Option {
	return func(s *style) { s.pointColor = c }
}

// WithOpacity sets the global alpha data is drawn with.
func WithOpacity(alpha float64) Option {
	return func(s *style) { s.opacity = alpha }
}

// WithRadius sets the radius of scatter points.
func WithRadius(r float64) Option {
	return func(s *style) { s.radius = r }
}

// WithLineWidth sets the width of stroked lines.
func WithLineWidth(w float64) Option {
	return func(s *style) { s.lineWidth = w }
}

// WithFont sets the font of text drawn by a renderer.
func WithFont(font string) Option {
	return func(s *style) { s.font = font }
}

// WithRestoreOnSingleBin controls whether DrawMedianLine restores the
// surface's saved style when it is given exactly one bin. By default
// it does not, so the opacity it sets stays in effect after it
// returns. Every other path of every renderer restores the style.
func WithRestoreOnSingleBin(restore bool) Option {
	return func(s *style) { s.restoreSingleBin = restore }
}
