// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"
	"strings"
)

// tickEpsilon absorbs floating-point error when snapping a normalized
// step to 1, 2, or 5, so that a step of exactly 2 does not become 5.
const tickEpsilon = 1e-12

// DetermineTickSize returns a step of the form d×10^k, d ∈ {1, 2, 5,
// 10}, that divides [0, max] into about count intervals. It is the
// smallest such step no less than max/count.
//
// It returns 0 if max/count is not positive and finite.
func DetermineTickSize(max float64, count int) float64 {
	raw := max / float64(count)
	if !(raw > 0) || math.IsInf(raw, 0) {
		return 0
	}
	k := math.Floor(math.Log10(raw))
	norm := raw * math.Pow(10, -k)
	var d float64
	switch {
	case norm <= 1+tickEpsilon:
		d = 1
	case norm <= 2+tickEpsilon:
		d = 2
	case norm <= 5+tickEpsilon:
		d = 5
	default:
		d = 10
	}
	return d * math.Pow(10, k)
}

// FormatNumberPrecision formats v with precision significant digits
// and then drops trailing zeros after the decimal point, and the point
// itself if nothing follows it. Exponential notation is used for
// decimal exponents below -6 or at least precision, as in "1.5e+4".
// Halfway cases round away from zero.
//
// precision is clamped to [1, 100].
func FormatNumberPrecision(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if precision < 1 {
		precision = 1
	} else if precision > 100 {
		precision = 100
	}

	a := math.Abs(v)
	if isHalfway(a, precision) {
		a = math.Nextafter(a, math.Inf(1))
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}

	sci := strconv.FormatFloat(a, 'e', precision-1, 64)
	mant, exps, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(exps)
	if exp < -6 || exp >= precision {
		esign := "+"
		if exp < 0 {
			esign, exp = "-", -exp
		}
		return sign + trimZeros(mant) + "e" + esign + strconv.Itoa(exp)
	}
	return sign + trimZeros(strconv.FormatFloat(a, 'f', precision-1-exp, 64))
}

// isHalfway reports whether a lies exactly halfway between two
// numbers of precision significant digits. strconv rounds those cases
// to even.
func isHalfway(a float64, precision int) bool {
	if a == 0 {
		return false
	}
	// Doubles carry at most 17 significant digits, so 25 more
	// digits are enough to see whether the tail is exactly 5.
	long := strconv.FormatFloat(a, 'e', precision+25, 64)
	mant, _, _ := strings.Cut(long, "e")
	digits := strings.Replace(mant, ".", "", 1)
	tail := digits[precision:]
	return tail[0] == '5' && strings.TrimRight(tail[1:], "0") == ""
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// DrawTicksX draws tick marks and labels below the X axis of f for an
// axis from 0 to max, with a step chosen by DetermineTickSize. Ticks
// stop at the last multiple of the step no greater than max.
func DrawTicksX(s Surface, f Frame, max float64, count int, opts ...Option) {
	st := newStyle(Black, TickFont, opts)
	bottom := f.Height - f.Margin.Bottom

	s.Save()
	s.SetFont(st.font)
	s.SetFillColor(st.color)
	s.SetStrokeColor(st.color)
	s.SetTextAlign(AlignCenter)
	s.SetTextBaseline(BaselineTop)
	eachTick(max, count, func(tick float64) {
		x := f.X(tick, max)
		DrawLine(s, x, bottom, x, bottom+5, st.color, st.lineWidth)
		s.FillText(FormatNumberPrecision(tick, 3), x, bottom+8)
	})
	s.Restore()
}

// DrawTicksY draws tick marks and labels left of the Y axis of f for
// an axis from 0 to max. See DrawTicksX.
func DrawTicksY(s Surface, f Frame, max float64, count int, opts ...Option) {
	st := newStyle(Black, TickFont, opts)
	left := f.Margin.Left

	s.Save()
	s.SetFont(st.font)
	s.SetFillColor(st.color)
	s.SetStrokeColor(st.color)
	s.SetTextAlign(AlignRight)
	s.SetTextBaseline(BaselineMiddle)
	eachTick(max, count, func(tick float64) {
		y := f.Y(tick, max)
		DrawLine(s, left, y, left-5, y, st.color, st.lineWidth)
		s.FillText(FormatNumberPrecision(tick, 3), left-8, y)
	})
	s.Restore()
}

// Ticks returns the tick values DrawTicksX and DrawTicksY draw for an
// axis from 0 to max.
func Ticks(max float64, count int) []float64 {
	var ticks []float64
	eachTick(max, count, func(tick float64) { ticks = append(ticks, tick) })
	return ticks
}

func eachTick(max float64, count int, fn func(tick float64)) {
	step := DetermineTickSize(max, count)
	for i := 0; i <= count; i++ {
		tick := float64(i) * step
		if tick > max {
			break
		}
		fn(tick)
		if step == 0 {
			// Degenerate axis: only the origin.
			break
		}
	}
}
