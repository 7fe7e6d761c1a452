// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL is a color given by hue in degrees and saturation and
// lightness in percent. It implements color.Color.
type HSL struct {
	H, S, L float64
}

// RGBA converts c to alpha-premultiplied RGBA. c is always opaque.
func (c HSL) RGBA() (r, g, b, a uint32) {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s, l := c.S/100, c.L/100
	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1 = chroma, x
	case h < 120:
		r1, g1 = x, chroma
	case h < 180:
		g1, b1 = chroma, x
	case h < 240:
		g1, b1 = x, chroma
	case h < 300:
		r1, b1 = x, chroma
	default:
		r1, b1 = chroma, x
	}
	conv := func(v float64) uint32 {
		return uint32(math.Round(math.Max(0, math.Min(1, v+m)) * 0xffff))
	}
	return conv(r1), conv(g1), conv(b1), 0xffff
}

// String returns c in CSS notation, such as "hsl(137, 70%, 50%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// GroupColor returns the color for group id. Successive ids are 137°
// apart in hue, close to the golden angle, so small ids get
// well-separated colors. The same id always yields the same color.
func GroupColor(id int) HSL {
	hue := (id * 137) % 360
	if hue < 0 {
		hue += 360
	}
	return HSL{H: float64(hue), S: 70, L: 50}
}

// ParseGroupColor is like GroupColor for an id given in decimal.
// Like a lenient integer parse, it reads the leading integer of id
// after any space and ignores the rest, so "5.0" and "5abc" are
// group 5.
func ParseGroupColor(id string) (HSL, error) {
	s := strings.TrimSpace(id)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}
	if end == digits {
		return HSL{}, fmt.Errorf("bad group id %q", id)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return HSL{}, fmt.Errorf("bad group id: %w", err)
	}
	return GroupColor(n), nil
}
