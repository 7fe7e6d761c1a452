// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affine implements the 2-D transforms of a drawing surface.
package affine

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// A Matrix is a 2-D affine transform
//
//	[ m[0] m[1] m[2] ]
//	[ m[3] m[4] m[5] ]
//
// mapping (x, y) to (m[0]x + m[1]y + m[2], m[3]x + m[4]y + m[5]).
type Matrix f64.Aff3

// Identity is the transform that leaves points unchanged.
var Identity = Matrix{1, 0, 0, 0, 1, 0}

// Mul returns the transform that applies n and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Translate returns m preceded by a translation by (x, y).
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{1, 0, x, 0, 1, y})
}

// Rotate returns m preceded by a rotation by angle radians. With the
// Y axis pointing down, positive angles turn clockwise.
func (m Matrix) Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return m.Mul(Matrix{cos, -sin, 0, sin, cos, 0})
}

// Scale returns m preceded by scaling by (sx, sy).
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{sx, 0, 0, 0, sy, 0})
}

// Apply maps the point (x, y) through m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// LinearScale returns the factor by which m scales lengths, averaged
// over directions.
func (m Matrix) LinearScale() float64 {
	return math.Sqrt(math.Abs(m[0]*m[4] - m[1]*m[3]))
}

// IsTranslation reports whether m only translates.
func (m Matrix) IsTranslation() bool {
	return m[0] == 1 && m[1] == 0 && m[3] == 0 && m[4] == 1
}

// Aff3 returns m in the form used by golang.org/x/image/draw.
func (m Matrix) Aff3() f64.Aff3 { return f64.Aff3(m) }

// String returns m as an SVG transform attribute value.
func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%.6g %.6g %.6g %.6g %.6g %.6g)", m[0], m[3], m[1], m[4], m[2], m[5])
}
