// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A DataPoint is a record of named numeric fields. A missing field
// reads as 0.
type DataPoint map[string]float64

// DrawScatter draws a point for each element of points at fields
// xKey and yKey, on axes from 0 to xMax and 0 to yMax. Points are
// drawn in ascending order of xKey; points itself is not reordered.
func DrawScatter(s Surface, f Frame, points []DataPoint, xKey, yKey string, xMax, yMax float64, opts ...Option) {
	st := newStyle(Orange, MessageFont, opts)

	order := make([]DataPoint, len(points))
	copy(order, points)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i][xKey] < order[j][xKey]
	})

	s.Save()
	s.SetGlobalAlpha(st.opacity)
	for _, p := range order {
		DrawPoint(s, f.X(p[xKey], xMax), f.Y(p[yKey], yMax), st.radius, st.color)
	}
	s.Restore()
}

// PointsFromTable returns a DataPoint for each row of t holding the
// values of columns xKey and yKey. Both columns must have a numeric
// element type.
func PointsFromTable(t *table.Table, xKey, yKey string) ([]DataPoint, error) {
	cols := make([][]float64, 2)
	for i, key := range []string{xKey, yKey} {
		col := t.Column(key)
		if col == nil {
			return nil, fmt.Errorf("table has no column %q", key)
		}
		slice.Convert(&cols[i], col)
	}
	points := make([]DataPoint, t.Len())
	for i := range points {
		points[i] = DataPoint{xKey: cols[0][i], yKey: cols[1][i]}
	}
	return points, nil
}
