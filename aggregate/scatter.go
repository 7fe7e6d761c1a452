// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"math"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/logplot/chart"
	"github.com/aclements/logplot/ingest"
)

// Scatter collects (x, y) pairs.
type Scatter struct {
	// XKey and YKey name the pair's fields in Points and Table.
	XKey, YKey string

	Skipped int

	xs, ys []float64
}

// NewScatter returns an empty Scatter with the given field names.
func NewScatter(xKey, yKey string) *Scatter {
	return &Scatter{XKey: xKey, YKey: yKey}
}

// Add records the pair (x, y).
func (s *Scatter) Add(x, y float64) {
	s.xs = append(s.xs, x)
	s.ys = append(s.ys, y)
}

// Len returns the number of pairs.
func (s *Scatter) Len() int { return len(s.xs) }

// Points returns the pairs in the order they were added.
func (s *Scatter) Points() []chart.DataPoint {
	pts := make([]chart.DataPoint, len(s.xs))
	for i := range pts {
		pts[i] = chart.DataPoint{s.XKey: s.xs[i], s.YKey: s.ys[i]}
	}
	return pts
}

// Max returns the largest x and y values, ignoring non-finite values.
// It returns 0s if s is empty.
func (s *Scatter) Max() (x, y float64) {
	return maxFinite(s.xs), maxFinite(s.ys)
}

func maxFinite(xs []float64) float64 {
	max := 0.0
	for _, x := range xs {
		if !math.IsInf(x, 0) && x > max {
			max = x
		}
	}
	return max
}

// Table returns the pairs as a table with columns XKey and YKey.
func (s *Scatter) Table() *table.Table {
	return new(table.Builder).
		Add(s.XKey, append([]float64(nil), s.xs...)).
		Add(s.YKey, append([]float64(nil), s.ys...)).
		Done()
}

// Subscriber returns a Subscriber that records the xCol and yCol
// values of every row.
func (s *Scatter) Subscriber(xCol, yCol Column) *ingest.Subscriber {
	return &ingest.Subscriber{
		OnRow: func(fields []string) {
			x, okx := xCol.Value(fields)
			y, oky := yCol.Value(fields)
			if !okx || !oky {
				s.Skipped++
				return
			}
			s.Add(x, y)
		},
	}
}
