// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import "github.com/aclements/logplot/ingest"

// Bins sums a Y value per bin of an X value. The bins evenly divide
// [0, MaxX].
type Bins struct {
	MaxX float64

	Sums   []float64
	Counts []int

	// Dropped counts rows whose X value is outside [0, MaxX].
	Dropped int
	// Skipped counts rows with a missing or unparsable field.
	Skipped int
}

// NewBins returns empty Bins with n bins over [0, maxX].
func NewBins(n int, maxX float64) *Bins {
	if n < 0 {
		n = 0
	}
	return &Bins{
		MaxX:   maxX,
		Sums:   make([]float64, n),
		Counts: make([]int, n),
	}
}

// Add adds y to the bin of x.
func (b *Bins) Add(x, y float64) {
	i, ok := binOf(x, b.MaxX, len(b.Sums))
	if !ok {
		b.Dropped++
		return
	}
	b.Sums[i] += y
	b.Counts[i]++
}

// NumBins returns the number of bins.
func (b *Bins) NumBins() int { return len(b.Sums) }

// MaxMean returns the largest per-bin mean, or 0 if every bin is
// empty.
func (b *Bins) MaxMean() float64 {
	max := 0.0
	for i, sum := range b.Sums {
		if b.Counts[i] == 0 {
			continue
		}
		if m := sum / float64(b.Counts[i]); m > max {
			max = m
		}
	}
	return max
}

// Subscriber returns a Subscriber that adds the yCol value of every
// row to the bin of its xCol value.
func (b *Bins) Subscriber(xCol, yCol Column) *ingest.Subscriber {
	return &ingest.Subscriber{
		OnRow: func(fields []string) {
			x, okx := xCol.Value(fields)
			y, oky := yCol.Value(fields)
			if !okx || !oky {
				b.Skipped++
				return
			}
			b.Add(x, y)
		},
	}
}
