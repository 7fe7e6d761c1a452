// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"math"

	"github.com/aclements/logplot/ingest"
)

// binOf returns the index of the bin holding v among n bins that
// evenly divide [0, max]. The last bin includes max. It returns false
// if v is outside [0, max].
func binOf(v, max float64, n int) (int, bool) {
	if n <= 0 || math.IsNaN(v) || v < 0 || v > max {
		return 0, false
	}
	if max == 0 {
		return 0, true
	}
	i := int(v / max * float64(n))
	if i >= n {
		i = n - 1
	}
	return i, true
}

// A Histogram counts values in fixed-width bins over [0, Max].
type Histogram struct {
	// Max is the upper bound of the last bin.
	Max float64

	// Dropped counts values outside [0, Max].
	Dropped int
	// Skipped counts rows whose field was missing or unparsable.
	Skipped int

	counts []int
}

// NewHistogram returns an empty Histogram of n bins over [0, max].
func NewHistogram(n int, max float64) *Histogram {
	if n < 0 {
		n = 0
	}
	return &Histogram{Max: max, counts: make([]int, n)}
}

// Add counts v.
func (h *Histogram) Add(v float64) {
	i, ok := binOf(v, h.Max, len(h.counts))
	if !ok {
		h.Dropped++
		return
	}
	h.counts[i]++
}

// NumBins returns the number of bins.
func (h *Histogram) NumBins() int { return len(h.counts) }

// Counts returns a copy of the bin counts.
func (h *Histogram) Counts() []int {
	return append([]int(nil), h.counts...)
}

// MaxCount returns the largest bin count.
func (h *Histogram) MaxCount() int {
	max := 0
	for _, c := range h.counts {
		if c > max {
			max = c
		}
	}
	return max
}

// Total returns the number of values counted in some bin.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h.counts {
		n += c
	}
	return n
}

// Subscriber returns a Subscriber that adds col of every row to h.
func (h *Histogram) Subscriber(col Column) *ingest.Subscriber {
	return &ingest.Subscriber{
		OnRow: func(fields []string) {
			v, ok := col.Value(fields)
			if !ok {
				h.Skipped++
				return
			}
			h.Add(v)
		},
	}
}
