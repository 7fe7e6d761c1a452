// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"context"

	"github.com/aclements/logplot/ingest"
)

// DefaultGroup is the group of files given no group ids.
const DefaultGroup = 0

// Grouped keeps one Histogram per group id. A file's rows are added
// to the histogram of every group the file belongs to.
type Grouped struct {
	// Groups gives the group ids in the order they were first
	// seen.
	Groups []int

	Skipped int

	bins int
	max  float64
	hist map[int]*Histogram
	cur  []int
}

// NewGrouped returns an empty Grouped whose histograms have n bins
// over [0, max].
func NewGrouped(n int, max float64) *Grouped {
	return &Grouped{bins: n, max: max, hist: make(map[int]*Histogram)}
}

// Histogram returns the histogram of group id, creating it if
// needed.
func (g *Grouped) Histogram(id int) *Histogram {
	if h, ok := g.hist[id]; ok {
		return h
	}
	h := NewHistogram(g.bins, g.max)
	g.hist[id] = h
	g.Groups = append(g.Groups, id)
	return h
}

// MaxCount returns the largest bin count of any group.
func (g *Grouped) MaxCount() int {
	max := 0
	for _, h := range g.hist {
		if c := h.MaxCount(); c > max {
			max = c
		}
	}
	return max
}

// Subscriber returns a Subscriber that adds col of every row to the
// histograms of the row's file's groups.
func (g *Grouped) Subscriber(col Column) *ingest.Subscriber {
	return &ingest.Subscriber{
		OnFileStart: func(ctx context.Context, f *ingest.File, groups []int) error {
			if len(groups) == 0 {
				groups = []int{DefaultGroup}
			}
			g.cur = groups
			for _, id := range groups {
				g.Histogram(id)
			}
			return nil
		},
		OnRow: func(fields []string) {
			v, ok := col.Value(fields)
			if !ok {
				g.Skipped++
				return
			}
			for _, id := range g.cur {
				g.hist[id].Add(v)
			}
		},
		OnFileDone: func() { g.cur = nil },
	}
}
