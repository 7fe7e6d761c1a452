// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"context"
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/logplot/ingest"
)

// A Summary records every value of a column for descriptive
// statistics.
type Summary struct {
	stats.Sample
	Skipped int
}

// Add records v.
func (s *Summary) Add(v float64) {
	s.Xs = append(s.Xs, v)
	s.Sorted = false
}

// Len returns the number of recorded values.
func (s *Summary) Len() int { return len(s.Xs) }

// Median returns the median of the recorded values, or NaN if there
// are none.
func (s *Summary) Median() float64 { return s.Quantile(0.5) }

func (s *Summary) String() string {
	if len(s.Xs) == 0 {
		return "n=0"
	}
	min, max := s.Bounds()
	return fmt.Sprintf("n=%d min=%.6g max=%.6g mean=%.6g median=%.6g stddev=%.6g",
		len(s.Xs), min, max, s.Mean(), s.Median(), s.StdDev())
}

// Subscriber returns a Subscriber that records col of every row.
func (s *Summary) Subscriber(col Column) *ingest.Subscriber {
	return &ingest.Subscriber{
		OnRow: func(fields []string) {
			v, ok := col.Value(fields)
			if !ok {
				s.Skipped++
				return
			}
			s.Add(v)
		},
	}
}

// MaxFromTail returns the value of col in the last row of f. For a
// log sorted on col, this is the column's maximum.
func MaxFromTail(f *ingest.File, col Column, tok ingest.Tokenizer) (float64, error) {
	row, err := ingest.ReadLastRow(f, ingest.DefaultTailWindow, tok)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, fmt.Errorf("%s: empty file", f.Name)
	}
	v, ok := col.Value(row)
	if !ok {
		return 0, fmt.Errorf("%s: last row has no numeric field %d", f.Name, col.Index)
	}
	return v, nil
}

// A TailMax tracks the largest last-row value of a column across
// files. Its Subscriber reads each file's tail as the file starts.
type TailMax struct {
	Col Column
	// Tokenizer parses the tail. If nil, CSV is used.
	Tokenizer ingest.Tokenizer

	Max float64
	// Found is whether any file had a usable last row.
	Found bool
}

// Update raises t.Max to the value of t.Col in the last row of f, if
// that row has one.
func (t *TailMax) Update(f *ingest.File) error {
	row, err := ingest.ReadLastRow(f, ingest.DefaultTailWindow, t.Tokenizer)
	if err != nil {
		return err
	}
	if v, ok := t.Col.Value(row); ok && (!t.Found || v > t.Max) {
		t.Max, t.Found = v, true
	}
	return nil
}

// Subscriber returns a Subscriber that calls Update at the start of
// every file.
func (t *TailMax) Subscriber() *ingest.Subscriber {
	return &ingest.Subscriber{
		OnFileStart: func(ctx context.Context, f *ingest.File, groups []int) error {
			return t.Update(f)
		},
	}
}
