// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aggregate accumulates ingested rows into the histograms,
// bins, and point sets the chart renderers draw.
//
// Each accumulator offers a Subscriber method returning an
// ingest.Subscriber that feeds it one column (or a pair of columns)
// of every row. Fields that are missing or do not parse as numbers are
// counted in the accumulator's Skipped field and otherwise ignored.
package aggregate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/logplot/ingest"
)

// ValueParser parses a field into a number or returns an error if
// the field cannot be parsed.
type ValueParser func(string) (float64, error)

// DefaultValueParsers is the default sequence of value parsers used
// by ParseValue if no parsers are specified. Durations such as "12ms"
// parse as seconds.
var DefaultValueParsers = []ValueParser{
	func(s string) (float64, error) {
		v, err := strconv.Atoi(s)
		return float64(v), err
	},
	func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	func(s string) (float64, error) {
		d, err := time.ParseDuration(s)
		return d.Seconds(), err
	},
}

// ParseValue parses field s with the first of parsers that accepts
// it. Surrounding whitespace is ignored. If parsers is nil, it uses
// DefaultValueParsers.
func ParseValue(s string, parsers []ValueParser) (float64, error) {
	if parsers == nil {
		parsers = DefaultValueParsers
	}
	s = strings.TrimSpace(s)
	for _, vp := range parsers {
		if v, err := vp(s); err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("cannot parse %q as a number", s)
}

// A Column selects and parses one field of each row.
type Column struct {
	// Index is the 0-based field index.
	Index int
	// Parsers parse the field. If nil, DefaultValueParsers is
	// used.
	Parsers []ValueParser
}

// Col returns the Column of field i with the default parsers.
func Col(i int) Column {
	return Column{Index: i}
}

// Value returns the parsed value of c in row, or false if the row has
// no such field or the field cannot be parsed.
func (c Column) Value(row []string) (float64, bool) {
	if c.Index < 0 || c.Index >= len(row) {
		return 0, false
	}
	v, err := ParseValue(row[c.Index], c.Parsers)
	return v, err == nil
}

// SkipHeader returns a Subscriber that forwards every event to s
// except the first row of each file.
func SkipHeader(s *ingest.Subscriber) *ingest.Subscriber {
	first := false
	return &ingest.Subscriber{
		OnFileStart: func(ctx context.Context, f *ingest.File, groups []int) error {
			first = true
			if s.OnFileStart == nil {
				return nil
			}
			return s.OnFileStart(ctx, f, groups)
		},
		OnRow: func(fields []string) {
			if first {
				first = false
				return
			}
			if s.OnRow != nil {
				s.OnRow(fields)
			}
		},
		OnFileDone: s.OnFileDone,
		OnAllDone:  s.OnAllDone,
	}
}
