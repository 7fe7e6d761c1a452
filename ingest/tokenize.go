// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
)

// A Tokenizer splits delimited text into rows of fields.
type Tokenizer interface {
	// Parse reads r to EOF and calls chunk with the rows parsed
	// from each successive span of roughly chunkSize input bytes.
	// Blank lines produce no rows. Parse stops at the first error
	// from the input or from chunk.
	Parse(ctx context.Context, r io.Reader, chunkSize int, chunk func(rows [][]string) error) error

	// ParseLine parses a single line. It returns nil if the line
	// holds no row.
	ParseLine(line string) ([]string, error)
}

// CSV is a Tokenizer for comma-separated values. The zero value
// splits on commas, has no comment character, and accepts stray
// quotes.
//
// Rows may have different numbers of fields.
type CSV struct {
	// Comma is the field delimiter. If 0, it is ','.
	Comma rune

	// Comment, if not 0, starts a comment line.
	Comment rune

	// Strict requires quotes to follow RFC 4180.
	Strict bool
}

func (c CSV) reader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	if c.Comma != 0 {
		cr.Comma = c.Comma
	}
	cr.Comment = c.Comment
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = !c.Strict
	return cr
}

func (c CSV) Parse(ctx context.Context, r io.Reader, chunkSize int, chunk func(rows [][]string) error) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	cr := c.reader(r)
	var rows [][]string
	limit := int64(chunkSize)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		rows = append(rows, row)

		off := cr.InputOffset()
		if off < limit {
			continue
		}
		if err := chunk(rows); err != nil {
			return err
		}
		// Subscribers may hold on to rows, so start a new
		// slice rather than reusing this one.
		rows = nil
		for limit <= off {
			limit += int64(chunkSize)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		return chunk(rows)
	}
	return nil
}

func (c CSV) ParseLine(line string) ([]string, error) {
	row, err := c.reader(strings.NewReader(line)).Read()
	if err == io.EOF {
		return nil, nil
	}
	return row, err
}
