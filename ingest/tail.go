// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"bytes"
	"fmt"
)

// DefaultTailWindow is the number of trailing bytes ReadLastRow reads
// if window is not positive.
const DefaultTailWindow = 6 << 10

// ReadLastRow parses the last line of f without reading the whole
// file. It reads only the trailing window bytes (or all of f if it is
// smaller), so the last line must fit in the window. If tok is nil,
// it uses CSV{}.
//
// It returns nil if f has no non-blank trailing line.
func ReadLastRow(f *File, window int64, tok Tokenizer) ([]string, error) {
	if window <= 0 {
		window = DefaultTailWindow
	}
	if tok == nil {
		tok = CSV{}
	}
	off := f.Size - window
	if off < 0 {
		off = 0
	}
	data, err := f.ReadRange(off, f.Size-off)
	if err != nil {
		return nil, fmt.Errorf("reading tail of %s: %w", f.Name, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	// The text after the last newline is the last line. With no
	// newline in the window, that is the whole window.
	line := data[bytes.LastIndexByte(data, '\n')+1:]
	row, err := tok.ParseLine(string(line))
	if err != nil {
		return nil, fmt.Errorf("parsing last line of %s: %w", f.Name, err)
	}
	return row, nil
}
