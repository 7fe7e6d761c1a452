// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// A File is a named, sized byte source that supports ranged reads.
type File struct {
	// Name identifies the file in logs and errors. It is usually
	// the path it was opened from.
	Name string

	// Size is the length of the file's (decompressed) content in
	// bytes.
	Size int64

	r      io.ReaderAt
	closer io.Closer
}

// NewFile returns a File reading size bytes from r.
func NewFile(name string, r io.ReaderAt, size int64) *File {
	return &File{Name: name, Size: size, r: r}
}

// Bytes returns a File over an in-memory buffer.
func Bytes(name string, data []byte) *File {
	return NewFile(name, bytes.NewReader(data), int64(len(data)))
}

// Open opens the file at path. Files compressed with gzip, bzip2, or
// xz are detected by their magic bytes and decompressed into memory
// so that ranged reads work the same way for every input.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	ct, err := detectCompression(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if ct == compressionNone {
		st, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		file := NewFile(path, f, st.Size())
		file.closer = f
		return file, nil
	}

	defer f.Close()
	data, err := decompress(f, ct)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Bytes(path, data), nil
}

// Close releases the underlying file, if any.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	return err
}

// Reader returns a reader over the whole file.
func (f *File) Reader() io.Reader {
	return io.NewSectionReader(f.r, 0, f.Size)
}

// ReadRange returns the n bytes starting at off. The range is
// clipped to the file.
func (f *File) ReadRange(off, n int64) ([]byte, error) {
	if off < 0 {
		off = 0
	}
	if off > f.Size {
		off = f.Size
	}
	if n < 0 {
		n = 0
	}
	if n > f.Size-off {
		n = f.Size - off
	}
	buf := make([]byte, n)
	if _, err := f.r.ReadAt(buf, off); err != nil && err != io.EOF {
		return nil, err
	}
	return buf, nil
}

func (f *File) String() string {
	return f.Name
}

// A Source is a File together with the group identifiers its rows
// belong to.
type Source struct {
	File   *File
	Groups []int
}

type compression int

const (
	compressionNone compression = iota
	compressionGzip
	compressionBzip2
	compressionXZ
)

func (c compression) String() string {
	switch c {
	case compressionGzip:
		return "gzip"
	case compressionBzip2:
		return "bzip2"
	case compressionXZ:
		return "xz"
	}
	return "none"
}

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

func detectCompression(r io.ReaderAt) (compression, error) {
	// xz has the longest magic.
	header := make([]byte, len(xzMagic))
	n, err := r.ReadAt(header, 0)
	if err != nil && err != io.EOF {
		return compressionNone, err
	}
	header = header[:n]
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return compressionGzip, nil
	case bytes.HasPrefix(header, bzip2Magic):
		return compressionBzip2, nil
	case bytes.HasPrefix(header, xzMagic):
		return compressionXZ, nil
	}
	return compressionNone, nil
}

func decompress(r io.Reader, ct compression) ([]byte, error) {
	var dr io.Reader
	switch ct {
	case compressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		dr = gz
	case compressionBzip2:
		dr = bzip2.NewReader(r)
	case compressionXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		dr = xr
	default:
		return nil, fmt.Errorf("unsupported compression %v", ct)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, dr); err != nil {
		return nil, fmt.Errorf("%v: %w", ct, err)
	}
	return buf.Bytes(), nil
}
