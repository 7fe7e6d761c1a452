// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func TestReadLastRow(t *testing.T) {
	for _, test := range []struct {
		name   string
		data   string
		window int64
		want   []string
	}{
		{"basic", "a,1\nb,2\nc,3\n", 100, []string{"c", "3"}},
		{"no trailing newline", "a,1\nb,2", 100, []string{"b", "2"}},
		{"crlf", "a,1\r\nb,2\r\n", 100, []string{"b", "2"}},
		{"trailing blank lines", "a,1\nb,2\n\n\n", 100, []string{"b", "2"}},
		// The window cuts into the second-to-last line.
		{"small window", "aaaa,1\nbbbb,2\nc,3\n", 6, []string{"c", "3"}},
		// No newline in the window: the window is the line.
		{"window inside line", "a,1\nxyz,12345\n", 8, []string{"z", "12345"}},
		{"single line", "only,row", 100, []string{"only", "row"}},
		{"quoted", "a,1\n\"x,y\",2\n", 100, []string{"x,y", "2"}},
		{"empty", "", 100, nil},
		{"blank", "\n\n", 100, nil},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := ReadLastRow(Bytes(test.name, []byte(test.data)), test.window, nil)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestReadLastRowDefaultWindow(t *testing.T) {
	data := bytes.Repeat([]byte("x,1\n"), 10000)
	data = append(data, "last,2\n"...)
	got, err := ReadLastRow(Bytes("big", data), 0, CSV{})
	require.NoError(t, err)
	assert.Equal(t, []string{"last", "2"}, got)
}

func TestReadLastRowSeparator(t *testing.T) {
	got, err := ReadLastRow(Bytes("tsv", []byte("a\t1\nb\t2\n")), 100, CSV{Comma: '\t'})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "2"}, got)
}

func TestFileReadRange(t *testing.T) {
	f := Bytes("f", []byte("0123456789"))
	for _, test := range []struct {
		off, n int64
		want   string
	}{
		{0, 3, "012"},
		{7, 10, "789"},
		{-2, 2, "01"},
		{20, 5, ""},
		{3, -1, ""},
		{2, 1<<63 - 1, "23456789"},
	} {
		got, err := f.ReadRange(test.off, test.n)
		require.NoError(t, err)
		assert.Equal(t, test.want, string(got), "ReadRange(%d, %d)", test.off, test.n)
	}
}

func TestOpen(t *testing.T) {
	const content = "a,1\nb,2\n"
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.csv")
	require.NoError(t, os.WriteFile(plain, []byte(content), 0666))

	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	_, err := gw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	gzPath := filepath.Join(dir, "log.csv.gz")
	require.NoError(t, os.WriteFile(gzPath, gzBuf.Bytes(), 0666))

	var xzBuf bytes.Buffer
	xw, err := xz.NewWriter(&xzBuf)
	require.NoError(t, err)
	_, err = xw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, xw.Close())
	xzPath := filepath.Join(dir, "log.csv.xz")
	require.NoError(t, os.WriteFile(xzPath, xzBuf.Bytes(), 0666))

	for _, path := range []string{plain, gzPath, xzPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := Open(path)
			require.NoError(t, err)
			defer f.Close()

			assert.Equal(t, path, f.Name)
			assert.EqualValues(t, len(content), f.Size)
			row, err := ReadLastRow(f, 100, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{"b", "2"}, row)
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	a, b := &Subscriber{}, &Subscriber{}
	unA := reg.Register(a)
	reg.Register(b)
	snap := reg.Snapshot()
	assert.Equal(t, []*Subscriber{a, b}, snap)

	unA()
	assert.Equal(t, []*Subscriber{b}, reg.Snapshot())
	// Earlier snapshots are unaffected.
	assert.Equal(t, []*Subscriber{a, b}, snap)

	// Removing twice, or removing something unknown, is a no-op.
	unA()
	reg.Unregister(&Subscriber{})
	assert.Equal(t, 1, reg.Len())
}
