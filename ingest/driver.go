// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ingest streams delimited log files to a set of
// subscribers.
//
// A caller registers Subscribers with a Registry and then runs a
// Driver over an ordered list of Sources. The Driver parses each file
// in fixed-size chunks and hands every row to every subscriber before
// reading the next chunk, so subscribers can build aggregates
// incrementally without holding the whole file in memory.
//
// Files are processed strictly in order. For each file, the driver
// calls every subscriber's OnFileStart hook (concurrently, waiting for
// all of them), then delivers the file's rows, then calls every
// OnFileDone hook. After the last file, every OnAllDone hook is called
// exactly once. Any error aborts the whole run; OnAllDone is not
// called in that case and nothing the subscribers accumulated is
// rolled back.
package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of input bytes parsed per chunk if
// no chunk size is given.
const DefaultChunkSize = 6 << 10

// A Driver runs ingestion over the subscribers of a Registry.
type Driver struct {
	reg       *Registry
	chunkSize int
	tok       Tokenizer
	log       *zap.Logger
}

// An Option configures a Driver.
type Option func(*Driver)

// WithChunkSize sets the number of bytes parsed per chunk.
func WithChunkSize(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.chunkSize = n
		}
	}
}

// WithTokenizer sets the tokenizer used to split files into rows. The
// default is CSV{}.
func WithTokenizer(tok Tokenizer) Option {
	return func(d *Driver) { d.tok = tok }
}

// WithLogger sets the logger for progress messages.
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// NewDriver returns a Driver that delivers rows to the subscribers
// of reg.
func NewDriver(reg *Registry, opts ...Option) *Driver {
	d := &Driver{
		reg:       reg,
		chunkSize: DefaultChunkSize,
		tok:       CSV{},
		log:       zap.NewNop(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// ParseFiles parses sources in order and delivers their rows to the
// subscribers registered when ParseFiles is called. Subscribers
// registered or unregistered during the run take effect on the next
// run.
func (d *Driver) ParseFiles(ctx context.Context, sources []Source) error {
	subs := d.reg.Snapshot()
	d.log.Debug("starting run", zap.Int("files", len(sources)), zap.Int("subscribers", len(subs)))

	for _, src := range sources {
		if err := d.parseFile(ctx, subs, src); err != nil {
			d.log.Debug("run failed", zap.Stringer("file", src.File), zap.Error(err))
			return err
		}
	}

	broadcast(subs, func(s *Subscriber) { s.OnAllDone.call() })
	d.log.Debug("run done", zap.Int("files", len(sources)))
	return nil
}

func (d *Driver) parseFile(ctx context.Context, subs []*Subscriber, src Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := src.File
	log := d.log.With(zap.String("file", f.Name))
	log.Debug("starting file", zap.Int64("size", f.Size), zap.Ints("groups", src.Groups))

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range subs {
		g.Go(func() error {
			return s.OnFileStart.call(gctx, f, src.Groups)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("starting %s: %w", f.Name, err)
	}

	var nrows, nchunks int
	err := d.tok.Parse(ctx, f.Reader(), d.chunkSize, func(rows [][]string) error {
		nchunks++
		for _, row := range rows {
			broadcast(subs, func(s *Subscriber) { s.OnRow.call(row) })
		}
		nrows += len(rows)
		return nil
	})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", f.Name, err)
	}

	broadcast(subs, func(s *Subscriber) { s.OnFileDone.call() })
	log.Debug("file done", zap.Int("rows", nrows), zap.Int("chunks", nchunks))
	return nil
}
