// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"context"
	"sync"
)

// A Subscriber observes an ingestion run. Every hook is optional; a
// nil hook is skipped.
//
// All four hooks of one Subscriber act as a single consumer: the
// driver calls them in order from a single goroutine, except
// OnFileStart, which runs concurrently with the OnFileStart hooks of
// other subscribers.
type Subscriber struct {
	// OnFileStart is called before any row of a file is
	// delivered. It may block to perform setup. A non-nil error
	// aborts the run.
	OnFileStart FileStartFunc

	// OnRow is called for every non-blank row.
	OnRow RowFunc

	// OnFileDone is called after the last row of a file.
	OnFileDone DoneFunc

	// OnAllDone is called once after every file is done.
	OnAllDone DoneFunc
}

// FileStartFunc is the type of Subscriber.OnFileStart.
type FileStartFunc func(ctx context.Context, f *File, groups []int) error

// RowFunc is the type of Subscriber.OnRow.
type RowFunc func(fields []string)

// DoneFunc is the type of Subscriber.OnFileDone and
// Subscriber.OnAllDone.
type DoneFunc func()

func (h FileStartFunc) call(ctx context.Context, f *File, groups []int) error {
	if h == nil {
		return nil
	}
	return h(ctx, f, groups)
}

func (h RowFunc) call(fields []string) {
	if h != nil {
		h(fields)
	}
}

func (h DoneFunc) call() {
	if h != nil {
		h()
	}
}

// A Registry is an ordered set of Subscribers. Each ingestion session
// owns its own Registry.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	subs []*Subscriber
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return new(Registry)
}

// Register adds s to r and returns a function that removes it.
// Registering the same Subscriber twice delivers every event to it
// twice.
func (r *Registry) Register(s *Subscriber) (unregister func()) {
	r.mu.Lock()
	r.subs = append(r.subs, s)
	r.mu.Unlock()
	return func() { r.Unregister(s) }
}

// Subscribe registers a Subscriber built from the given hooks, any of
// which may be nil, and returns its unregister function.
func (r *Registry) Subscribe(onRow RowFunc, onFileDone, onAllDone DoneFunc, onFileStart FileStartFunc) (unregister func()) {
	return r.Register(&Subscriber{
		OnFileStart: onFileStart,
		OnRow:       onRow,
		OnFileDone:  onFileDone,
		OnAllDone:   onAllDone,
	})
}

// Unregister removes every registration of s from r. Removing a
// Subscriber that is not registered is a no-op.
func (r *Registry) Unregister(s *Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Build a new slice so earlier snapshots are unaffected.
	subs := make([]*Subscriber, 0, len(r.subs))
	for _, sub := range r.subs {
		if sub != s {
			subs = append(subs, sub)
		}
	}
	r.subs = subs
}

// Snapshot returns the registered Subscribers in registration order.
// Later changes to r do not affect the returned slice.
func (r *Registry) Snapshot() []*Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Subscriber(nil), r.subs...)
}

// Len returns the number of registrations in r.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// broadcast calls hook for each subscriber in order.
func broadcast(subs []*Subscriber, hook func(*Subscriber)) {
	for _, s := range subs {
		hook(s)
	}
}
