// Package controller provides a small lifecycle wrapper around a
// remote collection: load it, run a mutation, and reload exactly once
// after the mutation resolves. The console never patches collections
// locally; a reload after every successful write keeps the view
// read-your-writes consistent with the backend.
package controller

import (
	"context"
	"errors"
	"sync"
)

// ErrInFlight is returned when a mutation is attempted while another
// one is still pending on the same resource.
var ErrInFlight = errors.New("mutation already in flight")

// ErrClosed is returned when the resource's lifetime has ended.
var ErrClosed = errors.New("resource closed")

// LoadFunc fetches the current state of the collection.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Resource owns a remote collection for the lifetime of one view.
// Closing it cancels any in-flight request so a slow response can
// never write state after release.
type Resource[T any] struct {
	mu      sync.Mutex
	load    LoadFunc[T]
	ctx     context.Context
	cancel  context.CancelFunc
	data    T
	err     error
	loaded  bool
	pending bool
}

// New creates a resource bound to the parent context's lifetime.
func New[T any](parent context.Context, load LoadFunc[T]) *Resource[T] {
	ctx, cancel := context.WithCancel(parent)
	return &Resource[T]{
		load:   load,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Load fetches the collection. A failed load keeps any previously
// loaded data so the view can render stale rows behind an error banner.
func (r *Resource[T]) Load() error {
	r.mu.Lock()
	ctx := r.ctx
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ErrClosed
	}

	data, err := r.load(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ctx.Err() != nil {
		// Closed while the request was in flight; drop the result.
		return ErrClosed
	}
	r.err = err
	if err == nil {
		r.data = data
		r.loaded = true
	}
	return err
}

// Mutate runs action and, only if it succeeds, reloads the collection
// exactly once before clearing the pending flag. A failed action
// issues no reload. Concurrent mutations are rejected with ErrInFlight.
func (r *Resource[T]) Mutate(action func(ctx context.Context) error) error {
	r.mu.Lock()
	if r.ctx.Err() != nil {
		r.mu.Unlock()
		return ErrClosed
	}
	if r.pending {
		r.mu.Unlock()
		return ErrInFlight
	}
	r.pending = true
	ctx := r.ctx
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.pending = false
		r.mu.Unlock()
	}()

	if err := action(ctx); err != nil {
		return err
	}
	return r.Load()
}

// Data returns the last loaded collection and the last error. The
// error is non-nil after a failed load even when stale data exists.
func (r *Resource[T]) Data() (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data, r.err
}

// Loaded reports whether at least one load has succeeded.
func (r *Resource[T]) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}

// Pending reports whether a mutation is in flight.
func (r *Resource[T]) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Close ends the resource's lifetime and cancels in-flight requests.
func (r *Resource[T]) Close() {
	r.cancel()
}
