// Package pages implements the page controllers: each one composes the
// API client, the session holder, and the shared widgets into the
// fetch-and-display loop a page runs.
package pages

import (
	"context"
	"sync"
)

// State is the lifecycle of an asynchronous fetch.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

// Resource is the shared fetch state machine: idle until loaded, then
// either the value or the error. Loads carry a generation number so a
// response that arrives after a newer load was requested is discarded
// rather than applied.
type Resource[T any] struct {
	mu         sync.Mutex
	state      State
	value      T
	err        error
	generation uint64
}

// Load runs fetch and applies its result unless a newer Load has been
// requested in the meantime.
func (r *Resource[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) {
	r.mu.Lock()
	r.generation++
	generation := r.generation
	r.state = StateLoading
	r.mu.Unlock()

	value, err := fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if generation != r.generation {
		return
	}
	if err != nil {
		r.state = StateError
		r.err = err
		return
	}
	r.state = StateSuccess
	r.value = value
	r.err = nil
}

// State returns the current lifecycle state.
func (r *Resource[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Value returns the last successful result.
func (r *Resource[T]) Value() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Err returns the last fetch error, or nil.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Reset returns the resource to idle, invalidating in-flight loads.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	r.state = StateIdle
	r.err = nil
	var zero T
	r.value = zero
}
