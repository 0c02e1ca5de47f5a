// Package store holds a state value and replaces it with the result of a
// reducer on every dispatched event.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/reducerkit/pkg/machine"
)

// Listener receives the new state after every successful dispatch.
// Listeners run on the dispatching goroutine and must not call Dispatch.
type Listener[S any] func(state S)

type subscription[S any] struct {
	id int
	fn Listener[S]
}

// Store serializes dispatches so listeners observe states in dispatch order.
// Listeners are called in subscription order.
type Store[S, E any] struct {
	// notifyMu is held from reduction until the last listener returns.
	notifyMu sync.Mutex

	mu        sync.RWMutex
	state     S
	reduce    machine.Reducer[S, E]
	listeners []subscription[S]
	nextID    int
}

// New creates a store starting from initial.
func New[S, E any](reduce machine.Reducer[S, E], initial S) *Store[S, E] {
	return &Store[S, E]{
		state:  initial,
		reduce: reduce,
	}
}

// State returns the current state.
func (s *Store[S, E]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch runs the reducer with the current state and event. The state is
// replaced only when the reducer succeeds; its error is returned as is.
// A panicking reducer or listener leaves the store usable.
func (s *Store[S, E]) Dispatch(ctx context.Context, event E) (S, error) {
	if err := ctx.Err(); err != nil {
		var zero S
		return zero, err
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	next, listeners, err := s.apply(event)
	if err != nil {
		return next, err
	}

	for _, l := range listeners {
		l(next)
	}
	return next, nil
}

// apply reduces the current state and snapshots listeners under the state lock.
// On error it returns the unchanged state.
func (s *Store[S, E]) apply(event E) (S, []Listener[S], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.reduce(s.state, event)
	if err != nil {
		return s.state, nil, err
	}
	s.state = next

	listeners := make([]Listener[S], 0, len(s.listeners))
	for _, sub := range s.listeners {
		listeners = append(listeners, sub.fn)
	}
	return next, listeners, nil
}

// Subscribe registers fn and returns a function removing it.
func (s *Store[S, E]) Subscribe(fn Listener[S]) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription[S]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription[S]) bool {
				return sub.id == id
			})
		})
	}
}
