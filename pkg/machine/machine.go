package machine

import (
	"fmt"
	"slices"
)

// Reducer computes the next state from the current state and an event.
// Implementations should return a new state value rather than mutate the input.
type Reducer[S, E any] func(state S, event E) (S, error)

// LabelFunc reads the status label carried by state.
// It reports ok == false when the state is absent or carries no label.
type LabelFunc[S any, L comparable] func(state S) (label L, ok bool)

// FallbackHook observes lenient fallback: label was read from state but no
// reducer is registered for it, so the reducer of initial handles the event.
type FallbackHook[L comparable] func(label, initial L)

// Machine routes every event to the reducer registered for the status label
// found in the current state. It holds no state between calls and is immutable
// after construction, so a single Machine is safe for concurrent use.
type Machine[L comparable, S, E any] struct {
	initial    L
	labels     []L
	reducers   map[L]Reducer[S, E]
	label      LabelFunc[S, L]
	strict     bool
	onFallback FallbackHook[L]
}

// Reduce is the composite reducer. The selected reducer's result, including
// its error, is returned as is.
func (m *Machine[L, S, E]) Reduce(state S, event E) (S, error) {
	current, ok := m.label(state)
	if !ok {
		return m.reducers[m.initial](state, event)
	}

	if r, found := m.reducers[current]; found {
		return r(state, event)
	}

	if m.strict {
		var zero S
		return zero, NewErrUnknownStatus(fmt.Sprint(current))
	}
	if m.onFallback != nil {
		m.onFallback(current, m.initial)
	}
	return m.reducers[m.initial](state, event)
}

// Reducer returns Reduce as a plain function value for stores that accept one.
func (m *Machine[L, S, E]) Reducer() Reducer[S, E] {
	return m.Reduce
}

// Route reports the registered label Reduce would dispatch state to and
// whether that label was reached by falling back from an unregistered one.
// Absent labels resolve to the initial label without counting as fallback.
// Strict machines report the same (initial, true) for unregistered labels,
// although Reduce rejects those states instead of dispatching them.
func (m *Machine[L, S, E]) Route(state S) (label L, fallback bool) {
	current, ok := m.label(state)
	if !ok {
		return m.initial, false
	}
	if _, found := m.reducers[current]; found {
		return current, false
	}
	return m.initial, true
}

// Initial returns the label used for absent and unrecognized statuses.
func (m *Machine[L, S, E]) Initial() L {
	return m.initial
}

// Labels returns the registered labels in registration order.
func (m *Machine[L, S, E]) Labels() []L {
	return slices.Clone(m.labels)
}

// Has reports whether a reducer is registered for label.
func (m *Machine[L, S, E]) Has(label L) bool {
	_, ok := m.reducers[label]
	return ok
}

// Strict reports whether unrecognized labels are rejected instead of routed
// to the initial reducer.
func (m *Machine[L, S, E]) Strict() bool {
	return m.strict
}

func (m *Machine[L, S, E]) addStatus(label L, r Reducer[S, E]) error {
	var zero L
	if label == zero {
		return ErrZeroLabel
	}
	if r == nil {
		return fmt.Errorf("status %v: %w", label, ErrNilReducer)
	}
	if _, exists := m.reducers[label]; exists {
		return fmt.Errorf("status %v: %w", label, ErrDuplicateStatus)
	}

	// First registered label is the initial one unless WithInitial overrides it.
	if len(m.labels) == 0 {
		m.initial = label
	}
	m.labels = append(m.labels, label)
	m.reducers[label] = r
	return nil
}
