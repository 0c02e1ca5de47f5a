// Package machine composes a single reducer from per-status reducers, letting
// you model a finite state machine whose current status lives inside the state
// value itself.
//
// A reducer is a function (state, event) -> (state, error). A Machine keeps a
// table of status label -> reducer and, for every event, reads the label out of
// the current state and hands the call to the matching reducer:
//  1. A state without a label (nil pointer, zero label) is routed to the
//     initial label.
//  2. A label with a registered reducer is routed to that reducer.
//  3. Any other label silently falls back to the initial label's reducer,
//     unless the machine is strict.
//
// The selected reducer's result and error are returned verbatim. Transitions
// are decided by your reducers (they return a state carrying a different
// label); the machine itself is only a router.
//
// # Architecture
//
// Machine is built once with the functional options pattern and is immutable
// afterwards. The first status registered with WithStatus is the initial
// label; WithInitial can designate another registered one. Reduce does one map
// lookup and one function call, holds no state between calls and is safe for
// concurrent use as long as your reducers are.
//
// # Usage
//
//	type Status string
//
//	const (
//	    Init       Status = "INIT"
//	    InProgress Status = "IN_PROGRESS"
//	)
//
//	type State struct {
//	    Status Status
//	    Users  []string
//	}
//
//	reduce := machine.MustCompose(
//	    machine.Pointer(func(s *State) Status { return s.Status }),
//	    machine.WithStatus(Init, reduceInit),
//	    machine.WithStatus(InProgress, reduceInProgress),
//	)
//
//	next, err := reduce(nil, FetchUsers{})
//
// Options that carry no state or reducer (WithInitial, WithStrict,
// WithFallbackHook) need explicit type arguments; the Builder avoids that:
//
//	m, err := machine.NewBuilder[Status, *State, Event](labelOf).
//	    On(Init, reduceInit).
//	    On(InProgress, reduceInProgress).
//	    Strict().
//	    Build()
//
// # Error Handling
//
// Construction fails fast: New returns ErrNoStatuses, ErrNilLabelFunc,
// ErrNilReducer, ErrDuplicateStatus or ErrUnknownInitial, and MustNew panics.
// At run time the machine raises no error of its own except in strict mode,
// where an unregistered label yields *ErrUnknownStatus:
//
//	if machine.IsUnknownStatusError(err) { /* ... */ }
//
// Errors and panics from your reducers pass through unchanged.
package machine
