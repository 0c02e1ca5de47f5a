package machine

import (
	"fmt"
)

// Option configures a machine during construction.
type Option[L comparable, S, E any] func(*settings[L, S, E]) error

// StatusDef pairs a status label with the reducer handling it.
type StatusDef[L comparable, S, E any] struct {
	Label   L
	Reducer Reducer[S, E]
}

type settings[L comparable, S, E any] struct {
	machine    *Machine[L, S, E]
	initial    L
	hasInitial bool
}

// New creates a machine reading status labels with label and routing them to
// the reducers registered through opts. The first registered status becomes
// the initial label unless WithInitial designates another one.
// No reducer is called during construction.
func New[L comparable, S, E any](label LabelFunc[S, L], opts ...Option[L, S, E]) (*Machine[L, S, E], error) {
	if label == nil {
		return nil, ErrNilLabelFunc
	}

	cfg := &settings[L, S, E]{
		machine: &Machine[L, S, E]{
			label:    label,
			reducers: make(map[L]Reducer[S, E]),
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	m := cfg.machine
	if len(m.labels) == 0 {
		return nil, ErrNoStatuses
	}

	if cfg.hasInitial {
		if _, ok := m.reducers[cfg.initial]; !ok {
			return nil, fmt.Errorf("initial status %v: %w", cfg.initial, ErrUnknownInitial)
		}
		m.initial = cfg.initial
	}

	return m, nil
}

// MustNew works like New but panics if the machine cannot be built.
func MustNew[L comparable, S, E any](label LabelFunc[S, L], opts ...Option[L, S, E]) *Machine[L, S, E] {
	m, err := New(label, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create machine: %v", err))
	}
	return m
}

// Compose builds a machine and returns its composite reducer.
func Compose[L comparable, S, E any](label LabelFunc[S, L], opts ...Option[L, S, E]) (Reducer[S, E], error) {
	m, err := New(label, opts...)
	if err != nil {
		return nil, err
	}
	return m.Reduce, nil
}

// MustCompose works like Compose but panics on configuration errors.
func MustCompose[L comparable, S, E any](label LabelFunc[S, L], opts ...Option[L, S, E]) Reducer[S, E] {
	return MustNew(label, opts...).Reduce
}

// WithStatus registers the reducer handling states labelled with label.
// The zero label is rejected with ErrZeroLabel: Field and Pointer read it as
// an absent status, so its reducer could never be reached.
func WithStatus[L comparable, S, E any](label L, r Reducer[S, E]) Option[L, S, E] {
	return func(cfg *settings[L, S, E]) error {
		return cfg.machine.addStatus(label, r)
	}
}

// WithStatuses registers several statuses at once, in slice order.
func WithStatuses[L comparable, S, E any](defs []StatusDef[L, S, E]) Option[L, S, E] {
	return func(cfg *settings[L, S, E]) error {
		for i, d := range defs {
			if err := cfg.machine.addStatus(d.Label, d.Reducer); err != nil {
				return fmt.Errorf("failed to add status[%d]: %w", i, err)
			}
		}
		return nil
	}
}

// WithInitial designates the fallback label explicitly.
// The label must be registered by the time construction finishes.
func WithInitial[L comparable, S, E any](label L) Option[L, S, E] {
	return func(cfg *settings[L, S, E]) error {
		cfg.initial = label
		cfg.hasInitial = true
		return nil
	}
}

// WithStrict makes Reduce reject states whose label is not registered
// with an *ErrUnknownStatus instead of routing them to the initial reducer.
func WithStrict[L comparable, S, E any]() Option[L, S, E] {
	return func(cfg *settings[L, S, E]) error {
		cfg.machine.strict = true
		return nil
	}
}

// WithFallbackHook registers a callback invoked on every lenient fallback.
// Nil hooks are ignored.
func WithFallbackHook[L comparable, S, E any](hook FallbackHook[L]) Option[L, S, E] {
	return func(cfg *settings[L, S, E]) error {
		if hook != nil {
			cfg.machine.onFallback = hook
		}
		return nil
	}
}
