// Package users is the user-list fetching machine: an INIT status waiting for
// a fetch request and an IN_PROGRESS status waiting for the response.
package users

import (
	"errors"
	"slices"

	"github.com/dmitrymomot/reducerkit/pkg/machine"
)

// Status is the closed set of statuses of the users machine.
type Status string

const (
	StatusInit       Status = "INIT"
	StatusInProgress Status = "IN_PROGRESS"
)

// ErrAlreadyFetching is returned when a fetch is requested while one is in flight.
var ErrAlreadyFetching = errors.New("users: fetch already in progress")

// State is the users machine state. A nil *State is the absent state.
type State struct {
	Status Status   `json:"status" yaml:"status"`
	Users  []string `json:"users" yaml:"users"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func (s *State) clone() *State {
	if s == nil {
		return &State{Status: StatusInit}
	}
	next := *s
	next.Users = slices.Clone(s.Users)
	return &next
}

// Label reads the status of s, reporting absent for nil states and empty statuses.
var Label = machine.Pointer(func(s *State) Status { return s.Status })

// ReduceInit handles states waiting for a fetch request.
func ReduceInit(state *State, event Event) (*State, error) {
	switch event.(type) {
	case FetchUsers:
		next := state.clone()
		next.Status = StatusInProgress
		next.Error = ""
		return next, nil
	default:
		if state == nil {
			return &State{Status: StatusInit}, nil
		}
		return state, nil
	}
}

// ReduceInProgress handles states waiting for a fetch result.
func ReduceInProgress(state *State, event Event) (*State, error) {
	switch e := event.(type) {
	case FetchUsersResponse:
		return &State{Status: StatusInit, Users: slices.Clone(e.Users)}, nil
	case FetchUsersFailure:
		next := state.clone()
		next.Status = StatusInit
		next.Error = e.Err
		return next, nil
	case FetchUsers:
		return nil, ErrAlreadyFetching
	default:
		return state, nil
	}
}

// Option configures the users machine.
type Option = machine.Option[Status, *State, Event]

// NewMachine composes the users machine. INIT is the initial status.
func NewMachine(opts ...Option) (*machine.Machine[Status, *State, Event], error) {
	base := []Option{
		machine.WithStatus(StatusInit, ReduceInit),
		machine.WithStatus(StatusInProgress, ReduceInProgress),
	}
	return machine.New(Label, append(base, opts...)...)
}

// Strict rejects states carrying statuses other than INIT and IN_PROGRESS.
func Strict() Option {
	return machine.WithStrict[Status, *State, Event]()
}

// OnFallback observes states routed to INIT because their status is unknown.
func OnFallback(hook func(label, initial Status)) Option {
	return machine.WithFallbackHook[Status, *State, Event](hook)
}
