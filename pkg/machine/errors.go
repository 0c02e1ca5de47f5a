package machine

import (
	"errors"
	"fmt"
)

var (
	ErrNoStatuses      = errors.New("machine: at least one status must be registered")
	ErrNilLabelFunc    = errors.New("machine: label func cannot be nil")
	ErrNilReducer      = errors.New("machine: reducer cannot be nil")
	ErrDuplicateStatus = errors.New("machine: status already registered")
	ErrUnknownInitial  = errors.New("machine: initial status is not registered")
	ErrZeroLabel       = errors.New("machine: zero label reads as absent and cannot be registered")
)

// ErrUnknownStatus is returned by strict machines for states whose label has no registered reducer.
type ErrUnknownStatus struct {
	Status string
}

func (e *ErrUnknownStatus) Error() string {
	return fmt.Sprintf("machine: no reducer registered for status '%s'", e.Status)
}

func NewErrUnknownStatus(status string) *ErrUnknownStatus {
	return &ErrUnknownStatus{Status: status}
}

func IsUnknownStatusError(err error) bool {
	var e *ErrUnknownStatus
	return errors.As(err, &e)
}
