package users

import (
	"fmt"
)

// Event types as they appear in scripts and logs.
const (
	TypeFetchUsers         = "FETCH_USERS"
	TypeFetchUsersResponse = "FETCH_USERS_RESPONSE"
	TypeFetchUsersFailure  = "FETCH_USERS_FAILURE"
)

// Event is the closed set of events understood by the users machine.
type Event interface {
	Type() string
	isEvent()
}

// FetchUsers requests a fresh users list.
type FetchUsers struct{}

// FetchUsersResponse delivers a fetched users list.
type FetchUsersResponse struct {
	Users []string
}

// FetchUsersFailure reports that fetching failed.
type FetchUsersFailure struct {
	Err string
}

func (FetchUsers) Type() string { return TypeFetchUsers }
func (FetchUsersResponse) Type() string { return TypeFetchUsersResponse }
func (FetchUsersFailure) Type() string { return TypeFetchUsersFailure }

func (FetchUsers) isEvent() {}
func (FetchUsersResponse) isEvent() {}
func (FetchUsersFailure) isEvent() {}

// ParseEvent builds an event from its wire type and payload fields.
func ParseEvent(typ string, users []string, errMsg string) (Event, error) {
	switch typ {
	case TypeFetchUsers:
		return FetchUsers{}, nil
	case TypeFetchUsersResponse:
		return FetchUsersResponse{Users: users}, nil
	case TypeFetchUsersFailure:
		return FetchUsersFailure{Err: errMsg}, nil
	default:
		return nil, fmt.Errorf("users: unknown event type %q", typ)
	}
}
