package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reducerkit/internal/users"
)

var ErrEmptyScript = errors.New("script has no events")

// script is a recorded sequence of events replayed through the users machine.
type script struct {
	// Initial seeds the store; omitted means the absent state.
	Initial *users.State  `yaml:"initial"`
	Events  []scriptEvent `yaml:"events"`
}

type scriptEvent struct {
	Type  string   `yaml:"type"`
	Users []string `yaml:"users"`
	Error string   `yaml:"error"`
}

func decodeScript(r io.Reader) (*script, []users.Event, error) {
	var s script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrEmptyScript
		}
		return nil, nil, fmt.Errorf("decode script: %w", err)
	}
	if len(s.Events) == 0 {
		return nil, nil, ErrEmptyScript
	}

	events := make([]users.Event, 0, len(s.Events))
	for i, e := range s.Events {
		ev, err := users.ParseEvent(e.Type, e.Users, e.Error)
		if err != nil {
			return nil, nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		events = append(events, ev)
	}
	return &s, events, nil
}

func loadScript(path string) (*script, []users.Event, error) {
	if path == "" {
		return decodeScript(bytes.NewReader(defaultScript))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return decodeScript(f)
}
