package dfsm

import (
	"encoding/json"
	"fmt"

	"github.com/enetx/g"
)

// Snapshot is a serializable representation of a machine's position, by state name.
type Snapshot struct {
	Current g.String          `json:"current"`
	History g.Slice[g.String] `json:"history"`
}

// Snapshot captures the machine's settled state and history.
func (m *Machine[P]) Snapshot() Snapshot {
	history := make(g.Slice[g.String], 0, len(m.history))
	for _, s := range m.history {
		history.Push(m.model.StateName(s))
	}

	return Snapshot{Current: m.model.StateName(m.cur), History: history}
}

// Restore moves the machine to the position recorded in snap without running any handler.
func (m *Machine[P]) Restore(snap Snapshot) error {
	if m.running {
		return ErrReentrant
	}

	cur, ok := m.model.State(snap.Current)
	if !ok {
		return &ErrUnknownState{State: snap.Current}
	}

	history := make(g.Slice[StateID], 0, len(snap.History))
	for _, name := range snap.History {
		s, ok := m.model.State(name)
		if !ok {
			return &ErrUnknownState{State: name}
		}

		history.Push(s)
	}

	if len(history) == 0 {
		history.Push(cur)
	}

	m.cur = cur
	m.cmd = cur
	m.input = NoInput
	m.check = Continue
	m.last = Continue
	m.history = history

	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (m *Machine[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Snapshot())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Machine[P]) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal dfsm snapshot: %w", err)
	}

	return m.Restore(snap)
}
