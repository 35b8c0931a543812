package dfsm

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/enetx/g"
)

type (
	// StateID is the dense index of a declared state. The first declared state is 0, the initial state.
	StateID int
	// InputID is the dense index of a declared input.
	InputID int

	// Check is the outcome flag of a run cycle.
	Check int

	// Handler is a resident or transition function. Transition handlers decide the move by calling
	// Advance or Retreat on the machine; resident handlers inspect Check to learn why they run.
	Handler[P any] func(m *Machine[P], opts *P)

	// Options names the payload threaded through every handler call.
	Options struct {
		Type g.String
		Name g.String
	}

	// Machine is a running FSM instance. It owns its dispatch and routing tables exclusively.
	Machine[P any] struct {
		model *Model

		input InputID
		check Check
		cur   StateID
		cmd   StateID
		last  Check

		dispatch DispatchTable[P]
		routes   RoutingTable

		history  g.Slice[StateID]
		running  bool
		alloc    Allocator
		logger   *slog.Logger
		onChange func(from, to StateID)
	}

	// SyncMachine is a thread-safe wrapper around a Machine.
	// It serializes every run cycle and every read with a sync.RWMutex.
	SyncMachine[P any] struct {
		m  *Machine[P]
		mu sync.RWMutex
	}
)

// NoInput marks the absence of a pending input.
const NoInput InputID = -1

const (
	// Retreat means the requested move was rejected.
	Retreat Check = iota
	// Advance means the requested move was accepted.
	Advance
	// Continue means no move is in progress.
	Continue
	// BadInput means the input did not license any state change.
	BadInput
)

func (c Check) String() string {
	switch c {
	case Retreat:
		return "retreat"
	case Advance:
		return "advance"
	case Continue:
		return "continue"
	case BadInput:
		return "badinput"
	default:
		return fmt.Sprintf("check(%d)", int(c))
	}
}

const (
	defaultType        g.String = "Fsm"
	defaultOptionsType g.String = "FsmOpts"
	defaultOptionsName g.String = "fopts"
)
