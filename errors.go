package dfsm

import (
	"errors"
	"fmt"

	"github.com/enetx/g"
)

var (
	// ErrEmptyStates is wrapped by ErrConfig when a spec declares no states.
	ErrEmptyStates = errors.New("dfsm: state list is empty")
	// ErrEmptyName is wrapped by ErrConfig when a state or input is declared with an empty name.
	ErrEmptyName = errors.New("dfsm: empty name")
	// ErrReservedInput is wrapped by ErrConfig when an input uses the reserved no-input name.
	ErrReservedInput = errors.New("dfsm: input name is reserved")
	// ErrReentrant is returned when a machine is asked to start a request while a run cycle is in progress.
	ErrReentrant = errors.New("dfsm: run cycle in progress")
)

// ErrConfig is returned when a spec or a handler binding is malformed.
// The caller fixes the description and builds again.
type ErrConfig struct {
	Reason string
	Err    error
}

func (e *ErrConfig) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("dfsm: invalid config: %s", e.Reason)
	}

	return fmt.Sprintf("dfsm: invalid config: %s: %v", e.Reason, e.Err)
}

func (e *ErrConfig) Unwrap() error { return e.Err }

// ErrDuplicate reports a name declared twice.
type ErrDuplicate struct {
	// Kind is "state" or "input".
	Kind string
	Name g.String
}

func (e *ErrDuplicate) Error() string {
	return fmt.Sprintf("dfsm: duplicate %s %q", e.Kind, e.Name)
}

// ErrUnknownState is returned when a mask, route, handler binding or snapshot names a state
// that is not declared.
type ErrUnknownState struct {
	State g.String
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("dfsm: unknown state %q", e.State)
}

// ErrUnknownInput is returned when a route names an input that is not declared.
type ErrUnknownInput struct {
	Input g.String
}

func (e *ErrUnknownInput) Error() string {
	return fmt.Sprintf("dfsm: unknown input %q", e.Input)
}

// ErrIllegalRoute is returned when a route targets a destination its source's mask forbids.
type ErrIllegalRoute struct {
	From  g.String
	Input g.String
	To    g.String
}

func (e *ErrIllegalRoute) Error() string {
	return fmt.Sprintf("dfsm: route %q --(%s)--> %q is masked out", e.From, e.Input, e.To)
}

// ErrAllocation is returned by Create when the allocator refuses a table.
// Everything acquired before the failure has already been released.
type ErrAllocation struct {
	Table string
	Row   int
	Err   error
}

func (e *ErrAllocation) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("dfsm: cannot allocate %s table: %v", e.Table, e.Err)
	}

	return fmt.Sprintf("dfsm: cannot allocate %s table row %d: %v", e.Table, e.Row, e.Err)
}

func (e *ErrAllocation) Unwrap() error { return e.Err }

// ErrInternal reports an out-of-range index while building tables. It indicates a bug, not bad input.
type ErrInternal struct {
	Op  string
	Row int
	Col int
}

func (e *ErrInternal) Error() string {
	return fmt.Sprintf("dfsm: internal error in %s: index [%d][%d] out of range", e.Op, e.Row, e.Col)
}

func configErr(reason string, err error) error {
	return &ErrConfig{Reason: reason, Err: err}
}
