package dfsm

import "github.com/enetx/g"

type StateMachine[P any] interface {
	Run(opts *P) Check
	RunInput(opts *P, in InputID) Check
	RunName(opts *P, name g.String) Check
	Request(to StateID) error
	Step(opts *P, to StateID) (Check, error)
	Current() StateID
	Last() Check
	SetState(s StateID) error
	Reset()
	History() g.Slice[StateID]
	Model() *Model
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Interface compliance checks.
var (
	_ StateMachine[struct{}] = (*Machine[struct{}])(nil)
	_ StateMachine[struct{}] = (*SyncMachine[struct{}])(nil)
)
