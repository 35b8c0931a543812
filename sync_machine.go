package dfsm

import "github.com/enetx/g"

// Sync wraps the machine for use across goroutines. The machine must not be used directly afterwards.
func (m *Machine[P]) Sync() *SyncMachine[P] { return &SyncMachine[P]{m: m} }

// Run is the thread-safe version of Machine.Run.
// Cycles on the same machine never overlap.
func (sm *SyncMachine[P]) Run(opts *P) Check {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.Run(opts)
}

// RunInput is the thread-safe version of Machine.RunInput.
func (sm *SyncMachine[P]) RunInput(opts *P, in InputID) Check {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.RunInput(opts, in)
}

// RunName is the thread-safe version of Machine.RunName.
func (sm *SyncMachine[P]) RunName(opts *P, name g.String) Check {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.RunName(opts, name)
}

// Request is the thread-safe version of Machine.Request.
// The request and the next Run are separate critical sections; use Step to make them atomic.
func (sm *SyncMachine[P]) Request(to StateID) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.Request(to)
}

// Step is the thread-safe version of Machine.Step.
// It requests the target and runs the cycle under one lock.
func (sm *SyncMachine[P]) Step(opts *P, to StateID) (Check, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.Step(opts, to)
}

// Current is the thread-safe version of Machine.Current.
func (sm *SyncMachine[P]) Current() StateID {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Current()
}

// Last is the thread-safe version of Machine.Last.
func (sm *SyncMachine[P]) Last() Check {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Last()
}

// SetState is the thread-safe version of Machine.SetState.
// WARNING: it bypasses every handler. Use it for restoring state, not for normal operation.
func (sm *SyncMachine[P]) SetState(s StateID) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.SetState(s)
}

// Reset is the thread-safe version of Machine.Reset.
func (sm *SyncMachine[P]) Reset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.m.Reset()
}

// History is the thread-safe version of Machine.History.
func (sm *SyncMachine[P]) History() g.Slice[StateID] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.History()
}

// Model returns the immutable model; it needs no lock.
func (sm *SyncMachine[P]) Model() *Model { return sm.m.Model() }

// Free releases the wrapped machine's tables.
func (sm *SyncMachine[P]) Free() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	Free(sm.m)
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the machine's position.
func (sm *SyncMachine[P]) MarshalJSON() ([]byte, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// restoration of the machine's position.
func (sm *SyncMachine[P]) UnmarshalJSON(data []byte) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.UnmarshalJSON(data)
}
