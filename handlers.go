package dfsm

import "github.com/enetx/g"

type edge struct{ from, to StateID }

// Handlers binds resident and transition functions to the states of a Model.
// Methods chain; the first binding error is kept and reported by Create.
type Handlers[P any] struct {
	model      *Model
	resident   g.Map[StateID, Handler[P]]
	transition g.Map[edge, Handler[P]]
	err        error
}

// NewHandlers returns an empty binding for model. Every legal transition defaults to Veto and
// every resident function defaults to a no-op.
func NewHandlers[P any](model *Model) *Handlers[P] {
	return &Handlers[P]{
		model:      model,
		resident:   g.NewMap[StateID, Handler[P]](),
		transition: g.NewMap[edge, Handler[P]](),
	}
}

// Resident binds the function that runs while the machine is in state.
func (h *Handlers[P]) Resident(state g.String, fn Handler[P]) *Handlers[P] {
	s, ok := h.lookup(state)
	if ok {
		h.resident.Set(s, fn)
	}

	return h
}

// Transition binds the function that decides the move from -> to. Binding a masked pair or a
// self transition is a configuration error.
func (h *Handlers[P]) Transition(from, to g.String, fn Handler[P]) *Handlers[P] {
	s, ok := h.lookup(from)
	if !ok {
		return h
	}

	d, ok := h.lookup(to)
	if !ok {
		return h
	}

	switch {
	case s == d:
		h.fail(configErr("transition "+string(from)+" -> "+string(to)+" is the resident function", nil))
	case !h.model.Legal(s, d):
		h.fail(configErr("transition "+string(from)+" -> "+string(to)+" is masked out", nil))
	default:
		h.transition.Set(edge{s, d}, fn)
	}

	return h
}

// TransitionAll binds fn to every legal transition that has no handler yet.
func (h *Handlers[P]) TransitionAll(fn Handler[P]) *Handlers[P] {
	n := StateID(h.model.NumStates())

	for s := range n {
		for d := range n {
			if s == d || !h.model.Legal(s, d) {
				continue
			}

			if !h.transition.Contains(edge{s, d}) {
				h.transition.Set(edge{s, d}, fn)
			}
		}
	}

	return h
}

// Err returns the first binding error.
func (h *Handlers[P]) Err() error { return h.err }

func (h *Handlers[P]) lookup(name g.String) (StateID, bool) {
	s, ok := h.model.State(name)
	if !ok {
		h.fail(configErr("handlers", &ErrUnknownState{State: name}))
	}

	return s, ok
}

func (h *Handlers[P]) fail(err error) {
	if h.err == nil {
		h.err = err
	}
}

func (h *Handlers[P]) residentFor(s StateID) Handler[P] {
	if fn := h.resident.Get(s).UnwrapOrDefault(); fn != nil {
		return fn
	}

	return idle[P]
}

func (h *Handlers[P]) transitionFor(s, d StateID) Handler[P] {
	if fn := h.transition.Get(edge{s, d}).UnwrapOrDefault(); fn != nil {
		return fn
	}

	return Veto[P]
}

// Accept is a transition handler that always advances.
func Accept[P any](m *Machine[P], _ *P) { m.Advance() }

// Veto is a transition handler that always retreats. It is the default for unbound transitions.
func Veto[P any](m *Machine[P], _ *P) { m.Retreat() }

func idle[P any](*Machine[P], *P) {}
