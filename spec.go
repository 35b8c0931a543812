package dfsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// NoInputName is the reserved name of the no-input sentinel. No declared input may use it.
const NoInputName g.String = "none"

// Spec is the declarative description of a machine, as written by the user.
//
// States lists the states in order; the first one is initial. Inputs is optional and switches the
// machine to input-routed dispatch. Mask restricts, per source state, which destinations are legal;
// a source missing from Mask may reach every state. Routes maps state -> input -> destination;
// unrouted pairs route back to the source, which the engine reports as BadInput.
type Spec struct {
	Type    g.String
	States  g.Slice[g.String]
	Inputs  g.Slice[g.String]
	Mask    g.Map[g.String, g.Slice[g.String]]
	Routes  g.Map[g.String, g.Map[g.String, g.String]]
	Options Options
}

// Model is a validated, normalized and immutable Spec.
type Model struct {
	typ     g.String
	options Options

	states g.Slice[g.String]
	inputs g.Slice[g.String]

	stateIndex g.Map[g.String, StateID]
	inputIndex g.Map[g.String, InputID]

	// mask holds one legality row per masked source; unmasked sources are fully connected.
	mask g.Map[StateID, []bool]
	// routes holds only the explicitly routed pairs.
	routes g.Map[StateID, g.Map[InputID, StateID]]
}

// Build validates spec and returns its normalized Model. All failures are *ErrConfig.
func Build(spec Spec) (*Model, error) {
	m := &Model{
		typ:        spec.Type,
		options:    spec.Options,
		states:     spec.States.Clone(),
		inputs:     spec.Inputs.Clone(),
		stateIndex: g.NewMap[g.String, StateID](g.Int(len(spec.States))),
		inputIndex: g.NewMap[g.String, InputID](g.Int(len(spec.Inputs))),
		mask:       g.NewMap[StateID, []bool](g.Int(len(spec.Mask))),
		routes:     g.NewMap[StateID, g.Map[InputID, StateID]](g.Int(len(spec.Routes))),
	}

	if m.typ.Empty() {
		m.typ = defaultType
	}

	if m.options.Type.Empty() {
		m.options.Type = defaultOptionsType
	}

	if m.options.Name.Empty() {
		m.options.Name = defaultOptionsName
	}

	if len(m.states) == 0 {
		return nil, configErr("states", ErrEmptyStates)
	}

	for i, name := range m.states {
		if name.Empty() {
			return nil, configErr("states", ErrEmptyName)
		}

		if m.stateIndex.Contains(name) {
			return nil, configErr("states", &ErrDuplicate{Kind: "state", Name: name})
		}

		m.stateIndex.Set(name, StateID(i))
	}

	for i, name := range m.inputs {
		if name.Empty() {
			return nil, configErr("inputs", ErrEmptyName)
		}

		if name.Lower() == NoInputName {
			return nil, configErr("inputs", ErrReservedInput)
		}

		if m.inputIndex.Contains(name) {
			return nil, configErr("inputs", &ErrDuplicate{Kind: "input", Name: name})
		}

		m.inputIndex.Set(name, InputID(i))
	}

	for _, from := range sortedKeys(spec.Mask) {
		src, ok := m.stateIndex.Get(from).Option()
		if !ok {
			return nil, configErr("transition mask", &ErrUnknownState{State: from})
		}

		row := make([]bool, len(m.states))
		row[src] = true

		for _, to := range spec.Mask[from] {
			dst, ok := m.stateIndex.Get(to).Option()
			if !ok {
				return nil, configErr("transition mask", &ErrUnknownState{State: to})
			}

			row[dst] = true
		}

		m.mask.Set(src, row)
	}

	if spec.Routes.NotEmpty() && len(m.inputs) == 0 {
		return nil, configErr("routes", &ErrUnknownInput{Input: firstInput(spec.Routes)})
	}

	for _, from := range sortedKeys(spec.Routes) {
		src, ok := m.stateIndex.Get(from).Option()
		if !ok {
			return nil, configErr("routes", &ErrUnknownState{State: from})
		}

		byInput := spec.Routes[from]
		routed := g.NewMap[InputID, StateID](g.Int(len(byInput)))

		for _, input := range sortedKeys(byInput) {
			in, ok := m.inputIndex.Get(input).Option()
			if !ok {
				return nil, configErr("routes", &ErrUnknownInput{Input: input})
			}

			to := byInput[input]

			dst, ok := m.stateIndex.Get(to).Option()
			if !ok {
				return nil, configErr("routes", &ErrUnknownState{State: to})
			}

			if !m.Legal(src, dst) {
				return nil, configErr("routes", &ErrIllegalRoute{From: from, Input: input, To: to})
			}

			routed.Set(in, dst)
		}

		m.routes.Set(src, routed)
	}

	return m, nil
}

func firstInput(routes g.Map[g.String, g.Map[g.String, g.String]]) g.String {
	for _, from := range sortedKeys(routes) {
		if inputs := sortedKeys(routes[from]); !inputs.Empty() {
			return inputs[0]
		}
	}

	return NoInputName
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m g.Map[g.String, V]) g.Slice[g.String] {
	keys := m.Keys()
	keys.SortBy(cmp.Cmp)

	return keys
}

// Type returns the machine type name.
func (m *Model) Type() g.String { return m.typ }

// Options returns the payload type and parameter names.
func (m *Model) Options() Options { return m.options }

// States returns a copy of the declared state names, in order.
func (m *Model) States() g.Slice[g.String] { return m.states.Clone() }

// Inputs returns a copy of the declared input names, in order.
func (m *Model) Inputs() g.Slice[g.String] { return m.inputs.Clone() }

// NumStates returns the number of declared states.
func (m *Model) NumStates() int { return len(m.states) }

// NumInputs returns the number of declared inputs.
func (m *Model) NumInputs() int { return len(m.inputs) }

// Routed reports whether the model declares an input alphabet.
func (m *Model) Routed() bool { return len(m.inputs) != 0 }

// Initial returns the initial state, which is always the first declared one.
func (m *Model) Initial() StateID { return 0 }

// State looks up a state by name.
func (m *Model) State(name g.String) (StateID, bool) {
	return m.stateIndex.Get(name).Option()
}

// Input looks up an input by name.
func (m *Model) Input(name g.String) (InputID, bool) {
	return m.inputIndex.Get(name).Option()
}

// StateName returns the name of s, or an empty string when s is out of range.
func (m *Model) StateName(s StateID) g.String {
	if !m.validState(s) {
		return ""
	}

	return m.states[s]
}

// InputName returns the name of in. NoInput maps to NoInputName.
func (m *Model) InputName(in InputID) g.String {
	if in == NoInput || !m.validInput(in) {
		return NoInputName
	}

	return m.inputs[in]
}

// Masked reports whether s has an explicit legality mask.
func (m *Model) Masked(s StateID) bool {
	return m.mask.Contains(s)
}

// Legal reports whether the transition s -> d is allowed. Self transitions always are.
func (m *Model) Legal(s, d StateID) bool {
	if !m.validState(s) || !m.validState(d) {
		return false
	}

	if s == d {
		return true
	}

	row, ok := m.mask.Get(s).Option()

	return !ok || row[d]
}

// Route returns the destination for input in at state s. Unrouted pairs return s.
func (m *Model) Route(s StateID, in InputID) StateID {
	if to, ok := m.routes[s].Get(in).Option(); ok {
		return to
	}

	return s
}

// Explicit reports whether the pair (s, in) has a declared route.
func (m *Model) Explicit(s StateID, in InputID) bool {
	return m.routes[s].Contains(in)
}

func (m *Model) validState(s StateID) bool { return s >= 0 && int(s) < len(m.states) }

func (m *Model) validInput(in InputID) bool { return in >= 0 && int(in) < len(m.inputs) }
