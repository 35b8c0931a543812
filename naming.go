package dfsm

import "github.com/enetx/g"

// Names used by code emitters. They follow the C layout the tables were first generated for:
// handlers are <prefix>_<from>_<to>, enumerators E<PREFIX>_ST_<STATE>, E<PREFIX>_IN_<INPUT> and
// E<PREFIX>_TR_<CHECK>.

// HandlerName returns the emitted function name for the cell [s][d].
func (m *Model) HandlerName(prefix g.String, s, d StateID) g.String {
	return g.Format("{}_{}_{}", prefix.Lower(), m.StateName(s).Lower(), m.StateName(d).Lower())
}

// RunName returns the emitted name of the run function.
func (m *Model) RunName(prefix g.String) g.String {
	return g.Format("{}_run", prefix.Lower())
}

// StateEnumerators returns one enumerator per state followed by the state count enumerator.
func (m *Model) StateEnumerators(prefix g.String) g.Slice[g.String] {
	p := prefix.Upper()
	out := make(g.Slice[g.String], 0, len(m.states)+1)

	for _, s := range m.states {
		out.Push(g.Format("E{}_ST_{}", p, s.Upper()))
	}

	out.Push(g.Format("E{}_NUM_STATES", p))

	return out
}

// InputEnumerators returns one enumerator per input followed by the input count and the no-input
// sentinel. It is empty for models without inputs.
func (m *Model) InputEnumerators(prefix g.String) g.Slice[g.String] {
	if !m.Routed() {
		return nil
	}

	p := prefix.Upper()
	out := make(g.Slice[g.String], 0, len(m.inputs)+2)

	for _, in := range m.inputs {
		out.Push(g.Format("E{}_IN_{}", p, in.Upper()))
	}

	out.Push(g.Format("E{}_NUM_INPUTS", p), g.Format("E{}_IN_{}", p, NoInputName.Upper()))

	return out
}

// CheckEnumerators returns the enumerators of the outcome flag, in Check order.
func (m *Model) CheckEnumerators(prefix g.String) g.Slice[g.String] {
	p := prefix.Upper()
	out := g.Slice[g.String]{}

	for _, c := range []Check{Retreat, Advance, Continue, BadInput} {
		if c == BadInput && !m.Routed() {
			break
		}

		out.Push(g.Format("E{}_TR_{}", p, g.String(c.String()).Upper()))
	}

	return out
}
