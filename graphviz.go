package dfsm

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the model for visualization.
// Routed models draw one edge per explicit route labelled with its inputs; other models draw
// every legal transition, dashed for sources without a mask.
func (m *Model) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString(g.Format("digraph {} {\n", m.typ))
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", m.states[m.Initial()]))

	for s, name := range m.states {
		attrs := g.Slice[g.String]{g.Format("label=\"{}\"", name)}

		switch {
		case StateID(s) == m.Initial():
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case m.Masked(StateID(s)) && m.outDegree(StateID(s)) == 0:
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", name, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	n := StateID(len(m.states))

	for s := range n {
		for d := range n {
			if s == d || !m.Legal(s, d) {
				continue
			}

			var edge g.Slice[g.String]

			if m.Routed() {
				labels := m.routeLabels(s, d)
				if labels.Empty() {
					continue
				}

				edge.Push(g.Format("label=\" {} \"", labels.Join("\\n")))
			} else if !m.Masked(s) {
				edge.Push("style=dashed", "color=\"#999999\"")
			}

			b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", m.states[s], m.states[d], edge.Join(", ")))
		}
	}

	b.WriteString("}\n")

	return b.String()
}

func (m *Model) routeLabels(s, d StateID) g.Slice[g.String] {
	var labels g.Slice[g.String]

	for i, input := range m.inputs {
		if to, ok := m.routes[s].Get(InputID(i)).Option(); ok && to == d {
			labels.Push(input)
		}
	}

	return labels
}

func (m *Model) outDegree(s StateID) int {
	degree := 0

	for d := range StateID(len(m.states)) {
		if d != s && m.Legal(s, d) {
			degree++
		}
	}

	return degree
}
