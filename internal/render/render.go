// Package render draws models and machine tables for the terminal.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/enetx/dfsm"
	"github.com/enetx/g"
)

// Cell markers.
const (
	Resident  = "resident"
	Forbidden = "·"
	Rejected  = "(reject)"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	residentStyle  = cellStyle.Foreground(lipgloss.Color("45"))
	forbiddenStyle = cellStyle.Foreground(lipgloss.Color("240"))
	rootStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer renders with or without terminal styling.
type Printer struct {
	Prefix g.String
	Plain  bool
}

// Dispatch renders a dispatch table as a State x State grid. Legal cells show the emitted handler
// name, the diagonal shows the resident marker and illegal cells the forbidden marker.
func Dispatch[P any](p Printer, model *dfsm.Model, dispatch dfsm.DispatchTable[P]) string {
	states := model.States()

	headers := []string{"from \\ to"}
	for _, s := range states {
		headers = append(headers, string(s))
	}

	rows := make([][]string, 0, len(states))
	for s := range dispatch {
		row := []string{string(states[s])}

		for d := range dispatch[s] {
			src, dst := dfsm.StateID(s), dfsm.StateID(d)

			switch {
			case src == dst:
				row = append(row, Resident)
			case dispatch.Legal(src, dst):
				row = append(row, string(model.HandlerName(p.Prefix, src, dst)))
			default:
				row = append(row, Forbidden)
			}
		}

		rows = append(rows, row)
	}

	return p.table(headers, rows)
}

// Routing renders a routing table as a State x Input grid of destinations.
func Routing(p Printer, model *dfsm.Model, routes dfsm.RoutingTable) string {
	if routes == nil {
		return ""
	}

	headers := []string{"state \\ input"}
	for _, in := range model.Inputs() {
		headers = append(headers, string(in))
	}

	rows := make([][]string, 0, len(routes))
	for s := range routes {
		row := []string{string(model.StateName(dfsm.StateID(s)))}

		for _, to := range routes[s] {
			if to == dfsm.StateID(s) {
				row = append(row, Rejected)
				continue
			}

			row = append(row, string(model.StateName(to)))
		}

		rows = append(rows, row)
	}

	return p.table(headers, rows)
}

// Summary renders the model as a tree.
func Summary(p Printer, model *dfsm.Model) string {
	root := string(model.Type())
	if !p.Plain {
		root = rootStyle.Render(root)
	}

	t := tree.New().Root(root)
	if !p.Plain {
		t.EnumeratorStyle(branchStyle)
	}

	opts := model.Options()
	t.Child(fmt.Sprintf("options: %s *%s", string(opts.Type), string(opts.Name)))

	states := tree.New().Root(fmt.Sprintf("states (%d)", model.NumStates()))
	for i, s := range model.States() {
		label := string(s)
		if dfsm.StateID(i) == model.Initial() {
			label += " [initial]"
		}

		if model.Masked(dfsm.StateID(i)) {
			label += " [masked]"
		}

		states.Child(label)
	}

	t.Child(states)

	if model.Routed() {
		inputs := tree.New().Root(fmt.Sprintf("inputs (%d)", model.NumInputs()))
		for _, in := range model.Inputs() {
			inputs.Child(string(in))
		}

		t.Child(inputs)
	}

	return t.String()
}

func (p Printer) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if !p.Plain {
		t.BorderStyle(branchStyle).StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}

			switch rows[row][col] {
			case Resident:
				return residentStyle
			case Forbidden, Rejected:
				return forbiddenStyle
			default:
				return cellStyle
			}
		})
	}

	return t.String()
}
