package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/enetx/dfsm"
	"github.com/enetx/g"
	"github.com/urfave/cli/v3"
)

const gotoPrefix = "goto:"

var simulateCmd = &cli.Command{
	Name:  "simulate",
	Usage: "Drive a machine through a sequence of events",
	Description: "Each EVENT is an input name, goto:STATE for a direct request, or idle for a cycle\n" +
		"without input. Every transition accepts unless listed with --veto FROM:TO.",
	ArgsUsage: "FILE [EVENT...]",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "veto",
			Usage: "Transition FROM:TO whose handler vetoes the move",
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		model, err := loadArg(cmd)
		if err != nil {
			return err
		}

		return simulate(cmd.Root().Writer, model, cmd.Args().Tail(), cmd.StringSlice("veto"), slog.Default())
	},
}

// session is the options payload of a simulated machine.
type session struct {
	entered []string
}

func simulate(w io.Writer, model *dfsm.Model, events, vetoes []string, logger *slog.Logger) error {
	h := dfsm.NewHandlers[session](model)

	for _, v := range vetoes {
		from, to, ok := strings.Cut(v, ":")
		if !ok {
			return fmt.Errorf("veto %q: expected FROM:TO", v)
		}

		h.Transition(g.String(from), g.String(to), dfsm.Veto[session])
	}

	h.TransitionAll(dfsm.Accept[session])

	for _, s := range model.States() {
		name := string(s)
		h.Resident(s, func(m *dfsm.Machine[session], opts *session) {
			if m.Check() == dfsm.Advance {
				opts.entered = append(opts.entered, name)
			}
		})
	}

	m, err := dfsm.Create(model, h, dfsm.WithLogger(logger))
	if err != nil {
		return err
	}
	defer dfsm.Free(m)

	opts := &session{}

	fmt.Fprintf(w, "start: %s\n", model.StateName(m.Current()))

	for i, event := range events {
		from := m.Current()

		var outcome dfsm.Check

		switch {
		case event == "idle":
			outcome = m.Run(opts)
		case strings.HasPrefix(event, gotoPrefix):
			to, ok := model.State(g.String(strings.TrimPrefix(event, gotoPrefix)))
			if !ok {
				return &dfsm.ErrUnknownState{State: g.String(strings.TrimPrefix(event, gotoPrefix))}
			}

			if outcome, err = m.Step(opts, to); err != nil {
				return err
			}
		default:
			in, ok := model.Input(g.String(event))
			if !ok {
				return &dfsm.ErrUnknownInput{Input: g.String(event)}
			}

			outcome = m.RunInput(opts, in)
		}

		fmt.Fprintf(w, "step %d: %-12s %s -> %s (%s)\n",
			i+1, event, model.StateName(from), model.StateName(m.Current()), outcome)
	}

	fmt.Fprintf(w, "entered: %s\n", strings.Join(opts.entered, " "))

	return nil
}
