package main

import (
	"context"
	"fmt"

	"github.com/enetx/dfsm"
	"github.com/enetx/dfsm/internal/render"
	"github.com/urfave/cli/v3"
)

var tablesCmd = &cli.Command{
	Name:      "tables",
	Usage:     "Print the dispatch and routing tables of a machine",
	ArgsUsage: "FILE",
	Action:    tablesAction,
}

func tablesAction(_ context.Context, cmd *cli.Command) error {
	model, err := loadArg(cmd)
	if err != nil {
		return err
	}

	m, err := dfsm.Create[struct{}](model, nil)
	if err != nil {
		return err
	}
	defer dfsm.Free(m)

	w := cmd.Root().Writer
	p := printer(cmd)

	fmt.Fprintln(w, "dispatch:")
	fmt.Fprintln(w, render.Dispatch(p, model, m.Dispatch()))

	if routes := m.Routing(); routes != nil {
		fmt.Fprintln(w, "routing:")
		fmt.Fprintln(w, render.Routing(p, model, routes))
	}

	return nil
}
