package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var dotCmd = &cli.Command{
	Name:      "dot",
	Usage:     "Print a Graphviz rendering of a machine",
	ArgsUsage: "FILE",
	Action: func(_ context.Context, cmd *cli.Command) error {
		model, err := loadArg(cmd)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.Root().Writer, string(model.ToDOT()))

		return nil
	},
}
