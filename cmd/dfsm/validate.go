package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/enetx/dfsm"
	"github.com/enetx/dfsm/internal/render"
	"github.com/enetx/dfsm/internal/specfile"
	"github.com/enetx/g"
	"github.com/urfave/cli/v3"
)

var errNoFile = errors.New("machine description path required")

var validateCmd = &cli.Command{
	Name:      "validate",
	Aliases:   []string{"lint"},
	Usage:     "Validate machine description files",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show a tree view of each valid model",
		},
	},
	Action: validateAction,
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errNoFile
	}

	w := cmd.Root().Writer
	p := printer(cmd)

	var failed int

	for _, path := range paths {
		model, err := specfile.LoadModel(path)
		if err != nil {
			failed++
			slog.Debug("validation failed", "path", path, "error", err)
			fmt.Fprintf(w, "%s: invalid: %v\n", path, err)

			continue
		}

		fmt.Fprintf(w, "%s: valid (%d states, %d inputs)\n", path, model.NumStates(), model.NumInputs())

		if cmd.Bool("tree") {
			fmt.Fprintln(w, render.Summary(p, model))
		}
	}

	if failed != 0 {
		return fmt.Errorf("%d of %d machine descriptions are invalid", failed, len(paths))
	}

	return nil
}

func loadArg(cmd *cli.Command) (*dfsm.Model, error) {
	if cmd.Args().Len() < 1 {
		return nil, errNoFile
	}

	path := cmd.Args().Get(0)

	model, err := specfile.LoadModel(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return model, nil
}

func printer(cmd *cli.Command) render.Printer {
	return render.Printer{
		Prefix: g.String(cmd.Root().String("prefix")),
		Plain:  cmd.Root().Bool("no-color"),
	}
}
