package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/enetx/dfsm/internal/config"
	"github.com/enetx/dfsm/internal/logging"
	"github.com/urfave/cli/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newApp(cfg, os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(cfg config.Config, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "dfsm",
		Version:   Version,
		Usage:     "Validate, inspect and simulate table-driven state machines",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (trace, debug, info, warn, error)",
				Value: cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json)",
				Value: cfg.LogFormat,
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable styled table output",
				Value: cfg.NoColor,
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Prefix used for emitted handler names",
				Value: cfg.Prefix,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			handler, err := logging.NewHandler(cmd.String("log-format"), cmd.String("log-level"), stderr)
			if err != nil {
				return ctx, err
			}

			slog.SetDefault(slog.New(handler))

			return ctx, nil
		},
		Commands: []*cli.Command{
			versionCmd,
			validateCmd,
			tablesCmd,
			dotCmd,
			simulateCmd,
		},
	}
}
