package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "bottle-solver",
		Short:        "Solve liquid-sorting puzzles with the fewest pours",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(newSolveCmd(a), newLevelsCmd(a))

	return root
}
