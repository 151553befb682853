package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logdot/bottle-solver/level"
)

func newLevelsCmd(a *app) *cobra.Command {
	var show string
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the built-in levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if show == "" {
				for _, name := range level.Builtins() {
					fmt.Fprintln(w, name)
				}
				return nil
			}

			l, err := level.Builtin(show)
			if err != nil {
				return err
			}
			g, err := l.Game()
			if err != nil {
				return err
			}
			a.logger.Debug("showing level", "level", l.Name, "bottles", len(g))
			return level.Encode(w, level.FromGame(l.Name, g))
		},
	}
	cmd.Flags().StringVar(&show, "show", "", "print the YAML of one built-in level")

	return cmd
}
