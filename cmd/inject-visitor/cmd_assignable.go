package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAssignableCmd(g *globalOptions) *cobra.Command {
	var src sourceOptions

	cmd := &cobra.Command{
		Use:   "assignable <type> <target>",
		Short: "Print whether a class is assignable to a type after erasure",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g.cfg, &src)
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := s.inspector.Assignable(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ok)

			return nil
		},
	}

	src.register(cmd)

	return cmd
}
