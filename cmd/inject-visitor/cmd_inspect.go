package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"inject-visitor/internal/inspect"
)

func newInspectCmd(g *globalOptions) *cobra.Command {
	var (
		src    sourceOptions
		format string
	)

	cmd := &cobra.Command{
		Use:   "inspect [qualified-name...]",
		Short: "Report the elements of the named classes",
		Long: `Report names, kinds, annotations, generics and members of classes.

Without names every declaration of the loaded sources is inspected. Types
that cannot be modelled are marked with ~ and reported as infos; host
failures are reported as errors and make the command fail.

Examples:
  inject-visitor inspect --classpath app.yaml app.UserService
  inject-visitor inspect --packages ./examples/coffee --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, g, &src, format, args)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", inspect.FormatLine,
		"output format ("+strings.Join(inspect.Formats(), ", ")+")")

	return cmd
}

func runInspect(cmd *cobra.Command, g *globalOptions, src *sourceOptions, format string, args []string) error {
	s, err := openSession(g.cfg, src)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := s.inspector.Inspect(cmd.Context(), s.names(args))
	if err != nil {
		return err
	}

	if err := report.Write(cmd.OutOrStdout(), format); err != nil {
		return err
	}

	if report.Diagnostics.HasErrors() {
		return fmt.Errorf("inspection found %d errors", len(report.Diagnostics.Errors))
	}

	return nil
}
