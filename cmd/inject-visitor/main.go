// Package main provides the CLI entrypoint for inject-visitor.
//
// inject-visitor models the classes of a program the way an injection
// framework's compile-time visitor sees them:
//   - Loads Go packages (go/types) or YAML class manifests
//   - Maps raw types to class elements, void, or nothing
//   - Reports names, annotations, members and assignability
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"inject-visitor/internal/config"
)

// globalOptions are the root flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    int
	logFile    string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "inject-visitor",
		Short:        "Model classes the way an injection visitor sees them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "configuration file (YAML)")
	rootCmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newInspectCmd(g))
	rootCmd.AddCommand(newAssignableCmd(g))

	return rootCmd
}

// load reads the configuration, applies flag overrides and configures
// logging.
func (g *globalOptions) load() error {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(g.configPath); err != nil {
			return err
		}
	}

	if g.verbose > 0 {
		cfg.Verbosity = g.verbose
	}
	if g.logFile != "" {
		cfg.LogFile = g.logFile
	}

	var path *string
	if cfg.LogFile != "" {
		path = &cfg.LogFile
	}
	commonlog.Configure(cfg.Verbosity, path)

	g.cfg = cfg

	return nil
}
