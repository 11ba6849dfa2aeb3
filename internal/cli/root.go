// Package cli implements the reqtrace inspection CLI.
//
// The CLI is glue over the engine library: it opens the project named by
// the configuration file and runs one query or mutation per invocation.
// The traceability UI proper is a separate consumer; nothing here is part
// of the engine contract.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/reqtrace/internal/config"
	"github.com/roach88/reqtrace/internal/project"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config  string
	Verbose bool
}

// NewRootCommand creates the root command for the reqtrace CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "reqtrace",
		Short:         "ReqTrace - requirements traceability on plain text",
		Long:          "Inspect and maintain a ReqTrace project: versioned artifacts and the traceability graph between them.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.Config, "config", config.DefaultFileName, "path to the project configuration")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewRecalcCommand(opts))

	return cmd
}

// openProject loads the configuration and opens the project it names.
// Callers must Close the returned project.
func openProject(opts *RootOptions) (*project.Project, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	p, err := project.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open project %q: %w", cfg.Project.Name, err)
	}
	return p, nil
}
