package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/reqtrace/internal/config"
	"github.com/roach88/reqtrace/internal/project"
)

// NewInitCommand creates the init command: write a default configuration
// (unless one exists) and create the project's storage folders.
func NewInitCommand(opts *RootOptions) *cobra.Command {
	var (
		name    string
		backend string
		path    string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default(path)
			cfg.Project.Name = name
			cfg.Storage.Backend = backend
			if err := cfg.Validate(); err != nil {
				return err
			}
			if _, err := os.Stat(opts.Config); err == nil {
				return fmt.Errorf("config %s already exists", opts.Config)
			}

			p, err := project.Open(cfg)
			if err != nil {
				return err
			}
			defer p.Close()
			if err := p.Initialize(cmd.Context()); err != nil {
				return err
			}
			if err := cfg.Save(opts.Config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized project %q (%s backend) at %s\n", name, backend, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&backend, "backend", config.BackendGit, "storage backend (git|sqlite)")
	cmd.Flags().StringVar(&path, "path", ".", "project directory (git) or database file (sqlite)")

	return cmd
}
