package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/reqtrace/internal/artifact"
)

// NewRecalcCommand creates the recalc command: repair a kind's identifier
// counter by rescanning its stored records, e.g. after an import wrote
// records with externally assigned IDs.
func NewRecalcCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recalc [kind]",
		Short: "Reset identifier counters from the records on disk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := artifact.Kinds
			if len(args) == 1 {
				kind, ok := artifact.KindNamed(args[0])
				if !ok {
					return fmt.Errorf("unknown kind %q", args[0])
				}
				kinds = []artifact.Kind{kind}
			}
			p, err := openProject(opts)
			if err != nil {
				return err
			}
			defer p.Close()

			for _, kind := range kinds {
				max, err := p.Alloc.Recalculate(cmd.Context(), kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s counter = %d\n", kind.Name, max)
			}
			return nil
		},
	}
}
