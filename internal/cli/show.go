package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/substrate"
)

// NewShowCommand creates the show command: print a record's stored text,
// current or as of an earlier revision.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	var atRef string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a record's stored text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			kind, ok := artifact.KindForID(id)
			if !ok {
				return fmt.Errorf("unrecognized identifier %q", id)
			}
			p, err := openProject(opts)
			if err != nil {
				return err
			}
			defer p.Close()

			var text string
			if atRef != "" {
				text, err = p.History.ContentAt(cmd.Context(), id, atRef)
			} else {
				text, err = p.Substrate.ReadFile(cmd.Context(), kind.RecordPath(id))
			}
			if errors.Is(err, substrate.ErrNotFound) {
				return fmt.Errorf("%s not found", id)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&atRef, "at", "", "show the record as of this revision reference")

	return cmd
}
