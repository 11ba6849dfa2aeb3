package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command: print a record's revision
// log, newest first.
func NewHistoryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Print a record's revision history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(opts)
			if err != nil {
				return err
			}
			defer p.Close()

			revisions, err := p.History.ForRecord(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(revisions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no revisions for %s\n", args[0])
				return nil
			}
			for _, rev := range revisions {
				when := time.UnixMilli(rev.Timestamp).Format(time.RFC3339)
				fmt.Fprintf(cmd.OutOrStdout(), "%.12s  %s  %-20s  %s\n", rev.Ref, when, rev.Author, rev.Message)
			}
			return nil
		},
	}
}
