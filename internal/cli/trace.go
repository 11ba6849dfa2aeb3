package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/links"
)

// NewTraceCommand creates the trace command: print the edges around one
// artifact, outgoing as stored and incoming through the inverse vocabulary.
func NewTraceCommand(opts *RootOptions) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "trace <id>",
		Short: "Print the traceability links of an artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			p, err := openProject(opts)
			if err != nil {
				return err
			}
			defer p.Close()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var (
				outgoing []*artifact.Link
				incoming []links.IncomingView
			)
			if projectID != "" {
				outgoing, err = p.Links.OutgoingForProject(ctx, id, projectID)
			} else {
				outgoing, err = p.Links.Outgoing(ctx, id)
			}
			if err != nil {
				return err
			}
			if projectID != "" {
				incoming, err = p.Links.IncomingForProject(ctx, id, projectID)
			} else {
				incoming, err = p.Links.Incoming(ctx, id)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "outgoing (%d):\n", len(outgoing))
			for _, l := range outgoing {
				fmt.Fprintf(out, "  %-10s %s --%s--> %s\n", l.ID, l.SourceID, l.Type, l.TargetID)
			}
			fmt.Fprintf(out, "incoming (%d):\n", len(incoming))
			for _, v := range incoming {
				fmt.Fprintf(out, "  %-10s %s (%s) --%s--> this\n", v.LinkID, v.SourceID, v.SourceType, v.LinkType)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "restrict to links visible to this project")

	return cmd
}
