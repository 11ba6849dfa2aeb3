package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/project"
)

// listRow is one line of list output.
type listRow struct {
	ID     string
	Title  string
	Status string
}

// NewListCommand creates the list command: enumerate the records of one
// kind, optionally including soft-deleted ones.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var includeDeleted bool

	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List records of a kind (requirement, usecase, testcase, risk, information, attribute, workflow, link)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := artifact.KindNamed(args[0])
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}
			p, err := openProject(opts)
			if err != nil {
				return err
			}
			defer p.Close()

			rows, err := listKind(cmd, p, kind, includeDeleted)
			if err != nil {
				return err
			}
			// The store guarantees no order; sort by ID for stable output.
			sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s  %-10s  %s\n", r.ID, r.Status, r.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeDeleted, "deleted", false, "include soft-deleted records")

	return cmd
}

func listKind(cmd *cobra.Command, p *project.Project, kind artifact.Kind, includeDeleted bool) ([]listRow, error) {
	ctx := cmd.Context()
	var rows []listRow
	switch kind.Name {
	case artifact.KindRequirement.Name:
		records, err := p.Requirements.LoadAll(ctx, includeDeleted)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			rows = append(rows, listRow{r.ID, r.Title, string(r.Status)})
		}
	case artifact.KindUseCase.Name:
		records, err := p.UseCases.LoadAll(ctx, includeDeleted)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			rows = append(rows, listRow{r.ID, r.Title, string(r.Status)})
		}
	case artifact.KindTestCase.Name:
		records, err := p.TestCases.LoadAll(ctx, includeDeleted)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			rows = append(rows, listRow{r.ID, r.Title, string(r.Status)})
		}
	case artifact.KindRisk.Name:
		records, err := p.Risks.LoadAll(ctx, includeDeleted)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			rows = append(rows, listRow{r.ID, r.Title, string(r.Status)})
		}
	case artifact.KindInformation.Name:
		records, err := p.Information.LoadAll(ctx, includeDeleted)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			rows = append(rows, listRow{r.ID, r.Title, r.Category})
		}
	case artifact.KindAttribute.Name:
		records, err := p.Attributes.LoadAll(ctx, includeDeleted)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			rows = append(rows, listRow{r.ID, r.Name, string(r.Type)})
		}
	case artifact.KindWorkflow.Name:
		records, err := p.Workflows.Store().LoadAll(ctx, includeDeleted)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			rows = append(rows, listRow{r.ID, r.Title, string(r.Status)})
		}
	case artifact.KindLink.Name:
		records, err := p.Links.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, l := range records {
			rows = append(rows, listRow{l.ID, fmt.Sprintf("%s -> %s", l.SourceID, l.TargetID), string(l.Type)})
		}
	}
	return rows, nil
}
