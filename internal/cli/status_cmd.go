package cli

import (
	"context"
	"fmt"

	"github.com/mwidmann/gatetrack/internal/cli/formatter"
	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var typeFilter []domain.ProjectType
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the portfolio dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if breakdown {
				rows, err := app.Status.Breakdown(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatBreakdown(rows))
				return nil
			}

			report, err := app.Status.Report(ctx, typeFilter)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDashboard(report))
			return nil
		},
	}

	cmd.Flags().Var(newTypesValue(&typeFilter), "type", "Only include projects of this type (repeatable)")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "Show per-project adherence distribution")

	return cmd
}
