package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Snapshot all projects into the relational archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := app.Archive.Export(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Archived %d projects\n", count)
			return nil
		},
	}

	cmd.AddCommand(newExportReportCmd(app))

	return cmd
}

func newExportReportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the flattened per-gateway CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating report file: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := app.Archive.Report(context.Background(), w); err != nil {
				return err
			}
			if out != "" {
				fmt.Printf("Wrote report to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the report to a file instead of stdout")

	return cmd
}
