package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Reconcile a CSV upload into the tracked projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Applied %d rows: %d projects created, %d modules created\n",
				outcome.RowsApplied, outcome.ProjectsCreated, outcome.ModulesCreated)
			return nil
		},
	}

	cmd.AddCommand(newImportTemplateCmd(app))

	return cmd
}

func newImportTemplateCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print or write the empty CSV upload template",
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl := app.Import.Template()
			if out == "" {
				fmt.Print(tmpl)
				return nil
			}
			if err := os.WriteFile(out, []byte(tmpl), 0o644); err != nil {
				return fmt.Errorf("writing template: %w", err)
			}
			fmt.Printf("Wrote template to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the template to a file instead of stdout")

	return cmd
}
