package cli

import (
	"context"
	"fmt"

	"github.com/mwidmann/gatetrack/internal/cli/formatter"
	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/service"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectRenameCmd(app),
		newProjectSetTypeCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var typeStr, d0 string
	var modules []string
	var moduleCount int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Create(context.Background(), service.CreateProjectInput{
				Name:        args[0],
				Type:        domain.ProjectType(typeStr),
				Modules:     modules,
				ModuleCount: moduleCount,
				D0Plan:      d0,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created project %s with %d modules\n", p.Name, len(p.Modules))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "", "Project type (Major|Minor|Carryover)")
	cmd.Flags().StringArrayVar(&modules, "module", nil, "Initial module name (repeatable)")
	cmd.Flags().IntVar(&moduleCount, "modules", 0, "Generate N initial modules named \"Module 1\"..\"Module N\"")
	cmd.Flags().StringVar(&d0, "d0", "", "Seed the D0 plan date for the project and its initial modules (YYYY-MM-DD)")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var typeFilter []domain.ProjectType

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), typeFilter)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().Var(newTypesValue(&typeFilter), "type", "Only show projects of this type (repeatable)")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show a project's full gateway tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProjectInspect(p))
			return nil
		},
	}
}

func newProjectRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename NAME NEW_NAME",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Rename(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed project %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newProjectSetTypeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-type NAME TYPE",
		Short: "Change a project's type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.SetType(context.Background(), args[0], domain.ProjectType(args[1])); err != nil {
				return err
			}
			fmt.Printf("Set type of %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a project and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", args[0])
			return nil
		},
	}
}
