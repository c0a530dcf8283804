package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newModuleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Manage modules and sub-modules",
	}

	cmd.AddCommand(
		newModuleAddCmd(app),
		newModuleRenameCmd(app),
		newModuleRemoveCmd(app),
		newSubModuleAddCmd(app),
		newSubModuleRenameCmd(app),
		newSubModuleRemoveCmd(app),
	)

	return cmd
}

func newModuleAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add PROJECT NAME",
		Short: "Add a module to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.AddModule(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Added module %s to %s\n", args[1], args[0])
			return nil
		},
	}
}

func newModuleRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename PROJECT NAME NEW_NAME",
		Short: "Rename a module",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.RenameModule(context.Background(), args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Printf("Renamed module %s to %s in %s\n", args[1], args[2], args[0])
			return nil
		},
	}
}

func newModuleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT NAME",
		Short: "Remove a module and its sub-modules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.RemoveModule(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Removed module %s from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newSubModuleAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-sub PROJECT MODULE NAME",
		Short: "Add a sub-module to a module",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.AddSubModule(context.Background(), args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Printf("Added sub-module %s to %s/%s\n", args[2], args[0], args[1])
			return nil
		},
	}
}

func newSubModuleRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename-sub PROJECT MODULE NAME NEW_NAME",
		Short: "Rename a sub-module",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.RenameSubModule(context.Background(), args[0], args[1], args[2], args[3]); err != nil {
				return err
			}
			fmt.Printf("Renamed sub-module %s to %s in %s/%s\n", args[2], args[3], args[0], args[1])
			return nil
		},
	}
}

func newSubModuleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-sub PROJECT MODULE NAME",
		Short: "Remove a sub-module",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.RemoveSubModule(context.Background(), args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Printf("Removed sub-module %s from %s/%s\n", args[2], args[0], args[1])
			return nil
		},
	}
}
