package cli

import (
	"context"
	"fmt"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/service"
	"github.com/spf13/cobra"
)

func newGateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Record gateway plan and actual dates",
	}

	cmd.AddCommand(
		newGatePlanCmd(app),
		newGateActualCmd(app),
		newGateEcnCmd(app),
	)

	return cmd
}

// gateRef builds the slot address from positional args plus the module flags.
func gateRef(project, gateway, module, sub string) (service.GatewayRef, error) {
	gw, err := domain.ParseGatewayID(gateway)
	if err != nil {
		return service.GatewayRef{}, err
	}
	return service.GatewayRef{Project: project, Module: module, Sub: sub, Gateway: gw}, nil
}

func newGatePlanCmd(app *App) *cobra.Command {
	var module, sub string

	cmd := &cobra.Command{
		Use:   "plan PROJECT GATEWAY DATE",
		Short: "Set a planned gateway date (empty DATE clears it)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := gateRef(args[0], args[1], module, sub)
			if err != nil {
				return err
			}
			if err := app.Gateways.SetPlan(context.Background(), ref, args[2]); err != nil {
				return err
			}
			fmt.Printf("Set %s plan for %s\n", ref.Gateway, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "Target a module instead of the project")
	cmd.Flags().StringVar(&sub, "sub", "", "Target a sub-module (requires --module)")

	return cmd
}

func newGateActualCmd(app *App) *cobra.Command {
	var module, sub string

	cmd := &cobra.Command{
		Use:   "actual PROJECT GATEWAY DATE",
		Short: "Record an actual gateway completion date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := gateRef(args[0], args[1], module, sub)
			if err != nil {
				return err
			}
			if err := app.Gateways.SetActual(context.Background(), ref, args[2]); err != nil {
				return err
			}
			fmt.Printf("Recorded %s actual for %s\n", ref.Gateway, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "Target a module instead of the project")
	cmd.Flags().StringVar(&sub, "sub", "", "Target a sub-module (requires --module)")

	return cmd
}

func newGateEcnCmd(app *App) *cobra.Command {
	var module, sub string

	cmd := &cobra.Command{
		Use:   "ecn PROJECT GATEWAY REF",
		Short: "Attach an engineering change reference to a gateway",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := gateRef(args[0], args[1], module, sub)
			if err != nil {
				return err
			}
			if err := app.Gateways.SetChangeRef(context.Background(), ref, args[2]); err != nil {
				return err
			}
			fmt.Printf("Set %s change reference for %s\n", ref.Gateway, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&module, "module", "", "Target a module instead of the project")
	cmd.Flags().StringVar(&sub, "sub", "", "Target a sub-module (requires --module)")

	return cmd
}
