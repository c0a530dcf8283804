package cli

import (
	"context"
	"fmt"

	"github.com/mwidmann/gatetrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline PROJECT MODULE",
		Short: "Show a module's gateway-to-gateway timeline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			segments, err := app.Status.Timeline(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatTimeline(p, args[1], segments))
			return nil
		},
	}
}
