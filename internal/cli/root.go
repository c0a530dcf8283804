package cli

import (
	"github.com/mwidmann/gatetrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Gateways service.GatewayService
	Import   service.ImportService
	Status   service.StatusService
	Archive  service.ArchiveService
}

// NewRootCmd creates the top-level "gatetrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gatetrack",
		Short: "Gateway tracker for vehicle program milestones",
	}

	root.AddCommand(
		newProjectCmd(app),
		newModuleCmd(app),
		newGateCmd(app),
		newStatusCmd(app),
		newTimelineCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}
