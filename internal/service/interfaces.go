package service

import (
	"context"
	"io"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/importer"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

// HierarchyStore persists the full project tree between commands.
type HierarchyStore interface {
	Load() (*domain.Hierarchy, error)
	Save(h *domain.Hierarchy) error
}

// GatewayRef addresses one gateway slot in the tree. An empty Module targets
// the project-level record, an empty Sub the module-level record.
type GatewayRef struct {
	Project string
	Module  string
	Sub     string
	Gateway domain.GatewayID
}

// CreateProjectInput describes a new project. Modules lists explicit initial
// module names; ModuleCount instead generates "Module 1".."Module N" when
// Modules is empty. A non-empty D0Plan seeds the D0 plan of the project and
// of every initial module.
type CreateProjectInput struct {
	Name        string
	Type        domain.ProjectType
	Modules     []string
	ModuleCount int
	D0Plan      string
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context, types []domain.ProjectType) ([]*domain.Project, error)
	Rename(ctx context.Context, name, newName string) error
	SetType(ctx context.Context, name string, typ domain.ProjectType) error
	Remove(ctx context.Context, name string) error
	AddModule(ctx context.Context, project, module string) error
	RenameModule(ctx context.Context, project, module, newName string) error
	RemoveModule(ctx context.Context, project, module string) error
	AddSubModule(ctx context.Context, project, module, sub string) error
	RenameSubModule(ctx context.Context, project, module, sub, newName string) error
	RemoveSubModule(ctx context.Context, project, module, sub string) error
}

type GatewayService interface {
	SetPlan(ctx context.Context, ref GatewayRef, date string) error
	SetActual(ctx context.Context, ref GatewayRef, date string) error
	SetChangeRef(ctx context.Context, ref GatewayRef, changeRef string) error
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*importer.Outcome, error)
	ImportCSV(ctx context.Context, r io.Reader) (*importer.Outcome, error)
	Template() string
}

// StatusReport bundles what the dashboard renders in one load.
type StatusReport struct {
	Projects  []*domain.Project
	Stats     rollup.DashboardStats
	Adherence float64
}

type StatusService interface {
	Report(ctx context.Context, types []domain.ProjectType) (*StatusReport, error)
	Breakdown(ctx context.Context) ([]rollup.AdherenceBreakdown, error)
	Timeline(ctx context.Context, project, module string) ([]rollup.Segment, error)
}

type ArchiveService interface {
	Export(ctx context.Context) (int, error)
	Report(ctx context.Context, w io.Writer) error
}
