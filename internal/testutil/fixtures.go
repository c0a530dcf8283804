package testutil

import (
	"fmt"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

// Project options
type ProjectOption func(*domain.Hierarchy, *domain.Project)

// WithType sets the project type.
func WithType(t domain.ProjectType) ProjectOption {
	return func(_ *domain.Hierarchy, p *domain.Project) {
		p.Type = t
	}
}

// WithPlan sets the project's plan date for one gateway.
func WithPlan(gw domain.GatewayID, date string) ProjectOption {
	return func(_ *domain.Hierarchy, p *domain.Project) {
		p.Gateways[gw].Plan = domain.MustDate(date)
	}
}

// WithModule adds a module built from the given options.
func WithModule(name string, opts ...ModuleOption) ProjectOption {
	return func(h *domain.Hierarchy, p *domain.Project) {
		m := domain.NewModule(h.NextID(), name)
		for _, opt := range opts {
			opt(h, m)
		}
		p.Modules = append(p.Modules, m)
	}
}

// Module options
type ModuleOption func(*domain.Hierarchy, *domain.Module)

// WithActual sets the module's actual date for one gateway.
func WithActual(gw domain.GatewayID, date string) ModuleOption {
	return func(_ *domain.Hierarchy, m *domain.Module) {
		m.Gateways[gw].Actual = domain.MustDate(date)
	}
}

// WithChangeRef sets the module's change reference for one gateway.
func WithChangeRef(gw domain.GatewayID, ref string) ModuleOption {
	return func(_ *domain.Hierarchy, m *domain.Module) {
		m.Gateways[gw].ChangeRef = ref
	}
}

// WithSubModule adds a sub-module with optional per-gateway actuals, given
// as pairs of (gateway, date).
func WithSubModule(name string, actuals map[domain.GatewayID]string) ModuleOption {
	return func(h *domain.Hierarchy, m *domain.Module) {
		s := domain.NewSubModule(h.NextID(), name)
		for gw, date := range actuals {
			s.Gateways[gw].Actual = domain.MustDate(date)
		}
		m.SubModules = append(m.SubModules, s)
	}
}

// AddProject builds a project into the hierarchy and recomputes rollups.
func AddProject(h *domain.Hierarchy, name string, opts ...ProjectOption) *domain.Project {
	p := h.AddProject(name, domain.TypeMajor)
	for _, opt := range opts {
		opt(h, p)
	}
	rollup.Recompute(p)
	return p
}

// NewHierarchy builds a hierarchy with n generically named projects.
func NewHierarchy(n int) *domain.Hierarchy {
	h := domain.NewHierarchy()
	for i := 1; i <= n; i++ {
		AddProject(h, fmt.Sprintf("Project %d", i))
	}
	return h
}
