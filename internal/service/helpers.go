package service

import (
	"fmt"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

// mutate runs one load-modify-save cycle. Every mutation recomputes derived
// actuals before persisting so the stored tree is always consistent.
func mutate(store HierarchyStore, fn func(h *domain.Hierarchy) error) error {
	h, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading project data: %w", err)
	}
	if err := fn(h); err != nil {
		return err
	}
	rollup.RecomputeAll(h)
	if err := store.Save(h); err != nil {
		return fmt.Errorf("saving project data: %w", err)
	}
	return nil
}

type resolvedSlot struct {
	record *domain.GatewayRecord
	// derived marks an actual slot owned by the rollup engine.
	derived bool
}

func resolveSlot(h *domain.Hierarchy, ref GatewayRef) (*resolvedSlot, error) {
	if !domain.ValidGatewayIDs[ref.Gateway] {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGateway, string(ref.Gateway))
	}
	p := h.FindProject(ref.Project)
	if p == nil {
		return nil, fmt.Errorf("project %q: %w", ref.Project, domain.ErrNotFound)
	}
	if ref.Module == "" {
		if ref.Sub != "" {
			return nil, fmt.Errorf("sub-module %q given without a module", ref.Sub)
		}
		return &resolvedSlot{record: p.Gateways[ref.Gateway], derived: p.HasModules()}, nil
	}
	m := p.FindModule(ref.Module)
	if m == nil {
		return nil, fmt.Errorf("module %q in project %q: %w", ref.Module, ref.Project, domain.ErrNotFound)
	}
	if ref.Sub == "" {
		return &resolvedSlot{record: m.Gateways[ref.Gateway], derived: m.HasSubModules()}, nil
	}
	sub := m.FindSubModule(ref.Sub)
	if sub == nil {
		return nil, fmt.Errorf("sub-module %q in module %q: %w", ref.Sub, ref.Module, domain.ErrNotFound)
	}
	return &resolvedSlot{record: sub.Gateways[ref.Gateway]}, nil
}
