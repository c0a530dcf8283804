package service

import (
	"context"
	"fmt"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

type statusService struct {
	store HierarchyStore
}

func NewStatusService(store HierarchyStore) StatusService {
	return &statusService{store: store}
}

func (s *statusService) Report(ctx context.Context, types []domain.ProjectType) (*StatusReport, error) {
	h, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading project data: %w", err)
	}
	projects := rollup.FilterByType(h.Projects, types)
	return &StatusReport{
		Projects:  projects,
		Stats:     rollup.CalculateStats(projects),
		Adherence: rollup.AdherenceRate(projects),
	}, nil
}

func (s *statusService) Breakdown(ctx context.Context) ([]rollup.AdherenceBreakdown, error) {
	h, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading project data: %w", err)
	}
	return rollup.BreakdownByProject(h.Projects), nil
}

func (s *statusService) Timeline(ctx context.Context, project, module string) ([]rollup.Segment, error) {
	h, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading project data: %w", err)
	}
	p := h.FindProject(project)
	if p == nil {
		return nil, fmt.Errorf("project %q: %w", project, domain.ErrNotFound)
	}
	m := p.FindModule(module)
	if m == nil {
		return nil, fmt.Errorf("module %q in project %q: %w", module, project, domain.ErrNotFound)
	}
	return rollup.ModuleSegments(p, m), nil
}
