package service

import (
	"context"
	"fmt"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

type projectService struct {
	store HierarchyStore
}

func NewProjectService(store HierarchyStore) ProjectService {
	return &projectService{store: store}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	d0, err := domain.ParseDate(in.D0Plan)
	if err != nil {
		return nil, fmt.Errorf("D0 plan date: %w", err)
	}

	modules := in.Modules
	if len(modules) == 0 {
		for i := 1; i <= in.ModuleCount; i++ {
			modules = append(modules, fmt.Sprintf("Module %d", i))
		}
	}

	var created *domain.Project
	err = mutate(s.store, func(h *domain.Hierarchy) error {
		if h.FindProject(in.Name) != nil {
			return fmt.Errorf("project %q already exists: %w", in.Name, domain.ErrDuplicateIdentity)
		}
		p := h.AddProject(in.Name, in.Type)
		p.Gateways[domain.D0].Plan = d0
		seen := make(map[string]bool, len(modules))
		for _, mod := range modules {
			if mod == "" {
				return fmt.Errorf("module name is required")
			}
			if seen[mod] {
				return fmt.Errorf("module %q listed twice: %w", mod, domain.ErrDuplicateIdentity)
			}
			seen[mod] = true
			m := domain.NewModule(h.NextID(), mod)
			m.Gateways[domain.D0].Plan = d0
			p.Modules = append(p.Modules, m)
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *projectService) Get(ctx context.Context, name string) (*domain.Project, error) {
	h, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading project data: %w", err)
	}
	p := h.FindProject(name)
	if p == nil {
		return nil, fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, types []domain.ProjectType) ([]*domain.Project, error) {
	h, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading project data: %w", err)
	}
	return rollup.FilterByType(h.Projects, types), nil
}

func (s *projectService) Rename(ctx context.Context, name, newName string) error {
	if newName == "" {
		return fmt.Errorf("new project name is required")
	}
	return mutate(s.store, func(h *domain.Hierarchy) error {
		p := h.FindProject(name)
		if p == nil {
			return fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
		}
		if name != newName && h.FindProject(newName) != nil {
			return fmt.Errorf("project %q already exists: %w", newName, domain.ErrDuplicateIdentity)
		}
		p.Name = newName
		return nil
	})
}

func (s *projectService) SetType(ctx context.Context, name string, typ domain.ProjectType) error {
	return mutate(s.store, func(h *domain.Hierarchy) error {
		p := h.FindProject(name)
		if p == nil {
			return fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
		}
		p.Type = typ
		return nil
	})
}

func (s *projectService) Remove(ctx context.Context, name string) error {
	return mutate(s.store, func(h *domain.Hierarchy) error {
		if !h.RemoveProject(name) {
			return fmt.Errorf("project %q: %w", name, domain.ErrNotFound)
		}
		return nil
	})
}

func (s *projectService) AddModule(ctx context.Context, project, module string) error {
	if module == "" {
		return fmt.Errorf("module name is required")
	}
	return mutate(s.store, func(h *domain.Hierarchy) error {
		p := h.FindProject(project)
		if p == nil {
			return fmt.Errorf("project %q: %w", project, domain.ErrNotFound)
		}
		if p.FindModule(module) != nil {
			return fmt.Errorf("module %q already exists in project %q: %w", module, project, domain.ErrDuplicateIdentity)
		}
		p.Modules = append(p.Modules, domain.NewModule(h.NextID(), module))
		return nil
	})
}

func (s *projectService) RenameModule(ctx context.Context, project, module, newName string) error {
	if newName == "" {
		return fmt.Errorf("new module name is required")
	}
	return mutate(s.store, func(h *domain.Hierarchy) error {
		p := h.FindProject(project)
		if p == nil {
			return fmt.Errorf("project %q: %w", project, domain.ErrNotFound)
		}
		m := p.FindModule(module)
		if m == nil {
			return fmt.Errorf("module %q in project %q: %w", module, project, domain.ErrNotFound)
		}
		if module != newName && p.FindModule(newName) != nil {
			return fmt.Errorf("module %q already exists in project %q: %w", newName, project, domain.ErrDuplicateIdentity)
		}
		m.Name = newName
		return nil
	})
}

func (s *projectService) RemoveModule(ctx context.Context, project, module string) error {
	return mutate(s.store, func(h *domain.Hierarchy) error {
		p := h.FindProject(project)
		if p == nil {
			return fmt.Errorf("project %q: %w", project, domain.ErrNotFound)
		}
		if !p.RemoveModule(module) {
			return fmt.Errorf("module %q in project %q: %w", module, project, domain.ErrNotFound)
		}
		return nil
	})
}

func (s *projectService) AddSubModule(ctx context.Context, project, module, sub string) error {
	if sub == "" {
		return fmt.Errorf("sub-module name is required")
	}
	return mutate(s.store, func(h *domain.Hierarchy) error {
		p := h.FindProject(project)
		if p == nil {
			return fmt.Errorf("project %q: %w", project, domain.ErrNotFound)
		}
		m := p.FindModule(module)
		if m == nil {
			return fmt.Errorf("module %q in project %q: %w", module, project, domain.ErrNotFound)
		}
		if m.FindSubModule(sub) != nil {
			return fmt.Errorf("sub-module %q already exists in module %q: %w", sub, module, domain.ErrDuplicateIdentity)
		}
		m.SubModules = append(m.SubModules, domain.NewSubModule(h.NextID(), sub))
		return nil
	})
}

func (s *projectService) RenameSubModule(ctx context.Context, project, module, sub, newName string) error {
	if newName == "" {
		return fmt.Errorf("new sub-module name is required")
	}
	return mutate(s.store, func(h *domain.Hierarchy) error {
		p := h.FindProject(project)
		if p == nil {
			return fmt.Errorf("project %q: %w", project, domain.ErrNotFound)
		}
		m := p.FindModule(module)
		if m == nil {
			return fmt.Errorf("module %q in project %q: %w", module, project, domain.ErrNotFound)
		}
		sm := m.FindSubModule(sub)
		if sm == nil {
			return fmt.Errorf("sub-module %q in module %q: %w", sub, module, domain.ErrNotFound)
		}
		if sub != newName && m.FindSubModule(newName) != nil {
			return fmt.Errorf("sub-module %q already exists in module %q: %w", newName, module, domain.ErrDuplicateIdentity)
		}
		sm.Name = newName
		return nil
	})
}

func (s *projectService) RemoveSubModule(ctx context.Context, project, module, sub string) error {
	return mutate(s.store, func(h *domain.Hierarchy) error {
		p := h.FindProject(project)
		if p == nil {
			return fmt.Errorf("project %q: %w", project, domain.ErrNotFound)
		}
		m := p.FindModule(module)
		if m == nil {
			return fmt.Errorf("module %q in project %q: %w", module, project, domain.ErrNotFound)
		}
		if !m.RemoveSubModule(sub) {
			return fmt.Errorf("sub-module %q in module %q: %w", sub, module, domain.ErrNotFound)
		}
		return nil
	})
}
