package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mwidmann/gatetrack/internal/domain"
)

// Wire types for the persisted hierarchy. The format is a fixed external
// contract: an ordered array of projects, gateway keys "D0".."D4" always
// present, dates as YYYY-MM-DD or "" when absent.

type gatewayJSON struct {
	Plan      string `json:"p"`
	Actual    string `json:"a"`
	ChangeRef string `json:"ecn"`
}

type subModuleJSON struct {
	ID       int                    `json:"id"`
	Name     string                 `json:"name"`
	Gateways map[string]gatewayJSON `json:"gateways"`
}

type moduleJSON struct {
	ID         int                    `json:"id"`
	Name       string                 `json:"name"`
	Gateways   map[string]gatewayJSON `json:"gateways"`
	SubModules []subModuleJSON        `json:"sub_modules,omitempty"`
}

type projectJSON struct {
	ID       int                    `json:"id"`
	Name     string                 `json:"name"`
	Type     string                 `json:"type"`
	Gateways map[string]gatewayJSON `json:"gateways"`
	Modules  []moduleJSON           `json:"modules"`
}

// Encode marshals the hierarchy into the persisted JSON form.
func Encode(h *domain.Hierarchy) ([]byte, error) {
	out := make([]projectJSON, 0, len(h.Projects))
	for _, p := range h.Projects {
		pj := projectJSON{
			ID:       p.ID,
			Name:     p.Name,
			Type:     string(p.Type),
			Gateways: encodeGateways(p.Gateways),
			Modules:  make([]moduleJSON, 0, len(p.Modules)),
		}
		for _, m := range p.Modules {
			mj := moduleJSON{
				ID:       m.ID,
				Name:     m.Name,
				Gateways: encodeGateways(m.Gateways),
			}
			for _, s := range m.SubModules {
				mj.SubModules = append(mj.SubModules, subModuleJSON{
					ID:       s.ID,
					Name:     s.Name,
					Gateways: encodeGateways(s.Gateways),
				})
			}
			pj.Modules = append(pj.Modules, mj)
		}
		out = append(out, pj)
	}
	return json.MarshalIndent(out, "", "  ")
}

// Decode parses the persisted JSON form into a hierarchy. Malformed dates
// and duplicated IDs are load-time errors; missing gateway keys are filled
// with empty records. Rollup is the caller's job.
func Decode(data []byte) (*domain.Hierarchy, error) {
	var raw []projectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing hierarchy: %w", err)
	}

	h := &domain.Hierarchy{}
	for _, pj := range raw {
		gws, err := decodeGateways(pj.Gateways, fmt.Sprintf("project %q", pj.Name))
		if err != nil {
			return nil, err
		}
		p := &domain.Project{
			ID:       pj.ID,
			Name:     pj.Name,
			Type:     domain.ProjectType(pj.Type),
			Gateways: gws,
		}
		for _, mj := range pj.Modules {
			mgws, err := decodeGateways(mj.Gateways, fmt.Sprintf("module %q", mj.Name))
			if err != nil {
				return nil, err
			}
			m := &domain.Module{ID: mj.ID, Name: mj.Name, Gateways: mgws}
			for _, sj := range mj.SubModules {
				sgws, err := decodeGateways(sj.Gateways, fmt.Sprintf("sub-module %q", sj.Name))
				if err != nil {
					return nil, err
				}
				m.SubModules = append(m.SubModules, &domain.SubModule{
					ID: sj.ID, Name: sj.Name, Gateways: sgws,
				})
			}
			p.Modules = append(p.Modules, m)
		}
		h.Projects = append(h.Projects, p)
	}

	if err := h.ValidateIdentity(); err != nil {
		return nil, err
	}
	return h, nil
}

func encodeGateways(g domain.Gateways) map[string]gatewayJSON {
	out := make(map[string]gatewayJSON, len(domain.GatewayOrder))
	for _, id := range domain.GatewayOrder {
		rec := g[id]
		out[string(id)] = gatewayJSON{
			Plan:      rec.Plan.String(),
			Actual:    rec.Actual.String(),
			ChangeRef: rec.ChangeRef,
		}
	}
	return out
}

func decodeGateways(raw map[string]gatewayJSON, where string) (domain.Gateways, error) {
	g := domain.NewGateways()
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		id, err := domain.ParseGatewayID(k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		gj := raw[k]
		plan, err := domain.ParseDate(gj.Plan)
		if err != nil {
			return nil, fmt.Errorf("%s, gateway %s plan: %w", where, id, err)
		}
		actual, err := domain.ParseDate(gj.Actual)
		if err != nil {
			return nil, fmt.Errorf("%s, gateway %s actual: %w", where, id, err)
		}
		g[id] = &domain.GatewayRecord{
			Plan:      plan,
			Actual:    actual,
			Source:    domain.SourceManual,
			ChangeRef: gj.ChangeRef,
		}
	}
	return g, nil
}
