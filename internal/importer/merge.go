package importer

import (
	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

// Outcome summarizes a successful merge.
type Outcome struct {
	RowsApplied     int
	ProjectsCreated int
	ModulesCreated  int
}

// Merge reconciles upload rows into the hierarchy. All-or-nothing: rows are
// validated up front and applied to a deep clone, so a rejected batch leaves
// the caller's hierarchy byte-for-byte unchanged.
//
// Matching is by exact case-sensitive name at both levels; unmatched names
// create new entities with fresh IDs. Field merge is additive: a non-blank
// row field overwrites, a blank one never clears existing data. Rows with a
// blank module name target the project's own gateway record; a project-level
// actual is only written while the project has no modules (it is derived
// otherwise). Rollups are recomputed for the whole merged hierarchy before
// it is returned.
func Merge(rows []Row, existing *domain.Hierarchy) (*domain.Hierarchy, *Outcome, error) {
	if errs := Validate(rows, existing); len(errs) > 0 {
		return nil, nil, FormatErrors(errs)
	}

	merged := existing.Clone()
	outcome := &Outcome{}

	for _, row := range rows {
		applyRow(merged, row, outcome)
		outcome.RowsApplied++
	}

	rollup.RecomputeAll(merged)
	return merged, outcome, nil
}

func applyRow(h *domain.Hierarchy, row Row, outcome *Outcome) {
	gw := domain.GatewayID(row.Gateway)

	p := h.FindProject(row.ProjectName)
	if p == nil {
		p = h.AddProject(row.ProjectName, domain.ProjectType(row.ProjectType))
		outcome.ProjectsCreated++
	} else if p.Type == "" && row.ProjectType != "" {
		p.Type = domain.ProjectType(row.ProjectType)
	}

	if row.ModuleName == "" {
		rec := p.Gateways[gw]
		mergeField(&rec.Plan, row.PlanDate)
		if !p.HasModules() {
			mergeField(&rec.Actual, row.ActualDate)
		}
		if row.ChangeRef != "" {
			rec.ChangeRef = row.ChangeRef
		}
		return
	}

	m := p.FindModule(row.ModuleName)
	if m == nil {
		m = domain.NewModule(h.NextID(), row.ModuleName)
		p.Modules = append(p.Modules, m)
		outcome.ModulesCreated++
	}

	rec := m.Gateways[gw]
	mergeField(&rec.Plan, row.PlanDate)
	if !m.HasSubModules() {
		mergeField(&rec.Actual, row.ActualDate)
	}
	if row.ChangeRef != "" {
		rec.ChangeRef = row.ChangeRef
	}
}

// mergeField overwrites dst only when the row supplied a value. The string
// parsed here already passed validation.
func mergeField(dst *domain.Date, raw string) {
	if raw == "" {
		return
	}
	*dst = domain.MustDate(raw)
}
