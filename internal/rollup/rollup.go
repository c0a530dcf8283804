package rollup

import "github.com/mwidmann/gatetrack/internal/domain"

// Recompute re-derives the project's effective actual dates bottom-up for
// every gateway. The rule at both levels is all-complete/take-max: a parent's
// actual for a gateway exists only when every child has one, and then it is
// the latest of them, so the slowest child gates the parent. Any missing child
// actual clears the parent's.
//
// Entities without children are left untouched; their actuals are
// authoritative user input. Recompute is idempotent and never fails: absent
// inputs degrade to absent outputs.
func Recompute(p *domain.Project) {
	for _, m := range p.Modules {
		recomputeModule(m)
	}
	for _, gw := range domain.GatewayOrder {
		rec := p.Gateways[gw]
		if !p.HasModules() {
			rec.Source = domain.SourceManual
			continue
		}
		rec.Source = domain.SourceDerived
		rec.Actual = aggregateActuals(moduleActuals(p, gw))
	}
}

// RecomputeAll runs Recompute over every project in the hierarchy. Callers
// invoke it after any mutation that can affect a rollup; derived values are
// never left stale.
func RecomputeAll(h *domain.Hierarchy) {
	for _, p := range h.Projects {
		Recompute(p)
	}
}

func recomputeModule(m *domain.Module) {
	for _, gw := range domain.GatewayOrder {
		rec := m.Gateways[gw]
		if !m.HasSubModules() {
			rec.Source = domain.SourceManual
			continue
		}
		rec.Source = domain.SourceDerived
		actuals := make([]domain.Date, 0, len(m.SubModules))
		for _, s := range m.SubModules {
			actuals = append(actuals, s.Gateways[gw].Actual)
		}
		rec.Actual = aggregateActuals(actuals)
	}
}

func moduleActuals(p *domain.Project, gw domain.GatewayID) []domain.Date {
	actuals := make([]domain.Date, 0, len(p.Modules))
	for _, m := range p.Modules {
		actuals = append(actuals, m.Gateways[gw].Actual)
	}
	return actuals
}

// aggregateActuals applies the all-complete/take-max rule.
func aggregateActuals(actuals []domain.Date) domain.Date {
	if len(actuals) == 0 {
		return domain.Date{}
	}
	var latest domain.Date
	for _, a := range actuals {
		if a.IsZero() {
			return domain.Date{}
		}
		latest = domain.LaterOf(latest, a)
	}
	return latest
}
