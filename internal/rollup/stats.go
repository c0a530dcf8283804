package rollup

import "github.com/mwidmann/gatetrack/internal/domain"

// DashboardStats are the portfolio-level counts behind the overview cards.
// Each project lands in at most one color bucket via its representative
// status: the worst classification across its five gateways, comparing the
// project plan against the rolled-up actual (red > yellow > green). Projects
// whose gateways are all grey are pending and count in no color bucket.
type DashboardStats struct {
	Total  int
	Active int // D4 actual still absent
	Green  int
	Yellow int
	Red    int
}

var statusRank = map[domain.Status]int{
	domain.StatusGrey:   0,
	domain.StatusGreen:  1,
	domain.StatusYellow: 2,
	domain.StatusRed:    3,
}

// ProjectStatus reduces a project to its representative status.
func ProjectStatus(p *domain.Project) domain.Status {
	worst := domain.StatusGrey
	for _, gw := range domain.GatewayOrder {
		s := ProjectGatewayStatus(p, gw)
		if statusRank[s] > statusRank[worst] {
			worst = s
		}
	}
	return worst
}

// CalculateStats walks the given projects and derives the dashboard counts.
// Rollups must be current; the calculator only reads.
func CalculateStats(projects []*domain.Project) DashboardStats {
	var stats DashboardStats
	for _, p := range projects {
		stats.Total++
		if p.Gateways[domain.D4].Actual.IsZero() {
			stats.Active++
		}
		switch ProjectStatus(p) {
		case domain.StatusGreen:
			stats.Green++
		case domain.StatusYellow:
			stats.Yellow++
		case domain.StatusRed:
			stats.Red++
		}
	}
	return stats
}

// AdherenceRate is the percentage of (project, module, gateway) facts
// completed on or before plan, among all facts where both the project plan
// and the module actual are present. An empty denominator yields 0.
func AdherenceRate(projects []*domain.Project) float64 {
	completed, onTime := 0, 0
	for _, p := range projects {
		for _, m := range p.Modules {
			for _, gw := range domain.GatewayOrder {
				plan := p.Gateways[gw].Plan
				actual := m.Gateways[gw].Actual
				if plan.IsZero() || actual.IsZero() {
					continue
				}
				completed++
				if !actual.After(plan) {
					onTime++
				}
			}
		}
	}
	if completed == 0 {
		return 0
	}
	return float64(onTime) / float64(completed) * 100
}

// AdherenceBreakdown counts module gateway statuses for one project, the
// data series behind the per-project stacked distribution.
type AdherenceBreakdown struct {
	Project string
	Green   int
	Yellow  int
	Red     int
}

// BreakdownByProject computes the status distribution of module-level
// gateway actuals per project. Grey (incomplete) facts are not counted.
func BreakdownByProject(projects []*domain.Project) []AdherenceBreakdown {
	out := make([]AdherenceBreakdown, 0, len(projects))
	for _, p := range projects {
		b := AdherenceBreakdown{Project: p.Name}
		for _, m := range p.Modules {
			for _, gw := range domain.GatewayOrder {
				if m.Gateways[gw].Actual.IsZero() {
					continue
				}
				switch ModuleGatewayStatus(p, m.Gateways, gw) {
				case domain.StatusGreen:
					b.Green++
				case domain.StatusYellow:
					b.Yellow++
				case domain.StatusRed:
					b.Red++
				}
			}
		}
		out = append(out, b)
	}
	return out
}

// FilterByType returns the projects whose type is in the given set. An empty
// or nil set selects everything.
func FilterByType(projects []*domain.Project, types []domain.ProjectType) []*domain.Project {
	if len(types) == 0 {
		return projects
	}
	want := make(map[domain.ProjectType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []*domain.Project
	for _, p := range projects {
		if want[p.Type] {
			out = append(out, p)
		}
	}
	return out
}
