package rollup

import "github.com/mwidmann/gatetrack/internal/domain"

// YellowWindowDays is the delay window that separates "at risk" from
// "critical": 1-30 days late is yellow, beyond that red.
const YellowWindowDays = 30

// Classify maps a (plan, actual) pair to its RAG status. Pure and total:
// every combination of present/absent dates maps to exactly one status.
//
// An absent actual is always pending. An absent plan is also pending even
// when an actual exists, because "on time" is undefined without a plan.
func Classify(plan, actual domain.Date) domain.Status {
	if actual.IsZero() || plan.IsZero() {
		return domain.StatusGrey
	}
	delta := actual.DaysSince(plan)
	switch {
	case delta <= 0:
		return domain.StatusGreen
	case delta <= YellowWindowDays:
		return domain.StatusYellow
	default:
		return domain.StatusRed
	}
}

// ProjectGatewayStatus classifies a project's own gateway: project plan
// against the rolled-up actual.
func ProjectGatewayStatus(p *domain.Project, gw domain.GatewayID) domain.Status {
	return Classify(p.Gateways[gw].Plan, p.Gateways[gw].Actual)
}

// ModuleGatewayStatus classifies a module or sub-module gateway. The
// comparison baseline is always the owning project's plan, never the
// module's own plan: all parts of a gateway share one program-level due date.
func ModuleGatewayStatus(p *domain.Project, g domain.Gateways, gw domain.GatewayID) domain.Status {
	return Classify(p.Gateways[gw].Plan, g[gw].Actual)
}
