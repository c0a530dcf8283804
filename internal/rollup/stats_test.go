package rollup

import (
	"testing"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectWithModuleActual(id int, name string, plan, actual string) *domain.Project {
	p := domain.NewProject(id, name, domain.TypeMajor)
	p.Gateways[domain.D1].Plan = domain.MustDate(plan)
	m := domain.NewModule(id+100, "M1")
	m.Gateways[domain.D1].Actual = domain.MustDate(actual)
	p.Modules = []*domain.Module{m}
	Recompute(p)
	return p
}

func TestCalculateStats_WorstGatewayBucketing(t *testing.T) {
	onTrack := projectWithModuleActual(1, "Green", "2024-02-05", "2024-02-01")
	atRisk := projectWithModuleActual(2, "Yellow", "2024-02-05", "2024-02-10")
	critical := projectWithModuleActual(3, "Red", "2024-02-05", "2024-04-01")
	pending := domain.NewProject(4, "Pending", domain.TypeCarryover)

	// The critical project is also green at D0; worst status wins.
	critical.Gateways[domain.D0].Plan = domain.MustDate("2024-01-01")
	critical.Modules[0].Gateways[domain.D0].Actual = domain.MustDate("2024-01-01")
	Recompute(critical)

	stats := CalculateStats([]*domain.Project{onTrack, atRisk, critical, pending})

	assert.Equal(t, DashboardStats{Total: 4, Active: 4, Green: 1, Yellow: 1, Red: 1}, stats)
}

func TestCalculateStats_ActiveMeansNoD4Actual(t *testing.T) {
	closed := domain.NewProject(1, "Closed", domain.TypeMinor)
	closed.Gateways[domain.D4].Actual = domain.MustDate("2024-06-01")
	open := domain.NewProject(2, "Open", domain.TypeMinor)

	stats := CalculateStats([]*domain.Project{closed, open})

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
}

func TestAdherenceRate(t *testing.T) {
	p := domain.NewProject(1, "Alpha", domain.TypeMajor)
	p.Gateways[domain.D0].Plan = domain.MustDate("2024-01-01")
	p.Gateways[domain.D1].Plan = domain.MustDate("2024-02-01")

	m := domain.NewModule(2, "ECU")
	m.Gateways[domain.D0].Actual = domain.MustDate("2024-01-01") // on time
	m.Gateways[domain.D1].Actual = domain.MustDate("2024-02-10") // late
	// D2-D4: no plan or actual, not counted.
	p.Modules = []*domain.Module{m}
	Recompute(p)

	assert.InDelta(t, 50.0, AdherenceRate([]*domain.Project{p}), 0.001)
}

func TestAdherenceRate_EmptyDenominator(t *testing.T) {
	p := domain.NewProject(1, "Alpha", domain.TypeMajor)
	p.Modules = []*domain.Module{domain.NewModule(2, "ECU")}

	assert.Equal(t, 0.0, AdherenceRate([]*domain.Project{p}))
	assert.Equal(t, 0.0, AdherenceRate(nil))
}

func TestBreakdownByProject(t *testing.T) {
	p := domain.NewProject(1, "Alpha", domain.TypeMajor)
	p.Gateways[domain.D0].Plan = domain.MustDate("2024-01-01")
	p.Gateways[domain.D1].Plan = domain.MustDate("2024-02-01")
	m := domain.NewModule(2, "ECU")
	m.Gateways[domain.D0].Actual = domain.MustDate("2023-12-28")
	m.Gateways[domain.D1].Actual = domain.MustDate("2024-03-15")
	p.Modules = []*domain.Module{m}
	Recompute(p)

	got := BreakdownByProject([]*domain.Project{p})
	require.Len(t, got, 1)
	assert.Equal(t, AdherenceBreakdown{Project: "Alpha", Green: 1, Yellow: 0, Red: 1}, got[0])
}

func TestFilterByType(t *testing.T) {
	major := domain.NewProject(1, "A", domain.TypeMajor)
	minor := domain.NewProject(2, "B", domain.TypeMinor)
	carry := domain.NewProject(3, "C", domain.TypeCarryover)
	all := []*domain.Project{major, minor, carry}

	assert.Equal(t, all, FilterByType(all, nil))
	got := FilterByType(all, []domain.ProjectType{domain.TypeMajor, domain.TypeCarryover})
	assert.Equal(t, []*domain.Project{major, carry}, got)
}

// End-to-end scenario: rolled-up module actual classified against the
// project plan.
func TestRollupThenClassify_EndToEnd(t *testing.T) {
	p := domain.NewProject(1, "Alpha", domain.TypeMajor)
	p.Gateways[domain.D1].Plan = domain.MustDate("2024-02-05")

	ecu := domain.NewModule(2, "ECU")
	a := domain.NewSubModule(3, "ECU-A")
	b := domain.NewSubModule(4, "ECU-B")
	a.Gateways[domain.D1].Actual = domain.MustDate("2024-02-01")
	b.Gateways[domain.D1].Actual = domain.MustDate("2024-02-10")
	ecu.SubModules = []*domain.SubModule{a, b}
	p.Modules = []*domain.Module{ecu}

	Recompute(p)

	assert.Equal(t, "2024-02-10", ecu.Gateways[domain.D1].Actual.String())
	// 5 days late: at risk.
	assert.Equal(t, domain.StatusYellow, ProjectGatewayStatus(p, domain.D1))
}
