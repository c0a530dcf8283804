package importer

import (
	"testing"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingHierarchy() *domain.Hierarchy {
	h := domain.NewHierarchy()
	p := h.AddProject("Alpha", domain.TypeMajor)
	p.Gateways[domain.D1].Plan = domain.MustDate("2024-02-05")
	m := domain.NewModule(h.NextID(), "ECU")
	m.Gateways[domain.D1].Actual = domain.MustDate("2024-02-01")
	m.Gateways[domain.D1].ChangeRef = "ECN-1"
	p.Modules = append(p.Modules, m)
	rollup.RecomputeAll(h)
	return h
}

func TestMerge_UpdatesExistingModule(t *testing.T) {
	h := existingHierarchy()

	merged, outcome, err := Merge([]Row{{
		Line: 1, ProjectName: "Alpha", ModuleName: "ECU",
		Gateway: "D1", ActualDate: "2024-02-10",
	}}, h)
	require.NoError(t, err)

	assert.Equal(t, &Outcome{RowsApplied: 1}, outcome)
	m := merged.FindProject("Alpha").FindModule("ECU")
	assert.Equal(t, "2024-02-10", m.Gateways[domain.D1].Actual.String())
	// Rollup ran: the project actual follows its single module.
	assert.Equal(t, "2024-02-10", merged.FindProject("Alpha").Gateways[domain.D1].Actual.String())
}

func TestMerge_CreatesProjectAndModule(t *testing.T) {
	h := existingHierarchy()

	merged, outcome, err := Merge([]Row{{
		Line: 1, ProjectName: "Beta", ProjectType: "Minor", ModuleName: "BMS",
		Gateway: "D0", PlanDate: "2024-03-01",
	}}, h)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.ProjectsCreated)
	assert.Equal(t, 1, outcome.ModulesCreated)

	beta := merged.FindProject("Beta")
	require.NotNil(t, beta)
	assert.Equal(t, domain.TypeMinor, beta.Type)
	// The gateway set is complete even for barely-touched entities.
	for _, gw := range domain.GatewayOrder {
		require.NotNil(t, beta.Gateways[gw])
	}
	bms := beta.FindModule("BMS")
	require.NotNil(t, bms)
	assert.Equal(t, "2024-03-01", bms.Gateways[domain.D0].Plan.String())

	// Fresh IDs do not collide with existing ones.
	require.NoError(t, merged.ValidateIdentity())
}

func TestMerge_BlankFieldsNeverOverwrite(t *testing.T) {
	h := existingHierarchy()

	merged, _, err := Merge([]Row{{
		Line: 1, ProjectName: "Alpha", ModuleName: "ECU",
		Gateway: "D1", PlanDate: "2024-02-06", ActualDate: "", ChangeRef: "",
	}}, h)
	require.NoError(t, err)

	rec := merged.FindProject("Alpha").FindModule("ECU").Gateways[domain.D1]
	assert.Equal(t, "2024-02-06", rec.Plan.String(), "supplied field overwrites")
	assert.Equal(t, "2024-02-01", rec.Actual.String(), "blank actual keeps existing")
	assert.Equal(t, "ECN-1", rec.ChangeRef, "blank ecn keeps existing")
}

func TestMerge_BlankModuleNameTargetsProject(t *testing.T) {
	h := existingHierarchy()

	merged, _, err := Merge([]Row{{
		Line: 1, ProjectName: "Alpha", ModuleName: "",
		Gateway: "D2", PlanDate: "2024-05-01", ActualDate: "2024-05-02",
	}}, h)
	require.NoError(t, err)

	p := merged.FindProject("Alpha")
	assert.Equal(t, "2024-05-01", p.Gateways[domain.D2].Plan.String())
	// Alpha has modules, so its actual is derived; the row's actual is refused
	// and the rollup (incomplete at D2) keeps it empty.
	assert.True(t, p.Gateways[domain.D2].Actual.IsZero())
}

func TestMerge_AtomicOnBadRow(t *testing.T) {
	h := existingHierarchy()
	before := h.Clone()

	rows := []Row{
		{Line: 1, ProjectName: "Alpha", ModuleName: "ECU", Gateway: "D1", ActualDate: "2024-02-20"},
		{Line: 2, ProjectName: "Alpha", ModuleName: "ECU", Gateway: "D2", ActualDate: "20/02/2024"},
	}
	merged, outcome, err := Merge(rows, h)

	require.Error(t, err)
	assert.Nil(t, merged)
	assert.Nil(t, outcome)
	assert.Contains(t, err.Error(), "row 2, actual_date")
	// The input hierarchy is untouched, including the valid first row.
	assert.Equal(t, before, h)
}

func TestMerge_UnknownGatewayRejected(t *testing.T) {
	h := existingHierarchy()
	_, _, err := Merge([]Row{{Line: 1, ProjectName: "Alpha", Gateway: "D7"}}, h)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1, gateway")
}

func TestMerge_DuplicateProjectNamesRejected(t *testing.T) {
	h := existingHierarchy()
	h.AddProject("Alpha", domain.TypeMinor) // same name twice

	_, _, err := Merge([]Row{{Line: 1, ProjectName: "Alpha", Gateway: "D0"}}, h)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestMerge_CollectsAllViolations(t *testing.T) {
	rows := []Row{
		{Line: 1, ProjectName: "", Gateway: "bogus", PlanDate: "x"},
	}
	_, _, err := Merge(rows, domain.NewHierarchy())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 errors")
}
