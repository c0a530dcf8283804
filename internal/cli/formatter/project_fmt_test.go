package formatter

import (
	"testing"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inspectFixture(t *testing.T) *domain.Project {
	t.Helper()
	h := domain.NewHierarchy()
	p := testutil.AddProject(h, "Alpha",
		testutil.WithType(domain.TypeMajor),
		testutil.WithPlan(domain.D1, "2024-02-05"),
		testutil.WithModule("ECU",
			testutil.WithChangeRef(domain.D1, "ECN-9"),
			testutil.WithSubModule("ECU-A", map[domain.GatewayID]string{domain.D1: "2024-02-01"}),
		),
	)
	require.NotNil(t, p)
	return p
}

func TestFormatProjectInspect_ShowsTreeAndDerivedMark(t *testing.T) {
	out := FormatProjectInspect(inspectFixture(t))
	assert.Contains(t, out, "ALPHA")
	assert.Contains(t, out, "ECU")
	assert.Contains(t, out, "ECU-A")
	assert.Contains(t, out, "ECN-9")
	assert.Contains(t, out, "Prototype")
	// ECU's D1 actual is rolled up from ECU-A and carries the derived mark.
	assert.Contains(t, out, "2024-02-01")
	assert.Contains(t, out, "derived from children")
}

func TestFormatProjectList_OneRowPerProject(t *testing.T) {
	h := domain.NewHierarchy()
	testutil.AddProject(h, "Alpha", testutil.WithType(domain.TypeMajor))
	testutil.AddProject(h, "Beta")

	out := FormatProjectList(h.Projects)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "D4")
	assert.Contains(t, out, "PENDING")
}
