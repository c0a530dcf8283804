package service

import (
	"context"
	"strings"
	"testing"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportService_ImportCSV_CreatesAndUpdates(t *testing.T) {
	s := seededStore(t, seedAlpha)
	ctx := context.Background()
	svc := NewImportService(s)

	csv := strings.Join([]string{
		"project_name,project_type,module_name,gateway,plan_date,actual_date,ecn",
		"Alpha,,Harness,D0,2024-01-02,2024-01-04,",
		"Delta,Minor,Body,D0,2024-05-01,,ECN-7",
	}, "\n")

	outcome, err := svc.ImportCSV(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.RowsApplied)
	assert.Equal(t, 1, outcome.ProjectsCreated)
	assert.Equal(t, 1, outcome.ModulesCreated)

	h, err := s.Load()
	require.NoError(t, err)
	harness := h.FindProject("Alpha").FindModule("Harness")
	assert.Equal(t, "2024-01-04", harness.Gateways[domain.D0].Actual.String())

	delta := h.FindProject("Delta")
	require.NotNil(t, delta)
	assert.Equal(t, domain.TypeMinor, delta.Type)
	assert.Equal(t, "ECN-7", delta.FindModule("Body").Gateways[domain.D0].ChangeRef)
}

func TestImportService_ImportCSV_InvalidLeavesStoreUntouched(t *testing.T) {
	s := seededStore(t, seedAlpha)
	ctx := context.Background()
	svc := NewImportService(s)

	before, err := s.Load()
	require.NoError(t, err)

	csv := strings.Join([]string{
		"project_name,project_type,module_name,gateway,plan_date,actual_date,ecn",
		"Alpha,,Harness,D0,2024-01-02,,",
		"Alpha,,Harness,D9,not-a-date,,",
	}, "\n")

	_, err = svc.ImportCSV(ctx, strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	after, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestImportService_ImportFile_Missing(t *testing.T) {
	svc := NewImportService(testStore(t))
	_, err := svc.ImportFile(context.Background(), "/nonexistent/upload.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening import file")
}

func TestImportService_Template(t *testing.T) {
	svc := NewImportService(testStore(t))
	tmpl := svc.Template()
	assert.True(t, strings.HasPrefix(tmpl, strings.Join(importer.Header, ",")))
}
