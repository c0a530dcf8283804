package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHierarchy() *domain.Hierarchy {
	h := domain.NewHierarchy()
	p := h.AddProject("Alpha", domain.TypeMajor)
	p.Gateways[domain.D0].Plan = domain.MustDate("2024-01-01")
	p.Gateways[domain.D1].Plan = domain.MustDate("2024-02-05")

	m := domain.NewModule(h.NextID(), "ECU")
	a := domain.NewSubModule(h.NextID(), "ECU-A")
	b := domain.NewSubModule(h.NextID(), "ECU-B")
	a.Gateways[domain.D1].Actual = domain.MustDate("2024-02-01")
	a.Gateways[domain.D1].ChangeRef = "ECN-4711"
	b.Gateways[domain.D1].Actual = domain.MustDate("2024-02-10")
	m.SubModules = []*domain.SubModule{a, b}
	p.Modules = []*domain.Module{m}
	rollup.RecomputeAll(h)
	return h
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(sampleHierarchy()))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.Projects, 1)

	p := got.Projects[0]
	assert.Equal(t, "Alpha", p.Name)
	assert.Equal(t, domain.TypeMajor, p.Type)
	assert.Equal(t, "2024-02-05", p.Gateways[domain.D1].Plan.String())
	// Rollup re-ran on load: derived actual present and marked derived.
	assert.Equal(t, "2024-02-10", p.Gateways[domain.D1].Actual.String())
	assert.Equal(t, domain.SourceDerived, p.Gateways[domain.D1].Source)

	m := p.Modules[0]
	require.Len(t, m.SubModules, 2)
	assert.Equal(t, "ECN-4711", m.SubModules[0].Gateways[domain.D1].ChangeRef)
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "projects.json"))
	h, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, h.Projects)
}

func TestFileStore_LoadRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	data := `[
	  {"id": 1, "name": "A", "type": "Major", "gateways": {}, "modules": []},
	  {"id": 1, "name": "B", "type": "Minor", "gateways": {}, "modules": []}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
}

func TestFileStore_LoadRejectsMalformedDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	data := `[{"id": 1, "name": "A", "type": "Major",
	  "gateways": {"D0": {"p": "01.02.2024", "a": "", "ecn": ""}}, "modules": []}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, domain.ErrMalformedDate)
}

func TestFileStore_LoadFillsMissingGateways(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	data := `[{"id": 1, "name": "A", "type": "Major",
	  "gateways": {"D0": {"p": "2024-01-01", "a": "", "ecn": ""}}, "modules": []}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	h, err := NewFileStore(path).Load()
	require.NoError(t, err)
	for _, gw := range domain.GatewayOrder {
		require.NotNil(t, h.Projects[0].Gateways[gw])
	}
}

func TestFileStore_Backup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")
	s := NewFileStore(path)

	// Nothing to back up yet.
	got, err := s.Backup()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(sampleHierarchy()))
	backupPath, err := s.Backup()
	require.NoError(t, err)
	require.NotEmpty(t, backupPath)

	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	copied, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, orig, copied)

	// Second call the same day is a no-op returning the same path.
	again, err := s.Backup()
	require.NoError(t, err)
	assert.Equal(t, backupPath, again)
}
