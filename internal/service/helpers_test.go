package service

import (
	"path/filepath"
	"testing"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/store"
	"github.com/mwidmann/gatetrack/internal/testutil"
)

func testStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFileStore(filepath.Join(t.TempDir(), "projects.json"))
}

func seededStore(t *testing.T, seed func(h *domain.Hierarchy)) *store.FileStore {
	t.Helper()
	s := testStore(t)
	h := domain.NewHierarchy()
	seed(h)
	if err := s.Save(h); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return s
}

func seedAlpha(h *domain.Hierarchy) {
	testutil.AddProject(h, "Alpha",
		testutil.WithType(domain.TypeMajor),
		testutil.WithPlan(domain.D0, "2024-01-01"),
		testutil.WithPlan(domain.D1, "2024-02-05"),
		testutil.WithModule("ECU",
			testutil.WithSubModule("ECU-A", map[domain.GatewayID]string{domain.D1: "2024-02-01"}),
			testutil.WithSubModule("ECU-B", map[domain.GatewayID]string{domain.D1: "2024-02-10"}),
		),
		testutil.WithModule("Harness"),
	)
}
