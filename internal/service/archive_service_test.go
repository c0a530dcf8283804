package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/repository"
	"github.com/mwidmann/gatetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveService_Export(t *testing.T) {
	s := seededStore(t, seedAlpha)
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := NewArchiveService(s, testutil.NewTestUoW(database))

	count, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repository.NewSQLiteArchiveRepo(database).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Projects, 1)
	alpha := got.FindProject("Alpha")
	require.NotNil(t, alpha)
	assert.Len(t, alpha.Modules, 2)
}

func TestArchiveService_Export_RollbackOnFailure(t *testing.T) {
	s := seededStore(t, seedAlpha)
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	// First export succeeds and populates the archive.
	_, err := NewArchiveService(s, testutil.NewTestUoW(database)).Export(ctx)
	require.NoError(t, err)

	boom := errors.New("disk full")
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 5, Err: boom}
	_, err = NewArchiveService(s, failing).Export(ctx)
	require.ErrorIs(t, err, boom)

	// The previous snapshot survived the failed transaction.
	got, err := repository.NewSQLiteArchiveRepo(database).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Projects, 1)
	assert.NotNil(t, got.FindProject("Alpha"))
}

func TestArchiveService_Report(t *testing.T) {
	s := seededStore(t, seedAlpha)
	var buf bytes.Buffer
	svc := NewArchiveService(s, nil)

	require.NoError(t, svc.Report(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, reportHeader, records[0])

	// 5 project rows, 2 modules x 5, 2 sub-modules x 5, plus the header.
	assert.Len(t, records, 1+5+10+10)

	byKey := make(map[string][]string)
	for _, rec := range records[1:] {
		byKey[rec[2]+"/"+rec[3]+"/"+rec[4]] = rec
	}

	// ECU's derived D1 actual is late against the project plan.
	ecuD1 := byKey["ECU//D1"]
	require.NotNil(t, ecuD1)
	assert.Equal(t, "2024-02-10", ecuD1[6])
	assert.Equal(t, string(domain.StatusYellow), ecuD1[7])
	assert.Equal(t, string(domain.SourceDerived), ecuD1[8])

	// Project-level D1 is still grey: Harness has not reported.
	projD1 := byKey["//D1"]
	require.NotNil(t, projD1)
	assert.Equal(t, "2024-02-05", projD1[5])
	assert.Equal(t, "", projD1[6])
	assert.Equal(t, string(domain.StatusGrey), projD1[7])
}
