package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mwidmann/gatetrack/internal/importer"
)

type importService struct {
	store    HierarchyStore
	observer UseCaseObserver
}

func NewImportService(store HierarchyStore, observers ...UseCaseObserver) ImportService {
	return &importService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*importer.Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()
	return s.ImportCSV(ctx, f)
}

func (s *importService) ImportCSV(ctx context.Context, r io.Reader) (outcome *importer.Outcome, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-csv",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	rows, err := importer.ParseCSV(r)
	if err != nil {
		return nil, err
	}
	fields["rows"] = len(rows)

	h, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading project data: %w", err)
	}

	merged, outcome, err := importer.Merge(rows, h)
	if err != nil {
		return nil, err
	}
	fields["projects_created"] = outcome.ProjectsCreated
	fields["modules_created"] = outcome.ModulesCreated

	if err = s.store.Save(merged); err != nil {
		return nil, fmt.Errorf("saving project data: %w", err)
	}
	return outcome, nil
}

func (s *importService) Template() string {
	return importer.Template()
}
