package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/mwidmann/gatetrack/internal/db"
	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/repository"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

type archiveService struct {
	store    HierarchyStore
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewArchiveService(store HierarchyStore, uow db.UnitOfWork, observers ...UseCaseObserver) ArchiveService {
	return &archiveService{store: store, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Export mirrors the full tree into the relational archive. The snapshot is
// written in one transaction so a failure leaves the previous archive intact.
func (s *archiveService) Export(ctx context.Context) (count int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "archive-export",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"projects": count},
		})
	}()

	h, err := s.store.Load()
	if err != nil {
		return 0, fmt.Errorf("loading project data: %w", err)
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteArchiveRepo(tx).Export(ctx, h)
	})
	if err != nil {
		return 0, fmt.Errorf("exporting archive: %w", err)
	}
	return len(h.Projects), nil
}

var reportHeader = []string{
	"project_name", "project_type", "module_name", "sub_module_name",
	"gateway", "plan_date", "actual_date", "status", "source", "ecn",
}

// Report writes one CSV row per gateway slot, flattening the tree.
func (s *archiveService) Report(ctx context.Context, w io.Writer) error {
	h, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading project data: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	for _, p := range h.Projects {
		for _, gw := range domain.GatewayOrder {
			rec := p.Gateways[gw]
			status := rollup.ProjectGatewayStatus(p, gw)
			if err := writeReportRow(cw, p, "", "", gw, rec, status); err != nil {
				return err
			}
		}
		for _, m := range p.Modules {
			for _, gw := range domain.GatewayOrder {
				status := rollup.ModuleGatewayStatus(p, m.Gateways, gw)
				if err := writeReportRow(cw, p, m.Name, "", gw, m.Gateways[gw], status); err != nil {
					return err
				}
			}
			for _, sub := range m.SubModules {
				for _, gw := range domain.GatewayOrder {
					status := rollup.ModuleGatewayStatus(p, sub.Gateways, gw)
					if err := writeReportRow(cw, p, m.Name, sub.Name, gw, sub.Gateways[gw], status); err != nil {
						return err
					}
				}
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func writeReportRow(cw *csv.Writer, p *domain.Project, module, sub string, gw domain.GatewayID, rec *domain.GatewayRecord, status domain.Status) error {
	row := []string{
		p.Name, string(p.Type), module, sub,
		string(gw), rec.Plan.String(), rec.Actual.String(), string(status), string(rec.Source), rec.ChangeRef,
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
