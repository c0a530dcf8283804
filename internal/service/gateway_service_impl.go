package service

import (
	"context"
	"fmt"

	"github.com/mwidmann/gatetrack/internal/domain"
)

type gatewayService struct {
	store HierarchyStore
}

func NewGatewayService(store HierarchyStore) GatewayService {
	return &gatewayService{store: store}
}

func (s *gatewayService) SetPlan(ctx context.Context, ref GatewayRef, date string) error {
	d, err := domain.ParseDate(date)
	if err != nil {
		return fmt.Errorf("plan date: %w", err)
	}
	return mutate(s.store, func(h *domain.Hierarchy) error {
		slot, err := resolveSlot(h, ref)
		if err != nil {
			return err
		}
		slot.record.Plan = d
		return nil
	})
}

func (s *gatewayService) SetActual(ctx context.Context, ref GatewayRef, date string) error {
	d, err := domain.ParseDate(date)
	if err != nil {
		return fmt.Errorf("actual date: %w", err)
	}
	return mutate(s.store, func(h *domain.Hierarchy) error {
		slot, err := resolveSlot(h, ref)
		if err != nil {
			return err
		}
		if slot.derived {
			return fmt.Errorf("%s of %q: %w", ref.Gateway, ref.Project, domain.ErrDerivedActual)
		}
		slot.record.Actual = d
		slot.record.Source = domain.SourceManual
		return nil
	})
}

func (s *gatewayService) SetChangeRef(ctx context.Context, ref GatewayRef, changeRef string) error {
	return mutate(s.store, func(h *domain.Hierarchy) error {
		slot, err := resolveSlot(h, ref)
		if err != nil {
			return err
		}
		slot.record.ChangeRef = changeRef
		return nil
	})
}
