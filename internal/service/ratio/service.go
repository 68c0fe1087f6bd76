// Package ratio manages the consumption ratio: grams per activity type and
// whether each type draws from a stash.
package ratio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ratioRepo interface {
	Get(ctx context.Context) (domain.ConsumptionRatio, error)
	Update(ctx context.Context, ratio domain.ConsumptionRatio) (domain.ConsumptionRatio, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements consumption ratio management.
type Service struct {
	ratios ratioRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new ratio service.
func NewService(log *slog.Logger, ratios ratioRepo, tx txManager) *Service {
	return &Service{
		ratios: ratios,
		tx:     tx,
		log:    log.With("service", "ratio"),
	}
}

// Get returns the current consumption ratio.
func (s *Service) Get(ctx context.Context) (domain.ConsumptionRatio, error) {
	r, err := s.ratios.Get(ctx)
	if err != nil {
		return domain.ConsumptionRatio{}, fmt.Errorf("get ratio: %w", err)
	}
	return r, nil
}

// Update applies the non-nil fields of input to the stored ratio.
func (s *Service) Update(ctx context.Context, input UpdateRatioInput) (domain.ConsumptionRatio, error) {
	if err := input.Validate(); err != nil {
		return domain.ConsumptionRatio{}, err
	}

	return s.modify(ctx, func(r *domain.ConsumptionRatio) error {
		input.apply(r)
		return nil
	})
}

// SetCustom adds or replaces a custom activity type.
func (s *Service) SetCustom(ctx context.Context, id string, grams decimal.Decimal, deducts bool) (domain.ConsumptionRatio, error) {
	input := SetCustomInput{ID: id, Grams: grams, Deducts: deducts}
	if err := input.Validate(); err != nil {
		return domain.ConsumptionRatio{}, err
	}

	updated, err := s.modify(ctx, func(r *domain.ConsumptionRatio) error {
		if r.Custom == nil {
			r.Custom = make(map[string]domain.CustomRatio)
		}
		r.Custom[input.ID] = domain.CustomRatio{Grams: input.Grams, Deducts: input.Deducts}
		return nil
	})
	if err != nil {
		return domain.ConsumptionRatio{}, err
	}

	s.log.InfoContext(ctx, "custom activity type set",
		slog.String("custom_activity_id", input.ID),
		slog.String("grams", input.Grams.String()),
		slog.Bool("deducts", input.Deducts),
	)
	return updated, nil
}

// RemoveCustom deletes a custom activity type. Returns domain.ErrNotFound if absent.
func (s *Service) RemoveCustom(ctx context.Context, id string) (domain.ConsumptionRatio, error) {
	return s.modify(ctx, func(r *domain.ConsumptionRatio) error {
		if _, ok := r.Custom[id]; !ok {
			return fmt.Errorf("custom activity %q: %w", id, domain.ErrNotFound)
		}
		delete(r.Custom, id)
		return nil
	})
}

// modify runs read-modify-write of the singleton ratio in one transaction.
func (s *Service) modify(ctx context.Context, fn func(r *domain.ConsumptionRatio) error) (domain.ConsumptionRatio, error) {
	var updated domain.ConsumptionRatio

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.ratios.Get(txCtx)
		if err != nil {
			return fmt.Errorf("get ratio: %w", err)
		}

		if err := fn(&current); err != nil {
			return err
		}
		if err := current.Validate(); err != nil {
			return err
		}

		updated, err = s.ratios.Update(txCtx, current)
		if err != nil {
			return fmt.Errorf("update ratio: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ConsumptionRatio{}, err
	}

	return updated, nil
}
