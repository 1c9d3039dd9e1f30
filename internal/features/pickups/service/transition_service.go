package service

import (
	"context"
	"fmt"

	"dispatch-store/internal/core/logger"
	"dispatch-store/internal/features/pickups/domain"
	"dispatch-store/internal/features/pickups/ports"
	resource "dispatch-store/internal/features/resource/domain"
	"dispatch-store/internal/features/resource/pipeline"
	"dispatch-store/internal/features/resource/store"

	"go.uber.org/zap"
)

// TransitionServiceImpl implements ports.PickupService. It shares the pickup
// store with the generic resource service so both see the same caches.
type TransitionServiceImpl struct {
	gateway ports.StatusGateway
	store   *store.Store
	log     *zap.Logger
}

var _ ports.PickupService = (*TransitionServiceImpl)(nil)

// NewTransitionService creates a new TransitionServiceImpl.
func NewTransitionService(gateway ports.StatusGateway, st *store.Store) *TransitionServiceImpl {
	return &TransitionServiceImpl{
		gateway: gateway,
		store:   st,
		log:     logger.For("lifecycle"),
	}
}

// Transition moves pickup id to target. Illegal moves and missing cancellation
// notes are rejected without a backend call. On success the record returned by
// the backend replaces the cached one, whatever status it carries.
func (s *TransitionServiceImpl) Transition(ctx context.Context, id resource.ID, target domain.Status, notes string) (resource.Record, error) {
	r, err := pipeline.Run(ctx, s.store, domain.Definition.Name, resource.OpTransition,
		func(ctx context.Context) (resource.Record, error) {
			from := s.currentStatus(id)
			if err := domain.CheckTransition(from, target, notes); err != nil {
				s.log.Info("Transition refused",
					zap.String("id", string(id)),
					zap.String("from", string(from)),
					zap.String("to", string(target)),
					zap.Error(err),
				)
				return nil, err
			}

			r, err := s.gateway.UpdateStatus(ctx, id, target, notes)
			if err != nil {
				return nil, err
			}
			if got := domain.Status(r.String(domain.StatusField)); got != target {
				s.log.Warn("Backend settled a different status",
					zap.String("id", string(id)),
					zap.String("requested", string(target)),
					zap.String("actual", string(got)),
				)
			}
			return r, nil
		},
		func(c *store.Caches, r resource.Record) { c.UpdateSucceeded(r) },
	)
	if err != nil {
		return nil, fmt.Errorf("service: failed to move pickup %s to %s: %w", id, target, err)
	}
	return r, nil
}

// AllowedTargets reports the cached status of id and where it may move next.
func (s *TransitionServiceImpl) AllowedTargets(id resource.ID) (domain.Status, []domain.Status, bool) {
	from := s.currentStatus(id)
	if from == "" {
		return "", nil, false
	}
	return from, domain.AllowedTargets(from), true
}

func (s *TransitionServiceImpl) currentStatus(id resource.ID) domain.Status {
	r, ok := s.store.Find(id)
	if !ok {
		return ""
	}
	return domain.Status(r.String(domain.StatusField))
}
