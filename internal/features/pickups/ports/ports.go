package ports

import (
	"context"

	"dispatch-store/internal/features/pickups/domain"
	resource "dispatch-store/internal/features/resource/domain"
)

// StatusGateway defines the secondary port sending a status change to the backend.
type StatusGateway interface {
	UpdateStatus(ctx context.Context, id resource.ID, status domain.Status, notes string) (resource.Record, error)
}

// PickupService defines the primary port for lifecycle operations.
type PickupService interface {
	Transition(ctx context.Context, id resource.ID, target domain.Status, notes string) (resource.Record, error)
	AllowedTargets(id resource.ID) (current domain.Status, targets []domain.Status, known bool)
}
