package ports

import (
	"context"
	"net/url"

	"dispatch-store/internal/features/resource/domain"
)

// Gateway defines the secondary port turning one intent into one backend call.
// Implementations validate the request first and return a *domain.ValidationError
// without touching the network when it is malformed.
type Gateway interface {
	List(ctx context.Context, params url.Values) (domain.Collection, error)
	Get(ctx context.Context, id domain.ID) (domain.Record, error)
	Create(ctx context.Context, payload domain.Record) (domain.Record, error)
	Update(ctx context.Context, id domain.ID, payload domain.Record) (domain.Record, error)
	Delete(ctx context.Context, id domain.ID) error
	ListByKey(ctx context.Context, key, value string) (domain.Collection, error)
}

// ResourceService defines the primary port for one resource's store operations.
type ResourceService interface {
	Definition() domain.Definition

	List(ctx context.Context, params url.Values) (domain.Collection, error)
	GetByID(ctx context.Context, id domain.ID) (domain.Record, error)
	Create(ctx context.Context, payload domain.Record) (domain.Record, error)
	Update(ctx context.Context, id domain.ID, payload domain.Record) (domain.Record, error)
	Remove(ctx context.Context, id domain.ID) error
	FetchByKey(ctx context.Context, key, value string) (domain.Collection, error)

	Collection() domain.Collection
	Detail() (domain.Record, bool)
	OperationStatus(kind domain.OperationKind) domain.OperationStatus
	SubCache(key, value string) (domain.Collection, bool)
	Acknowledge(kind domain.OperationKind)
	InvalidateSubCache(key string)
	Reset()
}
