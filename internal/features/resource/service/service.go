package service

import (
	"context"
	"fmt"
	"net/url"

	"dispatch-store/internal/features/resource/domain"
	"dispatch-store/internal/features/resource/pipeline"
	"dispatch-store/internal/features/resource/ports"
	"dispatch-store/internal/features/resource/store"
)

// ResourceServiceImpl implements ports.ResourceService on top of a gateway and
// a store. Every operation goes through the mutation pipeline.
type ResourceServiceImpl struct {
	gateway ports.Gateway
	store   *store.Store
}

var _ ports.ResourceService = (*ResourceServiceImpl)(nil)

// NewResourceService creates a new ResourceServiceImpl.
func NewResourceService(gateway ports.Gateway, st *store.Store) *ResourceServiceImpl {
	return &ResourceServiceImpl{
		gateway: gateway,
		store:   st,
	}
}

// Definition returns the resource definition.
func (s *ResourceServiceImpl) Definition() domain.Definition {
	return s.store.Definition()
}

// Store returns the underlying store, shared with lifecycle services.
func (s *ResourceServiceImpl) Store() *store.Store {
	return s.store
}

func (s *ResourceServiceImpl) name() string {
	return s.store.Definition().Name
}

// List fetches a page and replaces the collection with it.
func (s *ResourceServiceImpl) List(ctx context.Context, params url.Values) (domain.Collection, error) {
	col, err := pipeline.Run(ctx, s.store, s.name(), domain.OpFetchList,
		func(ctx context.Context) (domain.Collection, error) {
			return s.gateway.List(ctx, params)
		},
		func(c *store.Caches, col domain.Collection) { c.ListSucceeded(col) },
	)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("service: failed to list %s: %w", s.name(), err)
	}
	return col, nil
}

// GetByID fetches one record into the detail cache.
func (s *ResourceServiceImpl) GetByID(ctx context.Context, id domain.ID) (domain.Record, error) {
	r, err := pipeline.Run(ctx, s.store, s.name(), domain.OpFetchOne,
		func(ctx context.Context) (domain.Record, error) {
			return s.gateway.Get(ctx, id)
		},
		func(c *store.Caches, r domain.Record) { c.OneSucceeded(r) },
	)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get %s %s: %w", s.name(), id, err)
	}
	return r, nil
}

// Create creates a record and inserts the server's version at the head.
func (s *ResourceServiceImpl) Create(ctx context.Context, payload domain.Record) (domain.Record, error) {
	r, err := pipeline.Run(ctx, s.store, s.name(), domain.OpCreate,
		func(ctx context.Context) (domain.Record, error) {
			return s.gateway.Create(ctx, payload)
		},
		func(c *store.Caches, r domain.Record) { c.CreateSucceeded(r) },
	)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create %s: %w", s.name(), err)
	}
	return r, nil
}

// Update replaces a record with the server's full version.
func (s *ResourceServiceImpl) Update(ctx context.Context, id domain.ID, payload domain.Record) (domain.Record, error) {
	r, err := pipeline.Run(ctx, s.store, s.name(), domain.OpUpdate,
		func(ctx context.Context) (domain.Record, error) {
			return s.gateway.Update(ctx, id, payload)
		},
		func(c *store.Caches, r domain.Record) { c.UpdateSucceeded(r) },
	)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update %s %s: %w", s.name(), id, err)
	}
	return r, nil
}

// Remove deletes a record and evicts it from the collection and detail caches.
func (s *ResourceServiceImpl) Remove(ctx context.Context, id domain.ID) error {
	_, err := pipeline.Run(ctx, s.store, s.name(), domain.OpDelete,
		func(ctx context.Context) (domain.ID, error) {
			return id, s.gateway.Delete(ctx, id)
		},
		func(c *store.Caches, id domain.ID) { c.DeleteSucceeded(id) },
	)
	if err != nil {
		return fmt.Errorf("service: failed to remove %s %s: %w", s.name(), id, err)
	}
	return nil
}

// FetchByKey fetches the records matching key=value into their sub-cache.
func (s *ResourceServiceImpl) FetchByKey(ctx context.Context, key, value string) (domain.Collection, error) {
	col, err := pipeline.Run(ctx, s.store, s.name(), domain.OpFetchByKey,
		func(ctx context.Context) (domain.Collection, error) {
			return s.gateway.ListByKey(ctx, key, value)
		},
		func(c *store.Caches, col domain.Collection) { c.KeySucceeded(key, value, col) },
	)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("service: failed to fetch %s by %s: %w", s.name(), key, err)
	}
	return col, nil
}

// Collection returns the collection snapshot.
func (s *ResourceServiceImpl) Collection() domain.Collection {
	return s.store.Collection()
}

// Detail returns the detail snapshot.
func (s *ResourceServiceImpl) Detail() (domain.Record, bool) {
	return s.store.Detail()
}

// OperationStatus returns the status of kind.
func (s *ResourceServiceImpl) OperationStatus(kind domain.OperationKind) domain.OperationStatus {
	return s.store.OperationStatus(kind)
}

// SubCache returns the keyed snapshot for key=value.
func (s *ResourceServiceImpl) SubCache(key, value string) (domain.Collection, bool) {
	return s.store.SubCache(key, value)
}

// Acknowledge clears the error and success flags of kind.
func (s *ResourceServiceImpl) Acknowledge(kind domain.OperationKind) {
	s.store.Acknowledge(kind)
}

// InvalidateSubCache drops the keyed views under key.
func (s *ResourceServiceImpl) InvalidateSubCache(key string) {
	s.store.InvalidateSubCache(key)
}

// Reset empties the store per the resource's reset policy.
func (s *ResourceServiceImpl) Reset() {
	s.store.Reset()
}
