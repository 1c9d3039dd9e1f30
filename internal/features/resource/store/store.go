// Package store holds the cached state of one resource together with the
// status of every operation kind that mutates it.
package store

import (
	"sync"

	"dispatch-store/internal/core/logger"
	"dispatch-store/internal/features/resource/domain"

	"go.uber.org/zap"
)

// Option configures a Store.
type Option func(*Store)

// WithStaleGuard controls whether a settlement superseded by a newer call of
// the same kind may still overwrite that kind's status. Enabled by default.
func WithStaleGuard(enabled bool) Option {
	return func(s *Store) {
		s.guardStale = enabled
	}
}

// Store is the cache and operation ledger of one resource. All reads return
// copies; all writes happen under one mutex so each settlement is atomic.
type Store struct {
	def        domain.Definition
	guardStale bool
	log        *zap.Logger

	mu       sync.RWMutex
	caches   Caches
	statuses map[domain.OperationKind]domain.OperationStatus
	issued   map[domain.OperationKind]uint64
}

// New creates an empty store for def.
func New(def domain.Definition, opts ...Option) *Store {
	s := &Store{
		def:        def,
		guardStale: true,
		log:        logger.ForResource("store", def.Name),
		statuses:   make(map[domain.OperationKind]domain.OperationStatus),
		issued:     make(map[domain.OperationKind]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Definition returns the resource definition the store was built for.
func (s *Store) Definition() domain.Definition {
	return s.def
}

// Begin marks kind as in flight and returns the new call's sequence number.
func (s *Store) Begin(kind domain.OperationKind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued[kind]++
	s.statuses[kind] = domain.Started()
	return s.issued[kind]
}

// Settle applies a finished call. Cache content always follows settlement
// order; the status is left alone when the stale guard is on and a newer call
// of the same kind has been issued since seq.
func (s *Store) Settle(kind domain.OperationKind, seq uint64, failure *domain.ErrorInfo, apply func(*Caches)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if failure == nil && apply != nil {
		apply(&s.caches)
	}

	if s.guardStale && seq != s.issued[kind] {
		s.log.Debug("Superseded settlement ignored for status",
			zap.Stringer("kind", kind),
			zap.Uint64("seq", seq),
			zap.Uint64("latest", s.issued[kind]),
		)
		return
	}

	if failure != nil {
		s.statuses[kind] = domain.Rejected(*failure)
		return
	}
	s.statuses[kind] = domain.Fulfilled()
}

// Acknowledge clears the error and success flags of kind.
func (s *Store) Acknowledge(kind domain.OperationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses[kind] = s.statuses[kind].Acknowledged()
}

// OperationStatus returns the status of kind.
func (s *Store) OperationStatus(kind domain.OperationKind) domain.OperationStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.statuses[kind]
	if st.Error != nil {
		info := *st.Error
		info.Fields = append([]string(nil), info.Fields...)
		st.Error = &info
	}
	return st
}

// Collection returns a copy of the collection cache.
func (s *Store) Collection() domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.caches.collection.Clone()
}

// Detail returns a copy of the detail record, or false when absent.
func (s *Store) Detail() (domain.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.caches.detail == nil {
		return nil, false
	}
	return s.caches.detail.Clone(), true
}

// SubCache returns a copy of the sub-cache stored under key=value.
func (s *Store) SubCache(key, value string) (domain.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.caches.sub[key][value]
	if !ok {
		return domain.Collection{}, false
	}
	return col.Clone(), true
}

// Find returns a copy of the cached record with id from the detail or
// collection cache.
func (s *Store) Find(id domain.ID) (domain.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.caches.Find(id)
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// ListSucceeded replaces the collection.
func (s *Store) ListSucceeded(col domain.Collection) {
	s.mutate(func(c *Caches) { c.ListSucceeded(col) })
}

// OneSucceeded replaces the detail record.
func (s *Store) OneSucceeded(r domain.Record) {
	s.mutate(func(c *Caches) { c.OneSucceeded(r) })
}

// CreateSucceeded inserts r at the head unless present and sets the detail.
func (s *Store) CreateSucceeded(r domain.Record) {
	s.mutate(func(c *Caches) { c.CreateSucceeded(r) })
}

// UpdateSucceeded replaces r in the collection and sets the detail.
func (s *Store) UpdateSucceeded(r domain.Record) {
	s.mutate(func(c *Caches) { c.UpdateSucceeded(r) })
}

// DeleteSucceeded evicts id from the collection and detail.
func (s *Store) DeleteSucceeded(id domain.ID) {
	s.mutate(func(c *Caches) { c.DeleteSucceeded(id) })
}

// InvalidateSubCache drops every sub-cache stored under key.
func (s *Store) InvalidateSubCache(key string) {
	s.mutate(func(c *Caches) { c.InvalidateSubCache(key) })
}

// Reset returns the store to its empty state, keeping what the resource's
// reset policy preserves. Calls still in flight keep their sequence numbers and
// settle normally.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.caches.Reset(s.def.Reset)
	for kind, st := range s.statuses {
		s.statuses[kind] = domain.OperationStatus{InFlight: st.InFlight}
	}
	s.log.Debug("Store reset",
		zap.Bool("keep_sub_caches", s.def.Reset.KeepSubCaches),
		zap.Bool("keep_pagination", s.def.Reset.KeepPagination),
	)
}

func (s *Store) mutate(fn func(*Caches)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.caches)
}
