package store

import (
	"strings"

	"dispatch-store/internal/features/resource/domain"
)

// Caches is the cache content of one resource: the collection, the detail
// record and the keyed sub-caches. Its methods are the merge rules applied when
// an operation succeeds. Caches is not safe for concurrent use; Store
// serializes access to it.
type Caches struct {
	collection domain.Collection
	detail     domain.Record
	sub        map[string]map[string]domain.Collection
}

// ListSucceeded replaces records and pagination wholesale.
func (c *Caches) ListSucceeded(col domain.Collection) {
	c.collection = dedupe(col.Clone())
}

// OneSucceeded replaces the detail record.
func (c *Caches) OneSucceeded(r domain.Record) {
	c.detail = r.Clone()
}

// CreateSucceeded inserts r at the head of the collection unless its id is
// already present, and makes it the detail record.
func (c *Caches) CreateSucceeded(r domain.Record) {
	if c.collection.IndexOf(r.ID()) < 0 {
		c.collection.Records = append([]domain.Record{r.Clone()}, c.collection.Records...)
	}
	c.detail = r.Clone()
}

// UpdateSucceeded replaces the whole record with r's id in the collection
// (no-op when absent) and makes r the detail record.
func (c *Caches) UpdateSucceeded(r domain.Record) {
	if i := c.collection.IndexOf(r.ID()); i >= 0 {
		c.collection.Records[i] = r.Clone()
	}
	c.detail = r.Clone()
}

// DeleteSucceeded removes id from the collection and clears the detail record
// if it held id.
func (c *Caches) DeleteSucceeded(id domain.ID) {
	if i := c.collection.IndexOf(id); i >= 0 {
		c.collection.Records = append(c.collection.Records[:i:i], c.collection.Records[i+1:]...)
	}
	if c.detail != nil && c.detail.ID() == id {
		c.detail = nil
	}
}

// KeySucceeded stores col under sub-cache key=value.
func (c *Caches) KeySucceeded(key, value string, col domain.Collection) {
	key, value = strings.Clone(key), strings.Clone(value)
	if c.sub == nil {
		c.sub = make(map[string]map[string]domain.Collection)
	}
	if c.sub[key] == nil {
		c.sub[key] = make(map[string]domain.Collection)
	}
	c.sub[key][value] = dedupe(col.Clone())
}

// InvalidateSubCache drops every sub-cache stored under key.
func (c *Caches) InvalidateSubCache(key string) {
	delete(c.sub, key)
}

// Reset empties the caches, keeping what policy says to keep.
func (c *Caches) Reset(policy domain.ResetPolicy) {
	pagination := c.collection.Pagination
	c.collection = domain.Collection{}
	if policy.KeepPagination {
		c.collection.Pagination = pagination
	}
	c.detail = nil
	if !policy.KeepSubCaches {
		c.sub = nil
	}
}

// Find looks id up in the detail record, then the collection. Sub-caches are
// not consulted since updates never reach them. The returned record is shared
// with the cache.
func (c *Caches) Find(id domain.ID) (domain.Record, bool) {
	if c.detail != nil && c.detail.ID() == id {
		return c.detail, true
	}
	if i := c.collection.IndexOf(id); i >= 0 {
		return c.collection.Records[i], true
	}
	return nil, false
}

// dedupe keeps the first occurrence of each id in server order.
func dedupe(col domain.Collection) domain.Collection {
	seen := make(map[domain.ID]struct{}, len(col.Records))
	kept := col.Records[:0]
	for _, r := range col.Records {
		id := r.ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, r)
	}
	col.Records = kept
	return col
}
