// Package inmem implements the repository contract over a plain in-process
// map. Nothing survives a restart; the backend exists for tests and for
// runs that do not need persistence.
package inmem

import (
	"context"
	"sort"

	"logistics/internal/core/ports"
)

// Repository is a map-backed repository for one entity type.
//
// Duplicate-key policy: Create silently keeps the existing record and never
// overwrites it. ReadAll and Keys are returned in ascending identifier
// order, a backend choice the contract does not guarantee.
//
// The repository provides no isolation between concurrent callers; the
// system is single-user and single-process.
type Repository[T ports.Entity] struct {
	records map[int]T
}

// NewRepository creates an empty in-memory repository.
func NewRepository[T ports.Entity]() *Repository[T] {
	return &Repository[T]{
		records: make(map[int]T),
	}
}

// Create inserts the entity unless its identifier is already taken.
func (r *Repository[T]) Create(_ context.Context, entity T) error {
	if _, exists := r.records[entity.EntityID()]; exists {
		return nil
	}
	r.records[entity.EntityID()] = entity
	return nil
}

// ReadAll returns every stored record, ascending by identifier.
func (r *Repository[T]) ReadAll(_ context.Context) ([]T, error) {
	ids := r.sortedIDs()
	all := make([]T, 0, len(ids))
	for _, id := range ids {
		all = append(all, r.records[id])
	}
	return all, nil
}

// Get returns the record for id, with found=false when absent.
func (r *Repository[T]) Get(_ context.Context, id int) (T, bool, error) {
	entity, found := r.records[id]
	return entity, found, nil
}

// Update replaces the stored record; no-op when the identifier is unknown.
func (r *Repository[T]) Update(_ context.Context, entity T) error {
	if _, exists := r.records[entity.EntityID()]; !exists {
		return nil
	}
	r.records[entity.EntityID()] = entity
	return nil
}

// Delete removes the record for id; no-op when absent.
func (r *Repository[T]) Delete(_ context.Context, id int) error {
	delete(r.records, id)
	return nil
}

// Keys returns all stored identifiers, ascending.
func (r *Repository[T]) Keys(_ context.Context) ([]int, error) {
	return r.sortedIDs(), nil
}

func (r *Repository[T]) sortedIDs() []int {
	ids := make([]int, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
