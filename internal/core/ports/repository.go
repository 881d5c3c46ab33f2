// Package ports defines the persistence contracts of the logistics core.
// These interfaces sit between the domain services and the storage
// backends, enabling dependency inversion and testability.
package ports

import "context"

// Entity is satisfied by every domain record that exposes a stable
// integer identifier.
type Entity interface {
	EntityID() int
}

// Repository is the uniform CRUD-plus-key-enumeration contract over one
// entity type's persisted collection. Three interchangeable backends
// implement it: in-memory, flat-file and relational. A given run wires all
// repositories from the same backend.
type Repository[T Entity] interface {
	// Create inserts a new record. Duplicate-key behaviour is
	// backend-defined: the in-memory backend silently keeps the existing
	// record (Create never overwrites), the flat-file and relational
	// backends report a storage error. Each backend documents and tests
	// its policy.
	Create(ctx context.Context, entity T) error

	// ReadAll returns every record currently stored, in backend-defined
	// order. No sort guarantee.
	ReadAll(ctx context.Context) ([]T, error)

	// Get returns the record for id. found is false when the key is
	// absent; a missing key is never an error.
	Get(ctx context.Context, id int) (entity T, found bool, err error)

	// Update replaces the stored record matching the entity's identifier.
	// No-op when the identifier does not exist.
	Update(ctx context.Context, entity T) error

	// Delete removes the record for id. No-op when absent.
	Delete(ctx context.Context, id int) error

	// Keys returns all identifiers currently stored. Used exclusively by
	// the ID allocator.
	Keys(ctx context.Context) ([]int, error)
}
