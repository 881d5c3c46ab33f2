// Package flatfile implements the repository contract over one delimited
// text file per entity type: one line per record, fields joined by commas.
//
// Every mutating operation reads the entire file into memory, applies the
// change and rewrites the entire file. This is intentionally simple and
// non-transactional: a crash mid-write can corrupt the store. Field values
// must not contain the delimiter characters; no escaping is provided. Both
// are documented limitations of the format, not defects.
package flatfile

import (
	"os"
	"strings"

	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Codec converts one entity to and from its single-line text record.
type Codec[T ports.Entity] struct {
	Encode func(entity T) string
	Decode func(line string) (T, error)
}

// Repository is a flat-file repository for one entity type.
//
// Duplicate-key policy: Create on an existing identifier returns a storage
// error. Records keep file order, which is insertion order.
type Repository[T ports.Entity] struct {
	path  string
	codec Codec[T]
}

// NewRepository creates a repository persisting to the file at path.
// The file is created on the first mutation; a missing file reads as an
// empty collection.
func NewRepository[T ports.Entity](path string, codec Codec[T]) *Repository[T] {
	return &Repository[T]{
		path:  path,
		codec: codec,
	}
}

// Create appends the entity to the file after checking its identifier is
// not already present.
func (r *Repository[T]) Create(_ context.Context, entity T) error {
	all, err := r.load()
	if err != nil {
		return err
	}

	for _, existing := range all {
		if existing.EntityID() == entity.EntityID() {
			return errs.NewStorageError("duplicate key " + r.path)
		}
	}

	return r.save(append(all, entity))
}

// ReadAll returns every record in file order.
func (r *Repository[T]) ReadAll(_ context.Context) ([]T, error) {
	return r.load()
}

// Get returns the record for id, with found=false when absent.
func (r *Repository[T]) Get(_ context.Context, id int) (T, bool, error) {
	var zero T

	all, err := r.load()
	if err != nil {
		return zero, false, err
	}

	for _, entity := range all {
		if entity.EntityID() == id {
			return entity, true, nil
		}
	}
	return zero, false, nil
}

// Update rewrites the file with the matching record replaced in place.
// No-op when the identifier is unknown.
func (r *Repository[T]) Update(_ context.Context, entity T) error {
	all, err := r.load()
	if err != nil {
		return err
	}

	for i, existing := range all {
		if existing.EntityID() == entity.EntityID() {
			all[i] = entity
			break
		}
	}
	return r.save(all)
}

// Delete rewrites the file without the matching record. No-op when absent.
func (r *Repository[T]) Delete(_ context.Context, id int) error {
	all, err := r.load()
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, entity := range all {
		if entity.EntityID() != id {
			kept = append(kept, entity)
		}
	}
	return r.save(kept)
}

// Keys returns all identifiers in file order.
func (r *Repository[T]) Keys(_ context.Context) ([]int, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}

	keys := make([]int, 0, len(all))
	for _, entity := range all {
		keys = append(keys, entity.EntityID())
	}
	return keys, nil
}

func (r *Repository[T]) load() ([]T, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.NewStorageErrorWithCause("read "+r.path, err)
	}

	var all []T
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entity, err := r.codec.Decode(line)
		if err != nil {
			return nil, errs.NewStorageErrorWithCause("decode "+r.path, err)
		}
		all = append(all, entity)
	}
	return all, nil
}

func (r *Repository[T]) save(all []T) error {
	lines := make([]string, 0, len(all))
	for _, entity := range all {
		lines = append(lines, r.codec.Encode(entity))
	}

	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}

	if err := os.WriteFile(r.path, []byte(content), 0o644); err != nil {
		return errs.NewStorageErrorWithCause("rewrite "+r.path, err)
	}
	return nil
}
