// Package postgres implements the repository contract over one relational
// table per entity type.
//
// Instead of deriving columns through runtime reflection, each repository
// is constructed with an explicit Mapping: table name, primary-key column,
// a row extractor and a row reader. One generic repository type, ten
// entity-specific mappings. All repositories of a run share a single
// database connection.
package postgres

import (
	"context"
	"time"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// Row is one table row as returned by the database, keyed by column name.
// The typed accessors absorb the driver's concrete types (int64 for
// integer columns and so on) and return the zero value for NULLs.
type Row map[string]any

// Int returns the integer column col.
func (r Row) Int(col string) int {
	switch v := r[col].(type) {
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Float returns the floating-point column col.
func (r Row) Float(col string) float64 {
	if v, ok := r[col].(float64); ok {
		return v
	}
	return 0
}

// Str returns the text column col.
func (r Row) Str(col string) string {
	if v, ok := r[col].(string); ok {
		return v
	}
	return ""
}

// Bool returns the boolean column col.
func (r Row) Bool(col string) bool {
	if v, ok := r[col].(bool); ok {
		return v
	}
	return false
}

// Time returns the timestamp column col.
func (r Row) Time(col string) time.Time {
	if v, ok := r[col].(time.Time); ok {
		return v
	}
	return time.Time{}
}

// Mapping declares how one entity type maps onto its table. ToRow produces
// the full column/value set for INSERT and UPDATE; FromRow rebuilds the
// entity from a fetched row.
type Mapping[T ports.Entity] struct {
	Table    string
	IDColumn string
	ToRow    func(entity T) map[string]any
	FromRow  func(row Row) (T, error)
}

// Repository is a relational repository for one entity type.
//
// Duplicate-key policy: Create on an existing identifier surfaces the
// primary-key constraint violation as a storage error.
type Repository[T ports.Entity] struct {
	db      *gorm.DB
	mapping Mapping[T]
}

// NewRepository creates a repository issuing parameterised statements for
// the mapped table over the shared connection.
func NewRepository[T ports.Entity](db *gorm.DB, mapping Mapping[T]) *Repository[T] {
	return &Repository[T]{
		db:      db,
		mapping: mapping,
	}
}

// Create inserts the entity's row.
func (r *Repository[T]) Create(ctx context.Context, entity T) error {
	row := r.mapping.ToRow(entity)
	if err := r.db.WithContext(ctx).Table(r.mapping.Table).Create(row).Error; err != nil {
		return errs.NewStorageErrorWithCause("insert into "+r.mapping.Table, err)
	}
	return nil
}

// ReadAll fetches every row of the table, ascending by primary key.
func (r *Repository[T]) ReadAll(ctx context.Context) ([]T, error) {
	var rows []map[string]any
	if err := r.db.WithContext(ctx).
		Table(r.mapping.Table).
		Order(r.mapping.IDColumn).
		Find(&rows).Error; err != nil {
		return nil, errs.NewStorageErrorWithCause("select from "+r.mapping.Table, err)
	}

	all := make([]T, 0, len(rows))
	for _, row := range rows {
		entity, err := r.mapping.FromRow(Row(row))
		if err != nil {
			return nil, errs.NewStorageErrorWithCause("read row of "+r.mapping.Table, err)
		}
		all = append(all, entity)
	}
	return all, nil
}

// Get fetches the row for id, with found=false when no row matches.
func (r *Repository[T]) Get(ctx context.Context, id int) (T, bool, error) {
	var zero T

	var rows []map[string]any
	if err := r.db.WithContext(ctx).
		Table(r.mapping.Table).
		Where(r.mapping.IDColumn+" = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return zero, false, errs.NewStorageErrorWithCause("select from "+r.mapping.Table, err)
	}
	if len(rows) == 0 {
		return zero, false, nil
	}

	entity, err := r.mapping.FromRow(Row(rows[0]))
	if err != nil {
		return zero, false, errs.NewStorageErrorWithCause("read row of "+r.mapping.Table, err)
	}
	return entity, true, nil
}

// Update replaces the row matching the entity's identifier. No-op when the
// identifier does not exist.
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	row := r.mapping.ToRow(entity)
	if err := r.db.WithContext(ctx).
		Table(r.mapping.Table).
		Where(r.mapping.IDColumn+" = ?", entity.EntityID()).
		Updates(row).Error; err != nil {
		return errs.NewStorageErrorWithCause("update "+r.mapping.Table, err)
	}
	return nil
}

// Delete removes the row for id. No-op when absent.
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM "+r.mapping.Table+" WHERE "+r.mapping.IDColumn+" = ?", id).Error; err != nil {
		return errs.NewStorageErrorWithCause("delete from "+r.mapping.Table, err)
	}
	return nil
}

// Keys selects only the primary-key column, ascending.
func (r *Repository[T]) Keys(ctx context.Context) ([]int, error) {
	var keys []int
	if err := r.db.WithContext(ctx).
		Table(r.mapping.Table).
		Order(r.mapping.IDColumn).
		Pluck(r.mapping.IDColumn, &keys).Error; err != nil {
		return nil, errs.NewStorageErrorWithCause("select keys of "+r.mapping.Table, err)
	}
	return keys, nil
}
