// Package ids provides the default identifier allocation policy.
package ids

import (
	"context"

	"logistics/internal/core/ports"
)

// MaxPlusOne allocates max(existing keys)+1, issuing 1 for an empty
// collection. Not safe under concurrent callers: two racing allocations
// can be handed the same identifier.
type MaxPlusOne struct{}

// NewMaxPlusOne creates the default allocator.
func NewMaxPlusOne() MaxPlusOne {
	return MaxPlusOne{}
}

// Next returns the next free identifier for the collection behind keys.
func (MaxPlusOne) Next(ctx context.Context, keys ports.KeyLister) (int, error) {
	ids, err := keys.Keys(ctx)
	if err != nil {
		return 0, err
	}

	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}
