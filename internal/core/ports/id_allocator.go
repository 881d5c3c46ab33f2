package ports

import "context"

// KeyLister is the slice of Repository the allocator needs.
type KeyLister interface {
	Keys(ctx context.Context) ([]int, error)
}

// IDAllocator hands out identifiers for new entities of one collection.
// The default policy is max(existing keys)+1 with 1 for an empty
// collection. That policy is not safe under concurrent callers; the
// abstraction exists so a different allocator (atomic counter, UUID-backed)
// can be swapped in without touching the domain services.
type IDAllocator interface {
	Next(ctx context.Context, keys KeyLister) (int, error)
}
