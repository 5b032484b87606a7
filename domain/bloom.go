package domain

import (
	"context"
	"errors"
)

// ErrBloomNotLoaded is returned by Exists when the filter's storage no longer
// holds a seeded filter, e.g. after the cache lost the key.
var ErrBloomNotLoaded = errors.New("bloom filter not loaded")

// BloomRepository is a probabilistic set of thread IDs. It never yields
// false negatives for IDs that were added.
type BloomRepository interface {
	// Add puts id into the filter
	Add(ctx context.Context, id string) error

	// Exists reports whether id may exist.
	// true: may exist, the database must still be asked.
	// false: definitely absent.
	// It fails with ErrBloomNotLoaded when MarkLoaded's marker is gone.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd is used when seeding the filter
	BulkAdd(ctx context.Context, ids []string) error

	// MarkLoaded records that a seed has begun writing the filter
	MarkLoaded(ctx context.Context) error
}

// BloomSeeder fills the filter from the database of record
type BloomSeeder interface {
	// InitBloomFilter loads every known ID in batches of batch
	InitBloomFilter(ctx context.Context, batch int) error

	// Healthy is false until a seed succeeds, and after the filter was
	// found unreliable (a failed write or a lost marker)
	Healthy() bool
}
