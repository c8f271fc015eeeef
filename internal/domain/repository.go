package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ReferenceLoader defines the interface for loading the food reference
// taxonomy. Loading happens once at startup; failures degrade to an empty
// table rather than aborting the process.
type ReferenceLoader interface {
	Load() (*ReferenceTable, error)
}
