package kvstore

import "context"

// Store is the process-wide key-value store used for preferences and as the
// degraded-mode target of every remote write. Values are serialized records.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	// Keys returns every key starting with prefix, in no particular order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
