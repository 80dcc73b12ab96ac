package local

import (
	"context"
	"encoding/json"
	"fmt"

	"manasfit-be/pkg/kvstore"
)

// GetJSON decodes the record at key into v. It reports false when the key
// is absent.
func GetJSON(ctx context.Context, store kvstore.Store, key string, v interface{}) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func SetJSON(ctx context.Context, store kvstore.Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, string(raw))
}
