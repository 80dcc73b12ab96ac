package kvstore

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	t.Run("missing key", func(t *testing.T) {
		_, found, err := s.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "a-1", `{"x":1}`))
		v, found, err := s.Get(ctx, "a-1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"x":1}`, v)
	})

	t.Run("last write wins", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "a-1", "second"))
		v, _, _ := s.Get(ctx, "a-1")
		assert.Equal(t, "second", v)
	})

	t.Run("keys by prefix", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "a-2", "v"))
		require.NoError(t, s.Set(ctx, "b-1", "v"))
		keys, err := s.Keys(ctx, "a-")
		require.NoError(t, err)
		sort.Strings(keys)
		assert.Equal(t, []string{"a-1", "a-2"}, keys)
	})

	t.Run("delete many", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "a-1", "a-2", "never-existed"))
		keys, err := s.Keys(ctx, "a-")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
