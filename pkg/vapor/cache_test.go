package vapor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

func freshEntry(data string) *vapor.CacheEntry {
	return &vapor.CacheEntry{
		Data:      []byte(data),
		ExpiresAt: time.Now().Add(time.Minute),
	}
}

func TestMemoryCacheSetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := vapor.NewMemoryCache(10)

	require.NoError(t, cache.Set(ctx, "key", freshEntry("value")))
	assert.True(t, cache.Has(ctx, "key"))

	entry, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), entry.Data)
}

func TestMemoryCacheMiss(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := vapor.NewMemoryCache(10)

	_, err := cache.Get(ctx, "missing")
	require.ErrorIs(t, err, vapor.ErrCacheKeyNotFound)
	assert.False(t, cache.Has(ctx, "missing"))
}

func TestMemoryCacheExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := vapor.NewMemoryCache(10)

	expired := &vapor.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-time.Second),
	}
	require.NoError(t, cache.Set(ctx, "key", expired))

	assert.False(t, cache.Has(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, vapor.ErrCacheEntryExpired)

	// The expired entry was removed; a second read is a plain miss
	_, err = cache.Get(ctx, "key")
	require.ErrorIs(t, err, vapor.ErrCacheKeyNotFound)
}

func TestMemoryCacheEvictsSoonestExpiring(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := vapor.NewMemoryCache(2)

	soon := &vapor.CacheEntry{Data: []byte("a"), ExpiresAt: time.Now().Add(time.Second)}
	later := &vapor.CacheEntry{Data: []byte("b"), ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, cache.Set(ctx, "soon", soon))
	require.NoError(t, cache.Set(ctx, "later", later))
	require.NoError(t, cache.Set(ctx, "third", freshEntry("c")))

	assert.False(t, cache.Has(ctx, "soon"))
	assert.True(t, cache.Has(ctx, "later"))
	assert.True(t, cache.Has(ctx, "third"))
}

func TestMemoryCacheDeleteAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := vapor.NewMemoryCache(10)

	require.NoError(t, cache.Set(ctx, "one", freshEntry("1")))
	require.NoError(t, cache.Set(ctx, "two", freshEntry("2")))

	require.NoError(t, cache.Delete(ctx, "one"))
	assert.False(t, cache.Has(ctx, "one"))
	assert.True(t, cache.Has(ctx, "two"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "two"))
}

func TestCacheEntryExpired(t *testing.T) {
	t.Parallel()

	assert.False(t, freshEntry("x").Expired())
	assert.True(t, (&vapor.CacheEntry{ExpiresAt: time.Now().Add(-time.Minute)}).Expired())
}
