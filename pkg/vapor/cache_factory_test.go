package vapor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

func TestNewCacheFromConfigDefaults(t *testing.T) {
	t.Parallel()

	cache, err := vapor.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &vapor.MemoryCache{}, cache)
}

func TestNewCacheFromConfigNone(t *testing.T) {
	t.Parallel()

	cache, err := vapor.NewCacheFromConfig(&vapor.CacheConfig{Type: vapor.CacheTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &vapor.NoOpCache{}, cache)
}

func TestNewCacheFromConfigNATSRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := vapor.NewCacheFromConfig(&vapor.CacheConfig{Type: vapor.CacheTypeNATS})
	require.ErrorIs(t, err, vapor.ErrNATSConfigRequired)
}

func TestNewCacheFromConfigUnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := vapor.NewCacheFromConfig(&vapor.CacheConfig{Type: "redis"})
	require.ErrorIs(t, err, vapor.ErrUnsupportedCacheType)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := vapor.NewNoOpCache()

	require.NoError(t, cache.Set(ctx, "key", freshEntry("value")))
	assert.False(t, cache.Has(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, vapor.ErrCacheDisabled)
}

func TestCacheChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l1 := vapor.NewMemoryCache(10)
	l2 := vapor.NewMemoryCache(10)
	chain := vapor.NewCacheChain(l1, l2)

	require.NoError(t, chain.Set(ctx, "key", freshEntry("value")))
	assert.True(t, l1.Has(ctx, "key"))
	assert.True(t, l2.Has(ctx, "key"))

	// A hit in L2 repopulates L1
	require.NoError(t, l1.Delete(ctx, "key"))

	entry, err := chain.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), entry.Data)
	assert.True(t, l1.Has(ctx, "key"))

	require.NoError(t, chain.Clear(ctx))

	_, err = chain.Get(ctx, "key")
	require.ErrorIs(t, err, vapor.ErrKeyNotFoundInAnyCache)
}
