//go:build integration

package store

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"idcheck/internal/division"
	"idcheck/pkg/testutil/containers"
)

// countingRegistry wraps a registry and counts inner lookups so cache hits
// are observable.
type countingRegistry struct {
	inner division.Registry
	calls atomic.Int64
}

func (c *countingRegistry) Lookup(ctx context.Context, code string) (division.Division, bool, error) {
	c.calls.Add(1)
	return c.inner.Lookup(ctx, code)
}

func TestRedisCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc := containers.NewRedisContainer(t)

	inner := &countingRegistry{inner: division.Default()}
	cache := NewRedisCache(inner, rc.Client, time.Minute)

	t.Run("read-through populates cache", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		inner.calls.Store(0)

		d, ok, err := cache.Lookup(ctx, "510108")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "成华区", d.Name)
		require.EqualValues(t, 1, inner.calls.Load())

		d, ok, err = cache.Lookup(ctx, "510108")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "成华区", d.Name)
		require.EqualValues(t, 1, inner.calls.Load(), "second lookup must be a cache hit")
	})

	t.Run("misses are not cached", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		inner.calls.Store(0)

		_, ok, err := cache.Lookup(ctx, "000000")
		require.NoError(t, err)
		require.False(t, ok)

		_, ok, err = cache.Lookup(ctx, "000000")
		require.NoError(t, err)
		require.False(t, ok)
		require.EqualValues(t, 2, inner.calls.Load())
	})

	t.Run("invalidate forces inner lookup", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		inner.calls.Store(0)

		_, _, err := cache.Lookup(ctx, "110108")
		require.NoError(t, err)
		require.NoError(t, cache.Invalidate(ctx, "110108"))

		_, _, err = cache.Lookup(ctx, "110108")
		require.NoError(t, err)
		require.EqualValues(t, 2, inner.calls.Load())
	})
}
