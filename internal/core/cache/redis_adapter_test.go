package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "dispatch:")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	err := adapter.Set(ctx, "auth:token", []byte("tok"), 10*time.Second)
	require.NoError(t, err)

	got, err := adapter.Get(ctx, "auth:token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok"), got)

	// Stored under the prefix.
	raw, err := mr.Get("dispatch:auth:token")
	require.NoError(t, err)
	assert.Equal(t, "tok", raw)
}

func TestRedisAdapter_GetMiss(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "delete_test", []byte("value"), 0))
	require.NoError(t, adapter.Delete(ctx, "delete_test"))

	_, err := adapter.Get(ctx, "delete_test")
	assert.ErrorIs(t, err, ErrMiss)

	// Deleting again is fine.
	assert.NoError(t, adapter.Delete(ctx, "delete_test"))
}

func TestRedisAdapter_TTL(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl_test", []byte("expires_soon"), time.Second))

	_, err := adapter.Get(ctx, "ttl_test")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl_test")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, mr := newTestAdapter(t)

	assert.NoError(t, adapter.Ping(context.Background()))

	mr.Close()
	assert.Error(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
