package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/multislider/internal/config"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	require.NoError(t, store.Ping(ctx))

	require.NoError(t, store.Save(ctx, "s1", []byte("payload"), time.Now().Add(time.Minute)))
	assert.True(t, mr.Exists(DefaultRedisPrefix+"s1"))

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	require.NoError(t, store.Delete(ctx, "s1"))
	got, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Save(ctx, "s1", []byte("v"), time.Now().Add(time.Minute)))
	assert.Greater(t, mr.TTL(DefaultRedisPrefix+"s1"), time.Duration(0))

	mr.FastForward(2 * time.Minute)
	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Save(ctx, "s2", []byte("v"), time.Now().Add(-time.Second)))
	assert.False(t, mr.Exists(DefaultRedisPrefix+"s2"))

	require.NoError(t, store.Save(ctx, "s3", []byte("v"), time.Time{}))
	assert.Equal(t, time.Duration(0), mr.TTL(DefaultRedisPrefix+"s3"))
}

func TestRedisStore_Prefix(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(config.RedisConfig{Addr: mr.Addr(), Prefix: "test:"})
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), "abc", []byte("v"), time.Time{}))
	assert.True(t, mr.Exists("test:abc"))
}

func TestRedisStore_Errors(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	mr.SetError("server down")
	_, err := store.Load(ctx, "s1")
	assert.ErrorContains(t, err, "load session s1")
	mr.SetError("")

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
	assert.ErrorIs(t, store.Save(ctx, "s1", nil, time.Time{}), ErrStoreClosed{})
	_, err = store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrStoreClosed{})
	assert.ErrorIs(t, store.Ping(ctx), ErrStoreClosed{})
}
