package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	data := []byte("abc")
	require.NoError(t, store.Save(ctx, "s1", data, time.Now().Add(time.Minute)))
	data[0] = 'x'

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	require.NoError(t, store.Delete(ctx, "s1"))
	got, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Delete(ctx, "never-saved"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "s1", []byte("v"), now.Add(time.Minute)))
	require.NoError(t, store.Save(ctx, "forever", []byte("v"), time.Time{}))

	now = now.Add(59 * time.Second)
	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.NotNil(t, got)

	now = now.Add(time.Second)
	got, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, store.Len())

	got, err = store.Load(ctx, "forever")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryStore_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3)
	exp := time.Now().Add(time.Hour)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, fmt.Sprintf("s%d", i), []byte{byte(i)}, exp))
	}
	// Touch s0 so s1 becomes the oldest.
	_, _ = store.Load(ctx, "s0")
	require.NoError(t, store.Save(ctx, "s3", []byte{3}, exp))

	assert.Equal(t, 3, store.Len())
	got, _ := store.Load(ctx, "s1")
	assert.Nil(t, got)
	got, _ = store.Load(ctx, "s0")
	assert.Equal(t, []byte{0}, got)
}

func TestMemoryStore_DefaultSize(t *testing.T) {
	store := NewMemoryStore(0)
	assert.Equal(t, 0, store.Len())
	require.NoError(t, store.Save(context.Background(), "a", nil, time.Time{}))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Closed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(2)
	require.NoError(t, store.Save(ctx, "s1", []byte("v"), time.Time{}))
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.Save(ctx, "s1", nil, time.Time{}), ErrStoreClosed{})
	_, err := store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrStoreClosed{})
	assert.ErrorIs(t, store.Delete(ctx, "s1"), ErrStoreClosed{})
}
