package docstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "ranking.json", []byte(`[]`)))

	data, err := store.Get(ctx, "ranking.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestRedisStore_MissingKey(t *testing.T) {
	store := newRedisStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Overwrite(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "doc", []byte("one")))
	require.NoError(t, store.Put(ctx, "doc", []byte("two")))

	data, err := store.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}
