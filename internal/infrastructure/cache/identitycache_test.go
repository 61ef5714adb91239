package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/logger"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisIdentityCache(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisIdentityCache(client, time.Minute)
	ctx := context.Background()

	miss, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, miss)

	alice := &identity.Identity{ID: "u1", Name: "alice", DisplayName: "Alice", IsAdmin: true}
	require.NoError(t, c.Set(ctx, alice))

	got, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	mr.FastForward(2 * time.Minute)
	expired, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, expired)

	require.NoError(t, c.Set(ctx, alice))
	require.NoError(t, c.Delete(ctx, "u1"))
	gone, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

type countingResolver struct {
	calls int
	users map[string]*identity.Identity
}

func (r *countingResolver) Resolve(_ context.Context, userID string) (*identity.Identity, error) {
	r.calls++
	if u, ok := r.users[userID]; ok {
		return u, nil
	}
	return nil, identity.ErrNotFound
}

func TestCachedResolver(t *testing.T) {
	_, client := newTestRedis(t)
	backing := &countingResolver{users: map[string]*identity.Identity{
		"u1": {ID: "u1", Name: "alice", DisplayName: "Alice"},
	}}
	r := NewCachedResolver(backing, NewRedisIdentityCache(client, time.Minute), logger.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := r.Resolve(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Name)
	}
	assert.Equal(t, 1, backing.calls)

	_, err := r.Resolve(ctx, "ghost")
	assert.ErrorIs(t, err, identity.ErrNotFound)
	_, err = r.Resolve(ctx, "ghost")
	assert.ErrorIs(t, err, identity.ErrNotFound)
	assert.Equal(t, 3, backing.calls)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (*identity.Identity, error) {
	return nil, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, *identity.Identity) error {
	return errors.New("connection refused")
}

func TestCachedResolver_FallsBackWhenCacheDown(t *testing.T) {
	backing := &countingResolver{users: map[string]*identity.Identity{
		"u1": {ID: "u1", Name: "alice"},
	}}
	r := NewCachedResolver(backing, brokenCache{}, logger.NewNop())

	got, err := r.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
}
