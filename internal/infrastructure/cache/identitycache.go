package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/logger"
)

const identityKeyPrefix = "datarequests:identity:"

// RedisIdentityCache keeps resolved identities for a short time so that list
// responses do not hit the user store once per author.
type RedisIdentityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisIdentityCache(client *redis.Client, ttl time.Duration) *RedisIdentityCache {
	return &RedisIdentityCache{client: client, ttl: ttl}
}

// Get returns nil without error on a miss.
func (c *RedisIdentityCache) Get(ctx context.Context, userID string) (*identity.Identity, error) {
	data, err := c.client.Get(ctx, identityKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read identity from redis: %w", err)
	}

	var ident identity.Identity
	if err := json.Unmarshal(data, &ident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal identity: %w", err)
	}
	return &ident, nil
}

func (c *RedisIdentityCache) Set(ctx context.Context, ident *identity.Identity) error {
	data, err := json.Marshal(ident)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}
	if err := c.client.Set(ctx, identityKeyPrefix+ident.ID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store identity in redis: %w", err)
	}
	return nil
}

func (c *RedisIdentityCache) Delete(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, identityKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to delete identity from redis: %w", err)
	}
	return nil
}

// IdentityCache is the subset of RedisIdentityCache the resolver needs.
type IdentityCache interface {
	Get(ctx context.Context, userID string) (*identity.Identity, error)
	Set(ctx context.Context, ident *identity.Identity) error
}

// CachedResolver consults the cache before the wrapped resolver. Cache
// failures degrade to a direct lookup. Unknown users are never cached.
type CachedResolver struct {
	next   identity.IdentityResolver
	cache  IdentityCache
	logger logger.Interface
}

func NewCachedResolver(next identity.IdentityResolver, cache IdentityCache, log logger.Interface) *CachedResolver {
	return &CachedResolver{next: next, cache: cache, logger: log}
}

func (r *CachedResolver) Resolve(ctx context.Context, userID string) (*identity.Identity, error) {
	cached, err := r.cache.Get(ctx, userID)
	if err != nil {
		r.logger.Warnw("identity cache read failed", "user_id", userID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	ident, err := r.next.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, ident); err != nil {
		r.logger.Warnw("identity cache write failed", "user_id", userID, "error", err)
	}
	return ident, nil
}

var _ identity.IdentityResolver = (*CachedResolver)(nil)
