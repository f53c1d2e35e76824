// Package cache stores resolved effective permission sets in redis. The
// resolution engine itself is cache-free; this is the caller-side cache the
// service layer consults before resolving.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"permission-engine/internal/permissions"
)

const defaultTTL = 5 * time.Minute

type PermissionCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func New(client redis.UniversalClient, ttl time.Duration) *PermissionCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &PermissionCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached effective permission set for a channel/user pair.
// The second return reports a hit.
func (c *PermissionCache) Get(ctx context.Context, channelId, userId uuid.UUID) (permissions.Set, bool, error) {
	value, err := c.client.Get(ctx, permKey(channelId, userId)).Result()
	if err != nil {
		if err == redis.Nil {
			return permissions.EmptySet(), false, nil
		}
		return permissions.EmptySet(), false, fmt.Errorf("failed to get cached permissions: %w", err)
	}

	set, err := decodeSet(value)
	if err != nil {
		return permissions.EmptySet(), false, err
	}
	return set, true, nil
}

// Put caches a resolved set and indexes the key under its server so
// server-wide invalidation can find it.
func (c *PermissionCache) Put(ctx context.Context, serverId, channelId, userId uuid.UUID, set permissions.Set) error {
	key := permKey(channelId, userId)

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, encodeSet(set), c.ttl)
	pipe.SAdd(ctx, serverIndexKey(serverId), key)
	pipe.Expire(ctx, serverIndexKey(serverId), c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache permissions: %w", err)
	}
	return nil
}

// InvalidateChannel drops every cached set for one channel.
func (c *PermissionCache) InvalidateChannel(ctx context.Context, channelId uuid.UUID) error {
	var cursor uint64
	pattern := fmt.Sprintf("perm:%s:*", channelId)

	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cached permissions: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cached permissions: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// InvalidateServer drops every cached set indexed under one server.
func (c *PermissionCache) InvalidateServer(ctx context.Context, serverId uuid.UUID) error {
	indexKey := serverIndexKey(serverId)

	keys, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read server cache index: %w", err)
	}

	keys = append(keys, indexKey)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cached permissions: %w", err)
	}
	return nil
}

func permKey(channelId, userId uuid.UUID) string {
	return fmt.Sprintf("perm:%s:%s", channelId, userId)
}

func serverIndexKey(serverId uuid.UUID) string {
	return fmt.Sprintf("permidx:%s", serverId)
}

func encodeSet(set permissions.Set) string {
	allow, deny := set.Bits()
	return strconv.FormatUint(allow, 16) + ":" + strconv.FormatUint(deny, 16)
}

func decodeSet(value string) (permissions.Set, error) {
	allowPart, denyPart, ok := strings.Cut(value, ":")
	if !ok {
		return permissions.EmptySet(), fmt.Errorf("malformed cached permission value %q", value)
	}

	allow, err := strconv.ParseUint(allowPart, 16, 64)
	if err != nil {
		return permissions.EmptySet(), fmt.Errorf("malformed cached allow bits %q: %w", allowPart, err)
	}
	deny, err := strconv.ParseUint(denyPart, 16, 64)
	if err != nil {
		return permissions.EmptySet(), fmt.Errorf("malformed cached deny bits %q: %w", denyPart, err)
	}

	return permissions.SetFromBits(allow, deny), nil
}
