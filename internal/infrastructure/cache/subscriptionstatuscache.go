package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edifai-io/edifai/internal/shared/logger"
)

// CachedStatus is the subscription snapshot the request gate reads on every
// mutating call.
type CachedStatus struct {
	Status   string // active/past_due/canceled
	PlanCode string
	NotFound bool // null marker: condominium confirmed to have no subscription
}

// SubscriptionStatusCache keeps the gate off the database for repeat requests
// from the same tenant.
type SubscriptionStatusCache interface {
	Get(ctx context.Context, condominiumID uint) (*CachedStatus, error)
	Set(ctx context.Context, condominiumID uint, status *CachedStatus) error
	Invalidate(ctx context.Context, condominiumID uint) error
}

const (
	statusKeyPrefix = "tenant:subscription:"
	statusTTL       = 60 * time.Second
	nullMarkerTTL   = 30 * time.Second
	fieldStatus     = "status"
	fieldPlanCode   = "plan_code"
	fieldNullMarker = "_null"
)

type RedisSubscriptionStatusCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisSubscriptionStatusCache(client *redis.Client, logger logger.Interface) *RedisSubscriptionStatusCache {
	return &RedisSubscriptionStatusCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisSubscriptionStatusCache) key(condominiumID uint) string {
	return fmt.Sprintf("%s%d", statusKeyPrefix, condominiumID)
}

// Get returns the cached status, a NotFound marker, or nil on cache miss.
func (c *RedisSubscriptionStatusCache) Get(ctx context.Context, condominiumID uint) (*CachedStatus, error) {
	result, err := c.client.HGetAll(ctx, c.key(condominiumID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription status from cache: %w", err)
	}

	if len(result) == 0 {
		return nil, nil // cache miss
	}

	if result[fieldNullMarker] == "1" {
		return &CachedStatus{NotFound: true}, nil
	}

	return &CachedStatus{
		Status:   result[fieldStatus],
		PlanCode: result[fieldPlanCode],
	}, nil
}

func (c *RedisSubscriptionStatusCache) Set(ctx context.Context, condominiumID uint, status *CachedStatus) error {
	key := c.key(condominiumID)

	pipe := c.client.Pipeline()
	if status.NotFound {
		pipe.HSet(ctx, key, fieldNullMarker, "1")
		pipe.Expire(ctx, key, nullMarkerTTL)
	} else {
		pipe.HSet(ctx, key, map[string]interface{}{
			fieldStatus:   status.Status,
			fieldPlanCode: status.PlanCode,
		})
		pipe.Expire(ctx, key, statusTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set subscription status in cache: %w", err)
	}

	c.logger.Debugw("subscription status cached",
		"condominium_id", condominiumID,
		"status", status.Status,
	)

	return nil
}

// Invalidate drops the cached status after a lifecycle change so the next
// request re-reads the database.
func (c *RedisSubscriptionStatusCache) Invalidate(ctx context.Context, condominiumID uint) error {
	if err := c.client.Del(ctx, c.key(condominiumID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate subscription status cache: %w", err)
	}

	c.logger.Debugw("subscription status cache invalidated",
		"condominium_id", condominiumID,
	)

	return nil
}
