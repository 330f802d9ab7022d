package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"salonbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	salonStatsKeyPrefix = "rating:salon:"
	staffStatsKeyPrefix = "rating:staff:"
)

// RatingStatsCache keeps rating aggregates in Redis with a short TTL.
// It is best-effort on both paths: a cache failure never fails the request,
// and invalidation deletes keys rather than rewriting them. A read that
// queried Postgres before a recompute committed can still repopulate the key
// after the invalidation, so a stale aggregate may be served for at most one
// TTL; the TTL is the freshness bound, keep it short.
type RatingStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRatingStatsCache(client *redis.Client, ttl time.Duration) *RatingStatsCache {
	return &RatingStatsCache{client: client, ttl: ttl}
}

func (c *RatingStatsCache) GetSalonStats(ctx context.Context, salonID uuid.UUID) (*queries.SalonRatingStats, error) {
	var stats queries.SalonRatingStats
	if !c.get(ctx, salonStatsKeyPrefix+salonID.String(), &stats) {
		return nil, nil
	}
	return &stats, nil
}

func (c *RatingStatsCache) SetSalonStats(ctx context.Context, stats *queries.SalonRatingStats) {
	c.set(ctx, salonStatsKeyPrefix+stats.SalonID.String(), stats)
}

func (c *RatingStatsCache) GetStaffStats(ctx context.Context, staffID uuid.UUID) (*queries.StaffRatingStats, error) {
	var stats queries.StaffRatingStats
	if !c.get(ctx, staffStatsKeyPrefix+staffID.String(), &stats) {
		return nil, nil
	}
	return &stats, nil
}

func (c *RatingStatsCache) SetStaffStats(ctx context.Context, stats *queries.StaffRatingStats) {
	c.set(ctx, staffStatsKeyPrefix+stats.StaffID.String(), stats)
}

func (c *RatingStatsCache) InvalidateSalon(ctx context.Context, salonID uuid.UUID) {
	c.del(ctx, salonStatsKeyPrefix+salonID.String())
}

func (c *RatingStatsCache) InvalidateStaff(ctx context.Context, staffID uuid.UUID) {
	c.del(ctx, staffStatsKeyPrefix+staffID.String())
}

func (c *RatingStatsCache) get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("rating stats cache get failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		slog.Warn("rating stats cache entry corrupt", "key", key, "error", err.Error())
		c.del(ctx, key)
		return false
	}
	return true
}

func (c *RatingStatsCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("rating stats cache marshal failed", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("rating stats cache set failed", "key", key, "error", err.Error())
	}
}

func (c *RatingStatsCache) del(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("rating stats cache delete failed", "key", key, "error", err.Error())
	}
}

// NoopRatingStatsCache is used when Redis is disabled; every read misses.
type NoopRatingStatsCache struct{}

func NewNoopRatingStatsCache() *NoopRatingStatsCache {
	return &NoopRatingStatsCache{}
}

func (NoopRatingStatsCache) GetSalonStats(context.Context, uuid.UUID) (*queries.SalonRatingStats, error) {
	return nil, nil
}
func (NoopRatingStatsCache) SetSalonStats(context.Context, *queries.SalonRatingStats) {}
func (NoopRatingStatsCache) GetStaffStats(context.Context, uuid.UUID) (*queries.StaffRatingStats, error) {
	return nil, nil
}
func (NoopRatingStatsCache) SetStaffStats(context.Context, *queries.StaffRatingStats) {}
func (NoopRatingStatsCache) InvalidateSalon(context.Context, uuid.UUID)               {}
func (NoopRatingStatsCache) InvalidateStaff(context.Context, uuid.UUID)               {}
