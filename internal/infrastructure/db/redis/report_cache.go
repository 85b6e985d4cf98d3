package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vishwesh2904/timesheet-system/internal/api/metrics"
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

const overviewKey = "reports:overview"

// ReportCache stores short-lived JSON snapshots of the manager overview so
// repeated dashboard loads do not rescan every collection.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ReportCache{client: client, ttl: ttl}
}

// GetOverview returns the cached overview, or (nil, nil) on a cache miss.
func (c *ReportCache) GetOverview(ctx context.Context) (*ports.ManagerReport, error) {
	raw, err := c.client.Get(ctx, overviewKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("report cache get: %w", err)
	}

	var report ports.ManagerReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("report cache decode: %w", err)
	}
	metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
	return &report, nil
}

// SetOverview stores the overview snapshot, expiring after the cache TTL.
func (c *ReportCache) SetOverview(ctx context.Context, report *ports.ManagerReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, overviewKey, raw, c.ttl).Err()
}
