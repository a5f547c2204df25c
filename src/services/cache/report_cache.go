package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"attendance-sf2/src/models"
	"attendance-sf2/src/utils"

	"github.com/redis/go-redis/v9"
)

// ReportCache keeps built SF2 matrices so repeat downloads of the same month
// skip the event scan. A nil client turns every call into a miss.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{rdb: rdb, ttl: ttl}
}

func SF2Key(schoolID, sectionID string, year int, month time.Month) string {
	return fmt.Sprintf("sf2:matrix:%s:%s:%04d-%02d", schoolID, sectionID, year, int(month))
}

// GetSF2 returns the cached request for key; ok is false on a miss.
func (c *ReportCache) GetSF2(ctx context.Context, key string) (models.SF2Request, bool, error) {
	var req models.SF2Request
	if c == nil || c.rdb == nil {
		return req, false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			utils.ReportCache.WithLabelValues("miss").Inc()
			return req, false, nil
		}
		return req, false, fmt.Errorf("failed to read report cache: %w", err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		// corrupt entry, drop it
		c.rdb.Del(ctx, key)
		utils.ReportCache.WithLabelValues("miss").Inc()
		return req, false, nil
	}
	utils.ReportCache.WithLabelValues("hit").Inc()
	return req, true, nil
}

func (c *ReportCache) SetSF2(ctx context.Context, key string, req models.SF2Request) error {
	if c == nil || c.rdb == nil || c.ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached month of a section, or of the whole school
// when sectionID is empty.
func (c *ReportCache) Invalidate(ctx context.Context, schoolID, sectionID string) (int, error) {
	if c == nil || c.rdb == nil {
		return 0, nil
	}
	pattern := fmt.Sprintf("sf2:matrix:%s:%s:*", schoolID, sectionID)
	if sectionID == "" {
		pattern = fmt.Sprintf("sf2:matrix:%s:*", schoolID)
	}
	var keys []string
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := c.rdb.Del(ctx, keys...).Result()
	return int(n), err
}
