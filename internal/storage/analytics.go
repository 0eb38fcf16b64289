package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalyticsStore tracks dish popularity in redis sorted sets: one
// rolling daily set plus an all-time set per dish.
type AnalyticsStore struct {
	Client *redis.Client
	ctx    context.Context
}

func NewAnalyticsStore(client *redis.Client) *AnalyticsStore {
	return &AnalyticsStore{Client: client, ctx: context.Background()}
}

func (s *AnalyticsStore) RecordDishOrder(dishID string, quantity int) error {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("analytics:daily:%s", today)
	if err := s.Client.ZIncrBy(s.ctx, dailyKey, float64(quantity), dishID).Err(); err != nil {
		return err
	}
	s.Client.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	return s.Client.ZIncrBy(s.ctx, "analytics:alltime", float64(quantity), dishID).Err()
}

// TopDishes returns dish ids with their all-time order counts, most
// ordered first.
func (s *AnalyticsStore) TopDishes(limit int) (map[string]float64, error) {
	entries, err := s.Client.ZRevRangeWithScores(s.ctx, "analytics:alltime", 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	top := make(map[string]float64, len(entries))
	for _, entry := range entries {
		if member, ok := entry.Member.(string); ok {
			top[member] = entry.Score
		}
	}
	return top, nil
}
