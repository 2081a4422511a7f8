package redisstore

import (
	"context"
	"time"

	"booking-engine/internal/infra"

	"github.com/redis/go-redis/v9"
)

const dedupPrefix = "dedup:"

// DedupStore records one-shot markers such as sent reminders.
type DedupStore struct {
	rdb redis.UniversalClient
}

func NewDedupStore(rdb redis.UniversalClient) *DedupStore {
	return &DedupStore{rdb: rdb}
}

func (d *DedupStore) MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := d.rdb.SetNX(ctx, dedupPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to set dedup marker", err)
	}
	return ok, nil
}
