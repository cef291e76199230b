package statscache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DashboardStatsKey holds the cached dashboard counts. Write paths that
// change either count drop the key so the next read rebuilds it.
const DashboardStatsKey = "dashboard:stats"

// Invalidator drops the cached dashboard counts after a write.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type redisInvalidator struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewInvalidator(rdb *redis.Client, logger ...*zap.Logger) Invalidator {
	l := zap.L().Named("statscache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("statscache")
	}
	return &redisInvalidator{rdb: rdb, logger: l}
}

// Invalidate deletes the cached counts. A failed delete is logged and
// otherwise ignored; the TTL still bounds the staleness.
func (i *redisInvalidator) Invalidate(ctx context.Context) {
	if i.rdb == nil {
		return
	}
	if err := i.rdb.Del(ctx, DashboardStatsKey).Err(); err != nil {
		i.logger.Error("invalidate dashboard stats failed", zap.Error(err))
	}
}
