package statscache_test

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Jamesakeluru/IHRIS/internal/shared/statscache"
)

func TestInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the stats key", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(statscache.DashboardStatsKey).SetVal(1)

		statscache.NewInvalidator(rdb).Invalidate(ctx)

		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("nil client is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			statscache.NewInvalidator(nil).Invalidate(ctx)
		})
	})
}
