package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Jamesakeluru/IHRIS/internal/employee"
	"github.com/Jamesakeluru/IHRIS/internal/leave"
	"github.com/Jamesakeluru/IHRIS/internal/shared/statscache"
)

const (
	StatsCacheKey = statscache.DashboardStatsKey
	statsCacheTTL = 30 * time.Second
)

// Stats is the dashboard summary: head count plus open leave requests.
// Total employees counts every row regardless of status.
type Stats struct {
	TotalEmployees int64 `json:"total_employees"`
	PendingLeaves  int64 `json:"pending_leaves"`
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context) (Stats, error)
}

type service struct {
	employees employee.Repository
	leaves    leave.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	employeeRepo employee.Repository,
	leaveRepo leave.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		employees: employeeRepo,
		leaves:    leaveRepo,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// GetStats serves the counts from a short-lived Redis cache, with
// singleflight collapsing concurrent refreshes into one query pair.
func (s *service) GetStats(ctx context.Context) (Stats, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, StatsCacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	v, err, _ := s.sf.Do(StatsCacheKey, func() (interface{}, error) {
		totalEmployees, err := s.employees.Count(ctx)
		if err != nil {
			s.logger.Error("count employees failed", zap.Error(err))
			return Stats{}, err
		}
		pendingLeaves, err := s.leaves.CountByStatus(ctx, leave.StatusPending)
		if err != nil {
			s.logger.Error("count pending leaves failed", zap.Error(err))
			return Stats{}, err
		}

		stats := Stats{
			TotalEmployees: totalEmployees,
			PendingLeaves:  pendingLeaves,
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(stats); err == nil {
				if err := s.rdb.Set(ctx, StatsCacheKey, payload, statsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache dashboard stats failed", zap.Error(err))
				}
			}
		}

		return stats, nil
	})

	if err != nil {
		return Stats{}, err
	}

	return v.(Stats), nil
}
