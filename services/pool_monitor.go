package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// StatsSource is satisfied by *sql.DB.
type StatsSource interface {
	Stats() sql.DBStats
}

// PoolMonitor periodically logs connection pool usage.
type PoolMonitor struct {
	db     StatsSource
	logger *slog.Logger
	cron   *cron.Cron
}

func NewPoolMonitor(db StatsSource, logger *slog.Logger) *PoolMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PoolMonitor{db: db, logger: logger}
}

// StartScheduler registers the job under the cron spec (e.g. "@every 5m") and starts it.
func (m *PoolMonitor) StartScheduler(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, m.LogPoolStats); err != nil {
		return fmt.Errorf("invalid pool stats schedule %q: %w", spec, err)
	}
	m.LogPoolStats()
	c.Start()
	m.cron = c
	m.logger.Info("pool stats scheduler started", "schedule", spec)
	return nil
}

// Stop waits for a running job to finish.
func (m *PoolMonitor) Stop() {
	if m.cron == nil {
		return
	}
	<-m.cron.Stop().Done()
}

func (m *PoolMonitor) LogPoolStats() {
	stats := m.db.Stats()
	level := slog.LevelInfo
	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		level = slog.LevelWarn
	}
	m.logger.Log(context.Background(), level, "database pool stats",
		"open", stats.OpenConnections,
		"in_use", stats.InUse,
		"idle", stats.Idle,
		"max_open", stats.MaxOpenConnections,
		"wait_count", stats.WaitCount,
		"wait_duration", stats.WaitDuration,
		"max_idle_closed", stats.MaxIdleClosed,
		"max_lifetime_closed", stats.MaxLifetimeClosed,
	)
}
