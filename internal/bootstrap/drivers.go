package bootstrap

import (
	"log/slog"

	"github.com/osse101/MeoFarm_Go/internal/config"
	"github.com/osse101/MeoFarm_Go/internal/eventlog"
	"github.com/osse101/MeoFarm_Go/internal/farm"
	"github.com/osse101/MeoFarm_Go/internal/scheduler"
	"github.com/osse101/MeoFarm_Go/internal/worker"
)

// Drivers are the periodic passes that move the farm without a request
type Drivers struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartDrivers starts the worker pool and schedules growth, proximity and journal cleanup on it
func StartDrivers(cfg *config.Config, store *farm.Store, journal eventlog.Service) *Drivers {
	pool := worker.NewPool(DriverWorkers, DriverQueueSize)
	pool.Start()

	sched := scheduler.NewWithClock(pool, store.Clock())
	sched.Schedule(JobNameGrowth, cfg.GrowthTickInterval, worker.NewGrowthJob(store, store.Clock()))
	sched.Schedule(JobNameProximity, cfg.ProximityTickInterval, worker.NewProximityJob(store))
	sched.Schedule(JobNameJournalCleanup, JournalCleanupInterval, eventlog.NewCleanupJob(journal, cfg.EventLogMaxAge))

	slog.Info(LogMsgDriversStarted,
		"growth_interval", cfg.GrowthTickInterval,
		"proximity_interval", cfg.ProximityTickInterval,
		"journal_max_age", cfg.EventLogMaxAge)

	return &Drivers{Pool: pool, Scheduler: sched}
}

// Stop stops the tickers first so nothing is queued on a stopped pool
func (d *Drivers) Stop() {
	d.Scheduler.Stop()
	d.Pool.Stop()
}
