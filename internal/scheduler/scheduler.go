// Package scheduler enqueues jobs on the worker pool at fixed intervals.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/MeoFarm_Go/internal/worker"
)

// LogMsgTickSkipped is logged when a tick finds the previous run still queued
const LogMsgTickSkipped = "Scheduled tick skipped, worker busy"

// Enqueuer accepts jobs without blocking the caller
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool Enqueuer
	clock      clockwork.Clock
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler on the real clock
func New(pool Enqueuer) *Scheduler {
	return NewWithClock(pool, clockwork.NewRealClock())
}

// NewWithClock creates a scheduler whose tickers come from clock
func NewWithClock(pool Enqueuer, clock clockwork.Clock) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		clock:      clock,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run is one interval away.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := s.clock.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.Chan():
				if !s.workerPool.TryEnqueue(job) {
					slog.Debug(LogMsgTickSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for their loops to exit
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
