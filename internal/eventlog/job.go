package eventlog

import (
	"context"
	"time"

	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// CleanupJob is a job that drops journal entries past their age limit
type CleanupJob struct {
	service Service
	maxAge  time.Duration
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, maxAge time.Duration) *CleanupJob {
	return &CleanupJob{
		service: service,
		maxAge:  maxAge,
	}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	start := time.Now()
	count := j.service.CleanupOldEvents(ctx, j.maxAge)
	if count > 0 {
		log.Info(LogMsgCleanupJobCompleted, "deletedCount", count, "duration", time.Since(start))
	}
	return nil
}
