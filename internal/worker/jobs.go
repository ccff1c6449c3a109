package worker

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/MeoFarm_Go/internal/farm"
	"github.com/osse101/MeoFarm_Go/internal/logger"
	"github.com/osse101/MeoFarm_Go/internal/metrics"
)

// Grower promotes plants whose growth time has elapsed
type Grower interface {
	AdvanceGrowth(ctx context.Context, now time.Time) []string
}

// ProximityApplier applies the selected tool around the character
type ProximityApplier interface {
	ApplyProximity(ctx context.Context) farm.ProximityResult
}

// GrowthJob runs one growth pass at the clock's current time
type GrowthJob struct {
	grower Grower
	clock  clockwork.Clock
}

// NewGrowthJob creates a growth job
func NewGrowthJob(grower Grower, clock clockwork.Clock) *GrowthJob {
	return &GrowthJob{grower: grower, clock: clock}
}

// Process implements Job
func (j *GrowthJob) Process(ctx context.Context) error {
	start := time.Now()
	promoted := j.grower.AdvanceGrowth(ctx, j.clock.Now())
	metrics.DriverTickDuration.WithLabelValues(metrics.DriverGrowth).Observe(time.Since(start).Seconds())

	if len(promoted) > 0 {
		logger.FromContext(ctx).Debug(LogMsgGrowthTick, "promoted", len(promoted))
	}
	return nil
}

// ProximityJob runs one proximity pass
type ProximityJob struct {
	applier ProximityApplier
}

// NewProximityJob creates a proximity job
func NewProximityJob(applier ProximityApplier) *ProximityJob {
	return &ProximityJob{applier: applier}
}

// Process implements Job
func (j *ProximityJob) Process(ctx context.Context) error {
	start := time.Now()
	res := j.applier.ApplyProximity(ctx)
	metrics.DriverTickDuration.WithLabelValues(metrics.DriverProximity).Observe(time.Since(start).Seconds())

	if res.Changed() {
		logger.FromContext(ctx).Debug(LogMsgProximityTick,
			"tool", res.Tool,
			"tiles", len(res.UpdatedTiles),
			"harvested", len(res.Harvested))
	}
	return nil
}
