package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

// recordingPool accepts or refuses jobs on demand
type recordingPool struct {
	mu     sync.Mutex
	jobs   []worker.Job
	refuse bool
}

func (p *recordingPool) TryEnqueue(job worker.Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.refuse {
		return false
	}
	p.jobs = append(p.jobs, job)
	return true
}

func (p *recordingPool) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.jobs)
}

func TestScheduler_FakeClock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	clock := clockwork.NewFakeClock()
	pool := &recordingPool{}
	sched := NewWithClock(pool, clock)
	defer sched.Stop()

	sched.Schedule("growth", 500*time.Millisecond, &MockJob{})
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(499 * time.Millisecond)
	assert.Never(t, func() bool { return pool.count() > 0 }, 20*time.Millisecond, time.Millisecond)

	clock.Advance(time.Millisecond)
	assert.Eventually(t, func() bool { return pool.count() == 1 }, time.Second, time.Millisecond)

	clock.Advance(500 * time.Millisecond)
	assert.Eventually(t, func() bool { return pool.count() == 2 }, time.Second, time.Millisecond)
}

func TestScheduler_SkipsWhenBusy(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	clock := clockwork.NewFakeClock()
	pool := &recordingPool{refuse: true}
	sched := NewWithClock(pool, clock)

	sched.Schedule("proximity", 50*time.Millisecond, &MockJob{})
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(50 * time.Millisecond)

	sched.Stop()
	assert.Zero(t, pool.count())
}

func TestScheduler_RealPool(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule("mock", 10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runs := 0
	for runs < 2 {
		select {
		case <-job.Done:
			runs++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}
	assert.GreaterOrEqual(t, runs, 2)
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	sched := New(&recordingPool{})
	sched.Stop()
	sched.Stop()
}
