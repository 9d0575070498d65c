package resource

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of conversions in flight.
	// If <= 0, defaults to runtime.GOMAXPROCS(0).
	MaxWorkers int64

	// ConversionsPerSec caps batch throughput.
	// If 0, unlimited.
	ConversionsPerSec int64
}

// Controller manages worker slots and conversion throughput.
type Controller struct {
	cfg Config

	workerSem *semaphore.Weighted
	limiter   *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.ConversionsPerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.ConversionsPerSec), int(cfg.ConversionsPerSec))
	}

	return c
}

// MaxWorkers returns the configured worker limit.
func (c *Controller) MaxWorkers() int {
	if c == nil {
		return runtime.GOMAXPROCS(0)
	}
	return int(c.cfg.MaxWorkers)
}

// AcquireWorker reserves a worker slot. Blocks if all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// TryAcquireWorker reserves a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}

// AcquireConversions waits until the throughput limit allows n conversions.
func (c *Controller) AcquireConversions(ctx context.Context, n int) error {
	if c == nil || c.limiter == nil {
		return nil
	}
	return c.limiter.WaitN(ctx, n)
}

// TryAcquireConversions acquires tokens for n conversions without blocking.
func (c *Controller) TryAcquireConversions(n int) bool {
	if c == nil || c.limiter == nil {
		return true
	}
	return c.limiter.AllowN(time.Now(), n)
}
