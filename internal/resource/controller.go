package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for the sieve's word buffer.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// OutputBytesPerSec throttles writes through RateLimitedWriter.
	// If 0, unlimited.
	OutputBytesPerSec int64
}

// Controller tracks memory reservations and paces output.
type Controller struct {
	cfg Config

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	outLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.OutputBytesPerSec > 0 {
		c.outLimiter = rate.NewLimiter(rate.Limit(cfg.OutputBytesPerSec), burst(cfg.OutputBytesPerSec))
	}

	return c
}

func burst(perSec int64) int {
	const maxBurst = 1 << 30
	if perSec > maxBurst {
		return maxBurst
	}
	return int(perSec)
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// OutputBurst returns the largest single reservation AcquireOutput accepts,
// or 0 when output is unlimited.
func (c *Controller) OutputBurst() int {
	if c == nil || c.outLimiter == nil {
		return 0
	}
	return c.outLimiter.Burst()
}

// AcquireOutput waits until the output limit allows the specified number of bytes.
// bytes must not exceed OutputBurst.
func (c *Controller) AcquireOutput(ctx context.Context, bytes int) error {
	if c == nil || c.outLimiter == nil {
		return nil
	}
	return c.outLimiter.WaitN(ctx, bytes)
}

// TryAcquireOutput attempts to acquire output tokens without blocking.
func (c *Controller) TryAcquireOutput(bytes int) bool {
	if c == nil || c.outLimiter == nil {
		return true
	}
	return c.outLimiter.AllowN(time.Now(), bytes)
}
