// Package resource governs the two resources a sieve run consumes.
//
//   - Memory: a hard budget for the packed word buffer (non-blocking, fail-fast)
//   - Output: a byte rate for writing the prime list (token bucket)
//
// # Architecture
//
//	┌───────────────────────────────────────────────┐
//	│                  Controller                   │
//	├──────────────────────┬────────────────────────┤
//	│  Memory Limit        │  Output Rate Limiter   │
//	│  (weighted sem)      │  (token bucket)        │
//	├──────────────────────┼────────────────────────┤
//	│  AcquireMemory       │  AcquireOutput         │
//	│  ReleaseMemory       │  RateLimitedWriter     │
//	│  MemoryUsage         │                        │
//	└──────────────────────┴────────────────────────┘
//
// # Memory Management
//
// AcquireMemory never blocks. It returns ErrMemoryLimitExceeded when the
// reservation does not fit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//	if err := rc.AcquireMemory(words * 8); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(words * 8)
//
// # Output Rate Limiting
//
//	w := resource.NewRateLimitedWriter(ctx, os.Stdout, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
