package oddsieve

import (
	"log/slog"

	"github.com/hupe1980/oddsieve/internal/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
}

// Option configures Build and Emit.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for build and output
// timings. Pass nil to disable metrics collection.
//
//	metrics := &oddsieve.BasicMetricsCollector{}
//	s, _ := oddsieve.Build(n, oddsieve.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMemoryLimit caps the bytes the packed bit array may occupy.
// Build fails with ErrMemoryLimitExceeded instead of allocating past it.
// A limit of 0 disables the check.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.resources = resource.NewController(resource.Config{MemoryLimitBytes: bytes})
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
