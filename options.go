package healpix

import (
	"log/slog"
	"runtime"
)

const defaultChunkSize = 4096

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	concurrency      int
	chunkSize        int
	rateLimit        int
}

// Option configures descriptor construction and batch conversions.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for batch conversions.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &healpix.BasicMetricsCollector{}
//	pixels, _ := healpix.BatchRaDecToPixel[healpix.Nested](ctx, grid, points,
//	    healpix.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Batches: %d, Avg latency: %dns\n", stats.BatchCount, stats.BatchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := healpix.NewJSONLogger(slog.LevelDebug)
//	grid, _ := healpix.NewDynamic(256, healpix.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithConcurrency bounds the number of goroutines a batch conversion uses.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithChunkSize sets how many elements one batch worker converts at a time.
// Values <= 0 select the default of 4096.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithRateLimit caps batch throughput at itemsPerSecond, e.g. when a
// conversion service shares its CPU with request handling. Workers wait for
// tokens before each chunk and stop waiting when the context is cancelled.
// Values <= 0 disable the limit.
func WithRateLimit(itemsPerSecond int) Option {
	return func(o *options) {
		o.rateLimit = itemsPerSecond
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

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if o.chunkSize <= 0 {
		o.chunkSize = defaultChunkSize
	}
	return o
}
