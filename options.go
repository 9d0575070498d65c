package bitradix

import (
	"log/slog"
)

// Padding selects how a binary expansion is aligned to destination chunks
// when its length is not a multiple of the destination bit width.
type Padding int

const (
	// PadLeft prepends zero bits to the most significant chunk.
	// The value of the number is preserved.
	PadLeft Padding = iota

	// PadRight appends zero bits to the final chunk. The result is the
	// expansion read in destination-width groups from the left, which does
	// not preserve the value: 1111 (base 2) becomes "74" in base 8.
	PadRight

	// PadNone rejects unaligned expansions with ErrUnalignedChunk.
	PadNone
)

// String implements fmt.Stringer.
func (p Padding) String() string {
	switch p {
	case PadLeft:
		return "left"
	case PadRight:
		return "right"
	case PadNone:
		return "none"
	default:
		return "unknown"
	}
}

type options struct {
	padding           Padding
	trimLeadingZeros  bool
	maxWorkers        int64
	conversionsPerSec int64
	metricsCollector  MetricsCollector
	logger            *Logger
}

// Option configures a Converter.
type Option func(*options)

// WithPadding configures the alignment policy for unaligned expansions.
// The default is PadLeft.
func WithPadding(p Padding) Option {
	return func(o *options) {
		o.padding = p
	}
}

// WithTrimLeadingZeros strips leading '0' symbols from results, keeping at
// least one symbol.
//
// Without it, results keep every chunk of the expansion: 17 (base 8) to
// base 2 is "001111".
func WithTrimLeadingZeros(trim bool) Option {
	return func(o *options) {
		o.trimLeadingZeros = trim
	}
}

// WithMaxWorkers limits the number of conversions a Converter runs
// concurrently across all ConvertBatch calls.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = int64(n)
	}
}

// WithRateLimit caps batch throughput in conversions per second.
// Zero disables the limit.
//
// Example:
//
//	c := bitradix.New(
//	    bitradix.WithMaxWorkers(4),
//	    bitradix.WithRateLimit(10_000),
//	)
func WithRateLimit(conversionsPerSec int) Option {
	return func(o *options) {
		o.conversionsPerSec = int64(conversionsPerSec)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitradix.BasicMetricsCollector{}
//	c := bitradix.New(bitradix.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Conversions: %d, Avg latency: %dns\n", stats.ConvertCount, stats.ConvertAvgNanos)
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
//
// Example with JSON logging:
//
//	logger := bitradix.NewJSONLogger(slog.LevelDebug)
//	c := bitradix.New(bitradix.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		padding:          PadLeft,
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
