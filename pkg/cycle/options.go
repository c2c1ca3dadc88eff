package cycle

import (
	"log/slog"

	"github.com/MegaBluejay/cpplabs/metric"
	"github.com/MegaBluejay/cpplabs/pkg/alloc"
)

// Option configures a Cycle using the functional options pattern.
type Option[T any] func(*cycleOptions[T])

// cycleOptions holds internal configuration for a Cycle.
// Statistics are always collected; metrics are opt-in.
type cycleOptions[T any] struct {
	allocator alloc.Allocator[T]
	logger    *slog.Logger

	// metricsReg is optional - if provided, the container is also exported to Prometheus
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is the component label for the container's metrics
	metricsPrefix string
}

// WithAllocator sets the allocation strategy. Defaults to alloc.Heap.
// A nil allocator is ignored.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(opts *cycleOptions[T]) {
		if a != nil {
			opts.allocator = a
		}
	}
}

// WithLogger sets the logger used for reallocation diagnostics.
// Defaults to slog.Default().
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(opts *cycleOptions[T]) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics enables Prometheus export of the container's counters and gauges.
// Ignored when registry is nil or prefix is empty.
func WithMetrics[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(opts *cycleOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

func applyOptions[T any](options ...Option[T]) *cycleOptions[T] {
	opts := &cycleOptions[T]{
		allocator: alloc.Heap[T]{},
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	if opts.logger == nil {
		opts.logger = slog.Default()
	}

	return opts
}
