package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the process-wide container metrics shared by every
// instrumented container. Per-container counters are registered separately
// through MetricsRegistrar.
type Metrics struct {
	ContainersLive         *prometheus.GaugeVec
	BlocksAllocated        *prometheus.CounterVec
	AllocationFailures     *prometheus.CounterVec
	ReallocationDuration   *prometheus.HistogramVec
	ReallocatedElements    *prometheus.CounterVec
	OutOfRangeAccessErrors *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		ContainersLive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "cpplabs",
				Subsystem: "containers",
				Name:      "live",
				Help:      "Number of containers that have not been released",
			},
			[]string{"component"},
		),

		BlocksAllocated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cpplabs",
				Subsystem: "allocator",
				Name:      "blocks_allocated_total",
				Help:      "Total number of backing blocks obtained from allocation strategies",
			},
			[]string{"component"},
		),

		AllocationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cpplabs",
				Subsystem: "allocator",
				Name:      "failures_total",
				Help:      "Total number of allocation requests refused by a strategy",
			},
			[]string{"component"},
		),

		ReallocationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "cpplabs",
				Subsystem: "containers",
				Name:      "reallocation_duration_seconds",
				Help:      "Time spent moving elements into a new backing block",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"component"},
		),

		ReallocatedElements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cpplabs",
				Subsystem: "containers",
				Name:      "reallocated_elements_total",
				Help:      "Total number of live elements moved during reallocation",
			},
			[]string{"component"},
		),

		OutOfRangeAccessErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cpplabs",
				Subsystem: "containers",
				Name:      "out_of_range_total",
				Help:      "Total number of checked accesses rejected as out of range",
			},
			[]string{"component"},
		),
	}
}

// RecordContainerCreated increments the live container gauge
func (c *Metrics) RecordContainerCreated(component string) {
	c.ContainersLive.WithLabelValues(component).Inc()
}

// RecordContainerReleased decrements the live container gauge
func (c *Metrics) RecordContainerReleased(component string) {
	c.ContainersLive.WithLabelValues(component).Dec()
}

// RecordBlockAllocated counts a backing block handed out by a strategy
func (c *Metrics) RecordBlockAllocated(component string) {
	c.BlocksAllocated.WithLabelValues(component).Inc()
}

// RecordAllocationFailure counts a refused allocation
func (c *Metrics) RecordAllocationFailure(component string) {
	c.AllocationFailures.WithLabelValues(component).Inc()
}

// RecordReallocation records one reallocation and the elements it moved
func (c *Metrics) RecordReallocation(component string, moved int, duration time.Duration) {
	c.ReallocationDuration.WithLabelValues(component).Observe(duration.Seconds())
	c.ReallocatedElements.WithLabelValues(component).Add(float64(moved))
}

// RecordOutOfRange counts a rejected checked access
func (c *Metrics) RecordOutOfRange(component string) {
	c.OutOfRangeAccessErrors.WithLabelValues(component).Inc()
}
