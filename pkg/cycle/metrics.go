package cycle

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MegaBluejay/cpplabs/metric"
)

// cycleMetrics holds Prometheus metrics for one container.
type cycleMetrics struct {
	registry *metric.MetricsRegistry
	core     *metric.Metrics
	prefix   string

	// registered lists the names this container owns in the registry
	registered []string

	inserts       prometheus.Counter
	erases        prometheus.Counter
	reallocations prometheus.Counter

	size        prometheus.Gauge
	capacity    prometheus.Gauge
	utilization prometheus.Gauge
}

var metricNames = []string{
	"cycle_inserts", "cycle_erases", "cycle_reallocations",
	"cycle_size", "cycle_capacity", "cycle_utilization",
}

// newCycleMetrics creates and registers container metrics with the registry.
func newCycleMetrics(registry *metric.MetricsRegistry, prefix string) (*cycleMetrics, error) {
	labels := prometheus.Labels{"component": prefix}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "cpplabs",
			Subsystem:   "cycle",
			Name:        name,
			ConstLabels: labels,
			Help:        help,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "cpplabs",
			Subsystem:   "cycle",
			Name:        name,
			ConstLabels: labels,
			Help:        help,
		})
	}

	m := &cycleMetrics{
		registry:      registry,
		core:          registry.CoreMetrics(),
		prefix:        prefix,
		inserts:       counter("inserts_total", "Total number of elements inserted"),
		erases:        counter("erases_total", "Total number of elements erased"),
		reallocations: counter("reallocations_total", "Total number of backing block replacements"),
		size:          gauge("size", "Current number of live elements"),
		capacity:      gauge("capacity", "Current number of slots in the backing block"),
		utilization:   gauge("utilization", "Live elements as a fraction of capacity (0.0 to 1.0)"),
	}

	for i, c := range []prometheus.Counter{m.inserts, m.erases, m.reallocations} {
		if err := registry.RegisterCounter(prefix, metricNames[i], c); err != nil {
			m.unregister()
			return nil, err
		}
		m.registered = append(m.registered, metricNames[i])
	}
	for i, g := range []prometheus.Gauge{m.size, m.capacity, m.utilization} {
		if err := registry.RegisterGauge(prefix, metricNames[3+i], g); err != nil {
			m.unregister()
			return nil, err
		}
		m.registered = append(m.registered, metricNames[3+i])
	}

	return m, nil
}

func (m *cycleMetrics) unregister() {
	for _, name := range m.registered {
		m.registry.Unregister(m.prefix, name)
	}
	m.registered = nil
}

func (m *cycleMetrics) recordInsert(n, size, capacity int) {
	m.inserts.Add(float64(n))
	m.updateSize(size, capacity)
}

func (m *cycleMetrics) recordErase(n, size, capacity int) {
	m.erases.Add(float64(n))
	m.updateSize(size, capacity)
}

func (m *cycleMetrics) recordReallocation(moved, size, capacity int, elapsed time.Duration) {
	m.reallocations.Inc()
	m.core.RecordReallocation(m.prefix, moved, elapsed)
	m.updateSize(size, capacity)
}

func (m *cycleMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.capacity.Set(float64(capacity))
	m.utilization.Set(float64(size) / float64(capacity))
}
