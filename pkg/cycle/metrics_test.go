package cycle

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MegaBluejay/cpplabs/errors"
	"github.com/MegaBluejay/cpplabs/metric"
	"github.com/MegaBluejay/cpplabs/pkg/alloc"
)

func TestMetrics_Disabled(t *testing.T) {
	c, err := New[int]()
	require.NoError(t, err)
	assert.Nil(t, c.metrics)

	require.NoError(t, c.PushBack(1))
	assert.NotNil(t, c.Stats(), "statistics are always on")
}

func TestMetrics_Recorded(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	c, err := New(WithMetrics[int](registry, "window"))
	require.NoError(t, err)
	require.NotNil(t, c.metrics)

	for i := 0; i < 9; i++ {
		require.NoError(t, c.PushBack(i))
	}
	c.Erase(c.CBegin())
	_, err = c.At(42)
	require.Error(t, err)

	m := c.metrics
	assert.Equal(t, float64(9), testutil.ToFloat64(m.inserts))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.erases))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.reallocations))
	assert.Equal(t, float64(8), testutil.ToFloat64(m.size))
	assert.Equal(t, float64(16), testutil.ToFloat64(m.capacity))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.utilization))

	core := registry.CoreMetrics()
	assert.Equal(t, float64(1), testutil.ToFloat64(core.ContainersLive.WithLabelValues("window")))
	assert.Equal(t, float64(2), testutil.ToFloat64(core.BlocksAllocated.WithLabelValues("window")))
	assert.Equal(t, float64(8), testutil.ToFloat64(core.ReallocatedElements.WithLabelValues("window")))
	assert.Equal(t, float64(1), testutil.ToFloat64(core.OutOfRangeAccessErrors.WithLabelValues("window")))

	c.Release()
	assert.Equal(t, float64(0), testutil.ToFloat64(core.ContainersLive.WithLabelValues("window")))
	assert.False(t, registry.Unregister("window", "cycle_inserts"), "release unregisters")
}

func TestMetrics_AllocationFailure(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	c, err := New(
		WithAllocator[int](alloc.NewLimited[int](nil, 8)),
		WithMetrics[int](registry, "bounded"),
	)
	require.NoError(t, err)

	require.NoError(t, c.Resize(8))
	require.Error(t, c.PushBack(1))

	core := registry.CoreMetrics()
	assert.Equal(t, float64(1), testutil.ToFloat64(core.AllocationFailures.WithLabelValues("bounded")))
}

func TestMetrics_DuplicatePrefix(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	first, err := New(WithMetrics[int](registry, "dup"))
	require.NoError(t, err)

	_, err = New(WithMetrics[int](registry, "dup"))
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err))

	require.NoError(t, first.PushBack(1), "first container keeps its metrics")
	assert.Equal(t, float64(1), testutil.ToFloat64(first.metrics.inserts))
	assert.True(t, registry.Unregister("dup", "cycle_inserts"))
}

func TestMetrics_TwoContainers(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	a, err := New(WithMetrics[string](registry, "a"))
	require.NoError(t, err)
	b, err := New(WithMetrics[string](registry, "b"))
	require.NoError(t, err)

	require.NoError(t, a.PushBack("x"))
	require.NoError(t, b.PushFront("y"))
	require.NoError(t, b.PushFront("z"))

	assert.Equal(t, float64(1), testutil.ToFloat64(a.metrics.size))
	assert.Equal(t, float64(2), testutil.ToFloat64(b.metrics.size))

	a.Swap(b)
	assert.Equal(t, float64(2), testutil.ToFloat64(a.metrics.size))
	assert.Equal(t, float64(1), testutil.ToFloat64(b.metrics.size))

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range families {
		if mf.GetName() == "cpplabs_cycle_inserts_total" {
			found = true
			assert.Len(t, mf.GetMetric(), 2)
		}
	}
	assert.True(t, found)
}
