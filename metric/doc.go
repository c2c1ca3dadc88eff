// Package metric provides Prometheus-based metrics collection and an HTTP
// endpoint for the containers in this module.
//
// The registry carries two layers:
//
//  1. Core metrics shared by every instrumented container (Metrics type):
//     live containers, allocated blocks, allocation failures, reallocation
//     timing and rejected checked accesses, all labelled by component.
//  2. Component metrics registered by name through MetricsRegistrar, such as
//     the per-container insert/erase counters and size gauges.
//
// # Basic Usage
//
//	registry := metric.NewMetricsRegistry()
//	c, err := cycle.New[int](cycle.WithMetrics[int](registry, "orders"))
//
//	server := metric.NewServer(9090, "/metrics", registry)
//	go func() {
//	    if err := server.Start(); err != nil {
//	        slog.Error("metrics server failed", "error", err)
//	    }
//	}()
//	defer server.Shutdown(context.Background())
//
// Registering the same component/metric pair twice returns an error classified
// as invalid; a Prometheus-level failure is classified as fatal.
package metric
