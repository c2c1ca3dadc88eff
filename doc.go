// Package cpplabs is the root of a small container library built around a
// growable circular buffer.
//
// # Layout
//
//   - pkg/cycle: Cycle, the circular-buffer sequence, and its iterators
//   - pkg/alloc: allocation strategies a Cycle draws its blocks from
//   - errors: classified errors shared by every package
//   - metric: Prometheus registry and metrics HTTP server
//   - testutil: reference model and operation generators for tests
//   - cmd/cycle-demo: command-line walkthrough of the container
//
// # Error Handling
//
// Errors are classified as invalid (bad input such as an out-of-range index),
// fatal (an allocation strategy refused a block) or transient. Use
// errors.IsInvalid, errors.IsFatal and errors.IsTransient rather than string
// matching.
//
// # Observability
//
// Every container keeps always-on Statistics. Prometheus metrics are opt-in
// per container through cycle.WithMetrics and are served by metric.Server.
package cpplabs
