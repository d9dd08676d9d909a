// Package metric provides Prometheus metrics for prospyr connections.
//
//   - prometheus.go: metric registry, HTTP handler, instrumented transport
//   - collector.go: collector reporting the number of registered connections
//
// Every Registry owns a private prometheus.Registry, so several connection
// registries (or tests) never collide on metric names.
package metric
