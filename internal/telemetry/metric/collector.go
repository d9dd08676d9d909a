package metric

import "github.com/prometheus/client_golang/prometheus"

// ConnectionsCollector reports the current number of registered connections.
type ConnectionsCollector struct {
	count func() int
	desc  *prometheus.Desc
}

// NewConnectionsCollector creates a collector that calls count on every scrape.
func NewConnectionsCollector(count func() int) *ConnectionsCollector {
	return &ConnectionsCollector{
		count: count,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "connections_registered"),
			"Connections currently held by the registry.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *ConnectionsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *ConnectionsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(c.count()))
}
